package toys

import "github.com/JoshuaDoes/logger"

var log = logger.NewLogger("sf:toys", 2)

//SetVerbosity sets the verbosity of the toys logger, matching the levels of the server logger
func SetVerbosity(verbosity int) {
	log = logger.NewLogger("sf:toys", verbosity)
}
