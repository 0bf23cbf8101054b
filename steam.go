package main

import (
	"strconv"
	"sync"

	"github.com/Philipp15b/go-steamapi"
)

var (
	steamKeyAPI        = ""
	steamUsernames     = make(map[uint64]string)
	steamUsernamesLock sync.Mutex
)

func steamUsername(steamID uint64) string {
	if steamID == 0 {
		return "server"
	}

	steamUsernamesLock.Lock()
	defer steamUsernamesLock.Unlock()

	if username, ok := steamUsernames[steamID]; ok {
		return username
	}

	username := strconv.FormatUint(steamID, 10)
	if steamKeyAPI == "" {
		return username
	}

	summaries, err := steamapi.GetPlayerSummaries([]uint64{steamID}, steamKeyAPI)
	if err != nil {
		log.Warn("unable to look up Steam user ", steamID, ": ", err)
		steamUsernames[steamID] = username //Don't hammer the API for someone we can't look up
		return username
	}

	if len(summaries) > 0 && summaries[0].PersonaName != "" {
		username = summaries[0].PersonaName
	}
	steamUsernames[steamID] = username
	return username
}
