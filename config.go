package main

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

//Config holds the server configuration
type Config struct {
	Address     string   `json:"address"`     //The UDP address to listen on
	Verbosity   int      `json:"verbosity"`   //0 = errors, 1 = info, 2 = trace
	MaxLobbies  int      `json:"maxLobbies"`  //The maximum amount of lobbies running at once
	MaxClients  int      `json:"maxClients"`  //The maximum amount of clients per lobby
	SteamAPIKey string   `json:"steamApiKey"` //Used to resolve Steam usernames for logs, empty to skip lookups
	Swears      []string `json:"swears"`      //Words that get a chat message dropped
	Admins      []uint64 `json:"admins"`      //Steam IDs allowed to run target commands, empty to allow everyone
	Range       string   `json:"range"`       //The range layout placed in every new lobby, empty for none
}

//DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Address:    "0.0.0.0:1337",
		Verbosity:  2,
		MaxLobbies: 16,
		MaxClients: 4,
	}
}

//LoadConfig reads the config file at path on top of the defaults
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if cfg.MaxClients <= 0 || cfg.MaxClients > 255 {
		return nil, errors.Errorf("config %s: maxClients must be between 1 and 255, got %d", path, cfg.MaxClients)
	}
	if cfg.MaxLobbies <= 0 {
		return nil, errors.Errorf("config %s: maxLobbies must be positive, got %d", path, cfg.MaxLobbies)
	}

	return cfg, nil
}

//IsAdmin returns whether steamID may run admin commands
func (cfg *Config) IsAdmin(steamID uint64) bool {
	if len(cfg.Admins) == 0 {
		return true
	}
	for _, admin := range cfg.Admins {
		if admin == steamID {
			return true
		}
	}
	return false
}
