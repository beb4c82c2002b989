package main

import "github.com/kelseyhightower/envconfig"

// Config holds the defaults of every command; flags override them.
type Config struct {
	HubAddr        string `envconfig:"HUB_ADDR" default:"localhost:50051"`
	JWTSecret      string `envconfig:"JWT_SECRET"`
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	// ADMIN_COLOURS enables colorized output
	Colours bool `envconfig:"ADMIN_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
