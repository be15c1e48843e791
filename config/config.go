package config

import (
	_ "embed"
)

//go:embed iconify.yaml
var defaultConfig []byte

// FileName is the config file looked up in the working directory.
const FileName = "iconify.yaml"

func DefaultConfig() []byte {
	return defaultConfig
}
