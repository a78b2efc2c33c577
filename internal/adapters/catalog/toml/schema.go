package toml

import "fmt"

const supportedVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Products []productSchema `toml:"products"`
}

type productSchema struct {
	Name   string `toml:"name"`
	Price  int    `toml:"price"`
	Amount int    `toml:"amount"`
}

func (f *fileSchema) applyDefaults() {
	if f.Version == 0 {
		f.Version = supportedVersion
	}
}

func (f fileSchema) validateVersion() error {
	if f.Version != supportedVersion {
		return fmt.Errorf("unsupported catalog version %d", f.Version)
	}
	return nil
}
