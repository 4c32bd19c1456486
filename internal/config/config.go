package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration file shape.
type Config struct {
	Version    string  `yaml:"version" json:"version"`
	Difficulty string  `yaml:"difficulty" json:"difficulty"` // "", "gentle", "harsh"
	Balance    Balance `yaml:"balance" json:"balance"`
}

// Load reads a YAML config file. The balance section starts from the
// difficulty preset and any explicitly-set field overrides it.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	c.Balance = Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	switch c.Difficulty {
	case "gentle":
		preset := Gentle()
		var overlay Config
		overlay.Balance = preset
		if err := yaml.Unmarshal(b, &overlay); err != nil {
			return nil, err
		}
		c.Balance = overlay.Balance
	case "harsh":
		preset := Harsh()
		var overlay Config
		overlay.Balance = preset
		if err := yaml.Unmarshal(b, &overlay); err != nil {
			return nil, err
		}
		c.Balance = overlay.Balance
	}
	return &c, nil
}
