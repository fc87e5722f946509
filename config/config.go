package config

import (
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/itchio/modkit/installer/dllmod"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// DefaultPath is where we look for a config file if none is specified
const DefaultPath = "modkit.toml"

// Config is what modkit remembers about the game it installs mods for.
//
// A modkit.toml looks like:
//
//	game_folder = "C:/Games/Hacknet"
//	companion_path = "C:/Games/Hacknet/HacknetPathfinder.exe"
type Config struct {
	// Root of the game install, mods go below it
	GameFolder string `mapstructure:"game_folder" json:"gameFolder"`

	// Where the companion tool was found when the game was set up
	CompanionPath string `mapstructure:"companion_path" json:"companionPath"`

	// Offered to users when the companion tool is missing
	CompanionURL string `mapstructure:"companion_url" json:"companionUrl"`
}

var urlRe = regexp.MustCompile(`^https?://`)

func Default() *Config {
	return &Config{
		CompanionURL: dllmod.DefaultCompanionURL,
	}
}

// Read a config file. Returns the default config if there's
// no file at path. Returns an error if there is a file, but it
// can't be read, isn't valid TOML, or has unknown or mistyped keys.
func Read(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	intermediate := make(map[string]interface{})
	_, err = toml.NewDecoder(f).Decode(&intermediate)
	if err != nil {
		// invalid TOML
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	})
	if err != nil {
		// internal error
		return nil, errors.WithStack(err)
	}

	err = decoder.Decode(intermediate)
	if err != nil {
		// invalid config structure
		return nil, errors.Wrapf(err, "in %s", path)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.CompanionURL, validation.Required, validation.Match(urlRe)),
	)
}

// ValidateForInstall also requires what's needed to actually copy files
func (c Config) ValidateForInstall() error {
	err := c.Validate()
	if err != nil {
		return err
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.GameFolder, validation.Required),
	)
}
