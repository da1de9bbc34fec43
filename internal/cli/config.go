package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given; its absence is not an error.
const defaultConfigFile = "routegrid.toml"

// Config carries the file-based settings of the CLI. Flags override file
// values; the library packages never read configuration themselves, so every
// path ends up passed down explicitly.
type Config struct {
	// Data is the distance-matrix CSV path.
	Data string `toml:"data"`

	// Output is the directory image files are written into.
	Output string `toml:"output"`
}

// defaultConfig returns the built-in settings.
func defaultConfig() Config {
	return Config{
		Data:   "city_distances.csv",
		Output: "outputs",
	}
}

// loadConfig reads a TOML config file on top of the defaults. With an empty
// path it tries defaultConfigFile and quietly falls back to the defaults when
// that file does not exist; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	default:
		return cfg, fmt.Errorf("cli: read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cli: parse config %s: %w", path, err)
	}

	return cfg, nil
}

// merge applies non-empty flag values over file/default values.
func (c Config) merge(data, output string) Config {
	if data != "" {
		c.Data = data
	}
	if output != "" {
		c.Output = output
	}

	return c
}
