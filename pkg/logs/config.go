package logs

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config describes where each stream of a StreamLogger writes. See [New] for the meaning of the
// path values.
//
//	log = "-"
//	error = "/var/log/tasks/error.log"
//	debug_enabled = true
//
//	[streams]
//	audit = "/var/log/tasks/audit.log"
type Config struct {
	Log          string            `toml:"log"`
	Error        string            `toml:"error"`
	Debug        string            `toml:"debug"`
	DebugEnabled bool              `toml:"debug_enabled"`
	Timestamps   bool              `toml:"timestamps"`
	Streams      map[string]string `toml:"streams"`
}

// LoadConfig reads a TOML logger configuration. A missing file yields the zero Config, which logs
// everything to the standard output.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading logger config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing logger config %s: %w", path, err)
	}
	return cfg, nil
}
