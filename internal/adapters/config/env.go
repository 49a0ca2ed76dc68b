package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/zerr"
)

// Settings are the play defaults taken from the environment. Command-line flags
// override them.
type Settings struct {
	Event    string        `env:"CADENCE_EVENT" envDefault:"onMount"`
	Timeout  time.Duration `env:"CADENCE_TIMEOUT" envDefault:"30s"`
	Fast     bool          `env:"CADENCE_FAST"`
	Instant  bool          `env:"CADENCE_INSTANT"`
	Trace    bool          `env:"CADENCE_TRACE"`
	JSONLogs bool          `env:"CADENCE_LOG_JSON"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, zerr.Wrap(err, "failed to parse environment")
	}
	return s, nil
}
