package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces the launcher's own variables so they never collide
// with configuration keys such as BOT_TOKEN.
const envPrefix = "CLEMBOT_"

// LaunchSettings controls how the bot process loads its secrets. Flags on the
// root command override these values.
type LaunchSettings struct {
	// SecretsFiles are read in order; later files override earlier ones.
	// Env: CLEMBOT_SECRETS_FILES
	SecretsFiles []string `env:"SECRETS_FILES" envDefault:"BotSecrets.json,BotSecrets.local.json" envSeparator:","`

	// LogLevel is one of trace, debug, info, warn, error.
	// Env: CLEMBOT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogConsole switches logs to the human-readable console format.
	// Env: CLEMBOT_LOG_CONSOLE
	LogConsole bool `env:"LOG_CONSOLE"`
}

// parseLaunchSettings reads [LaunchSettings] from environ using the
// caarlos0/env parser.
func parseLaunchSettings(environ map[string]string) (LaunchSettings, error) {
	settings, err := env.ParseAsWithOptions[LaunchSettings](env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	})
	if err != nil {
		return LaunchSettings{}, fmt.Errorf("error getting launch settings from env: %w", err)
	}

	return settings, nil
}
