package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Options Lab Configuration

[simulation]
# Annualized drift used by the Monte Carlo simulator
drift = 0.06
# Number of Monte Carlo samples per run
samples = 12000
# Random seed; identical seed and inputs reproduce identical results
seed = 42

[grid]
# Payoff curve grid runs spot - span .. spot + span
span = 5000.0
# Number of grid points
points = 400

[strategy]
# Spread width in index points; per-strategy strike offsets derive from it
width = 400.0

[ui]
# Enable colored output
color_enabled = true

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the console in addition to the log file
console = false
# Log to a rotating file under the config directory
file = true
`

// createTemplateConfig writes a commented config template so a first run
// leaves an editable file behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
