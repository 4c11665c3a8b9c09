package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the explicit configuration record for one invocation, built once
// from viper and passed by value into the step constructors. Steps never read
// process-wide state themselves.
type Config struct {
	DatabaseURL       string
	ProjectDir        string
	TransformCommand  string
	ValidationCommand string
}

// LoadConfig materializes the configuration (flag > env > config file).
func LoadConfig() Config {
	return Config{
		DatabaseURL:       viper.GetString("database.url"),
		ProjectDir:        viper.GetString("project.path"),
		TransformCommand:  viper.GetString("transform.command"),
		ValidationCommand: viper.GetString("validation.command"),
	}
}

// RequireProject errors unless the project directory is configured.
func (c Config) RequireProject() error {
	if c.ProjectDir == "" {
		return fmt.Errorf("project directory is required (set --project-dir or GE_TUTORIAL_PROJECT_PATH)")
	}
	return nil
}

// RequireDatabase errors unless the database URL is configured.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set --db-url or GE_TUTORIAL_DB_URL)")
	}
	return nil
}
