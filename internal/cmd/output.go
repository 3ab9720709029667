package cmd

import (
	"fmt"

	"github.com/joe-butler-23/todoist-cli/internal/config"
	"github.com/joe-butler-23/todoist-cli/internal/output"
)

// resolveOutputMode layers config file, environment and flags, last one
// winning. JSON is the default when nothing is set.
func resolveOutputMode(flags *RootFlags) (output.Mode, error) {
	cfg, err := config.ReadConfig()
	if err != nil {
		return output.Mode{}, err
	}

	mode := output.Mode{}

	switch cfg.DefaultOutput {
	case "json":
		mode.JSON = true
	case "plain":
		mode.Plain = true
	default:
	}

	envMode := output.FromEnv()
	if envMode.JSON {
		mode.JSON = true
		mode.Plain = false
	}

	if envMode.Plain {
		mode.Plain = true
		mode.JSON = false
	}

	if flags.JSON {
		mode.JSON = true
		mode.Plain = false
	}

	if flags.Plain {
		mode.Plain = true
		mode.JSON = false
	}

	if flags.JSON && flags.Plain {
		return output.Mode{}, fmt.Errorf("cannot use both JSON and plain output")
	}

	return mode, nil
}

// defaultProject falls back to the configured default when no --project
// flag was given.
func defaultProject(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		return "", err
	}

	return cfg.DefaultProject, nil
}
