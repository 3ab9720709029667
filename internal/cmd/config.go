package cmd

import (
	"fmt"
	"os"

	"github.com/joe-butler-23/todoist-cli/internal/config"
)

type ConfigCmd struct {
	Path ConfigPathCmd `cmd:"" help:"Show configuration paths"`
	Get  ConfigGetCmd  `cmd:"" help:"Print a configuration value"`
	Set  ConfigSetCmd  `cmd:"" help:"Set a configuration value"`
}

type ConfigPathCmd struct{}

func (c *ConfigPathCmd) Run() error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	keyringDir, err := config.KeyringDir()
	if err != nil {
		return fmt.Errorf("resolve keyring dir: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Config dir:  %s\n", dir)
	fmt.Fprintf(os.Stdout, "Config file: %s\n", configPath)
	fmt.Fprintf(os.Stdout, "Keyring dir: %s\n", keyringDir)

	return nil
}

type ConfigGetCmd struct {
	Key string `arg:"" enum:"default_project,default_output" help:"Configuration key"`
}

func (c *ConfigGetCmd) Run() error {
	cfg, err := config.ReadConfig()
	if err != nil {
		return err
	}

	switch c.Key {
	case "default_project":
		fmt.Fprintln(os.Stdout, cfg.DefaultProject)
	case "default_output":
		fmt.Fprintln(os.Stdout, cfg.DefaultOutput)
	}

	return nil
}

type ConfigSetCmd struct {
	Key   string `arg:"" enum:"default_project,default_output" help:"Configuration key"`
	Value string `arg:"" help:"New value (empty clears)"`
}

func (c *ConfigSetCmd) Run() error {
	cfg, err := config.ReadConfig()
	if err != nil {
		return err
	}

	switch c.Key {
	case "default_project":
		cfg.DefaultProject = c.Value
	case "default_output":
		if c.Value != "" && c.Value != "json" && c.Value != "plain" {
			return fmt.Errorf("default_output must be json or plain, got %q", c.Value)
		}

		cfg.DefaultOutput = c.Value
	}

	return config.WriteConfig(cfg)
}
