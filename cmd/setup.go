package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/libsort/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", configPath)
	return r.console.Success("Config written to %s", configPath)
}

// SetupDatabase initializes the track cache and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config, err := r.settings(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.OpenCache(config.Database)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	if cmd.Bool("reset") {
		r.logger.Info("resetting track cache schema")
		if err := shared.ResetMigrations(db); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
	}

	versions, err := shared.AppliedVersions(db)
	if err != nil {
		return err
	}

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return r.console.Success("Database ready at %s (%d migrations applied)", config.Database.Path, len(versions))
}
