package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	app := &cli.App{
		Name:  "db_migrations",
		Usage: "manage the finance-tracker Postgres schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Action: func(c *cli.Context) error {
					connStr, err := connectionString()
					if err != nil {
						return err
					}
					return storage.Migrate(connStr, logger)
				},
			},
			{
				Name:  "down",
				Usage: "revert the most recent migration",
				Action: func(c *cli.Context) error {
					return withMigrator(func(m *storage.Migrator) error {
						if err := m.Down(); err != nil {
							return fmt.Errorf("m.Down: %w", err)
						}
						return logVersion(m, logger)
					})
				},
			},
			{
				Name:  "version",
				Usage: "print the applied schema version",
				Action: func(c *cli.Context) error {
					return withMigrator(func(m *storage.Migrator) error {
						return logVersion(m, logger)
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Fatal("db_migrations")
	}
}

func connectionString() (string, error) {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return "", fmt.Errorf("ProcessEnvironmentVariables: %w", err)
	}
	return env.ConnectionString(), nil
}

func withMigrator(fn func(m *storage.Migrator) error) error {
	connStr, err := connectionString()
	if err != nil {
		return err
	}
	m, err := storage.NewMigrator(connStr)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func logVersion(m *storage.Migrator, logger *logrus.Logger) error {
	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("m.Version: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Migration status")
	return nil
}
