package main

import (
	"context"
	"fmt"

	"tempobemgasto/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var migrateUp = withMigrator(func(m *db.Migrator, logger *logrus.Logger) error {
	applied, err := m.Up()
	if err != nil {
		return err
	}
	if !applied {
		logger.Info("schema already up to date")
		return nil
	}
	return logVersion(m, logger, "migrations applied")
})

var migrateCommand = &cli.Command{
	Name:   "migrate",
	Usage:  "Manage the database schema (runs up when no subcommand is given)",
	Action: migrateUp,
	Subcommands: []*cli.Command{
		{
			Name:   "up",
			Usage:  "Apply every pending migration",
			Action: migrateUp,
		},
		{
			Name:  "down",
			Usage: "Roll back the most recent migration",
			Action: withMigrator(func(m *db.Migrator, logger *logrus.Logger) error {
				if err := m.Down(); err != nil {
					return err
				}
				return logVersion(m, logger, "migration rolled back")
			}),
		},
		{
			Name:  "version",
			Usage: "Print the current schema version",
			Action: withMigrator(func(m *db.Migrator, logger *logrus.Logger) error {
				return logVersion(m, logger, "current schema version")
			}),
		},
	},
}

func withMigrator(fn func(m *db.Migrator, logger *logrus.Logger) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		config, err := loadConfig(cCtx)
		if err != nil {
			return err
		}

		logger, err := newLogger(config)
		if err != nil {
			return err
		}

		pool, err := db.Connect(context.Background(), config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		return runMigrator(pool, logger, fn)
	}
}

func runMigrator(pool *pgxpool.Pool, logger *logrus.Logger, fn func(m *db.Migrator, logger *logrus.Logger) error) (err error) {
	m, err := db.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(m, logger)
}

func logVersion(m *db.Migrator, logger *logrus.Logger, msg string) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info(msg)
	return nil
}
