package main

import (
	"context"
	"fmt"

	"tempobemgasto/internal/db"
	"tempobemgasto/internal/seed"
	"tempobemgasto/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Load demo organizations, opportunities and volunteers",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Print every record written",
		},
	},
	Action: func(cCtx *cli.Context) error {
		config, err := loadConfig(cCtx)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err := newLogger(config)
		if err != nil {
			return err
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logger.Info("connected to database")

		seeder := seed.New(
			logger,
			store.NewOngRepository(pool),
			store.NewOpportunityRepository(pool),
			store.NewVolunteerRepository(pool),
			store.NewInscriptionRepository(pool),
		)

		result, err := seeder.Run(ctx)
		if err != nil {
			return err
		}

		if cCtx.Bool("verbose") {
			pp.Println(result)
		}

		logger.Info("database seeded successfully")

		return nil
	},
}
