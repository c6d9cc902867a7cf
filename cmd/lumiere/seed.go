package main

import (
	"context"
	"fmt"

	"lumiere/internal/db"
	"lumiere/internal/seed"
	"lumiere/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed empty content categories with the default site content",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		repos := store.NewRepositories(pool)

		logrus.Info("Seeding content...")
		if err := seed.SeedContent(ctx, repos); err != nil {
			return fmt.Errorf("failed to seed content: %w", err)
		}

		summary := struct {
			Features     int
			Services     int
			Events       int
			Testimonials int
			Members      int
			Podcasts     int
			Videos       int
			Gallery      int
		}{}

		summary.Features, _ = repos.Features.Count(ctx)
		summary.Services, _ = repos.Services.Count(ctx)
		summary.Events, _ = repos.Events.Count(ctx)
		summary.Testimonials, _ = repos.Testimonials.Count(ctx)
		summary.Members, _ = repos.Members.Count(ctx)
		summary.Podcasts, _ = repos.Podcasts.Count(ctx)
		summary.Videos, _ = repos.Videos.Count(ctx)
		summary.Gallery, _ = repos.Gallery.Count(ctx)

		pp.Println(summary)
		logrus.Info("Content seeded successfully")

		return nil
	},
}
