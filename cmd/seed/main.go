// Command seed creates the schema and loads catalog fixtures.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/holocron/holocron-go/internal/config"
	"github.com/holocron/holocron-go/internal/crypto"
	"github.com/holocron/holocron-go/internal/fixture"
	"github.com/holocron/holocron-go/internal/logger"
	"github.com/holocron/holocron-go/internal/repository"
)

const (
	databaseURLFlag = "database-url"
	fixtureFlag     = "fixture"
	skipMigrateFlag = "skip-migrate"
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "seed"
	app.Usage = "create the holocron schema and load users, characters and planets"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  databaseURLFlag,
			Usage: "database to seed (defaults to DATABASE_URL)",
		},
		cli.StringFlag{
			Name:  fixtureFlag,
			Usage: "YAML `FILE` to load instead of the built-in dataset",
		},
		cli.BoolFlag{
			Name:  skipMigrateFlag,
			Usage: "assume the schema already exists",
		},
	}
	app.Action = seed
	return app
}

func seed(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if url := c.String(databaseURLFlag); url != "" {
		cfg.DatabaseURL = url
	}

	log := logger.New(cfg)
	ctx := log.WithContext(context.Background())

	ds, err := loadDataset(c.String(fixtureFlag))
	if err != nil {
		return err
	}

	db, err := repository.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if !c.Bool(skipMigrateFlag) {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	counts, err := fixture.Seed(ctx, db, ds, crypto.DefaultHasher)
	if err != nil {
		return err
	}

	fmt.Printf("seeded %d users, %d characters, %d planets\n", counts.Users, counts.Characters, counts.Planets)
	return nil
}

func loadDataset(path string) (fixture.Dataset, error) {
	if path == "" {
		return fixture.Default()
	}
	return fixture.LoadFile(path)
}
