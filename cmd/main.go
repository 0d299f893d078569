package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"faden/internal/app/board"
	"faden/internal/config"
	"faden/internal/db"
	"faden/internal/db/seeder"
	"faden/internal/slug"
	"faden/internal/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// faden is the admin companion of the API server: schema migration, seeding
// and board inspection against the configured database.
func main() {
	logger, err := utils.NewLogger(os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	app := &cli.App{
		Name:  "faden",
		Usage: "Faden Boards administration",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file to load"},
		},
		Before: func(c *cli.Context) error {
			l, err := utils.SetupLogger(c.String("env-file"))
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		// Errors are reported once, below, with their exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "create or update the database schema",
				Action: func(c *cli.Context) error {
					return withDB(logger, func(cfg *config.Config, conn *gorm.DB) error {
						return db.Migrate(conn, logger)
					})
				},
			},
			{
				Name:  "seed",
				Usage: "create the default boards when none exist",
				Action: func(c *cli.Context) error {
					return withDB(logger, func(cfg *config.Config, conn *gorm.DB) error {
						repo := board.NewRepository(conn)
						svc := board.NewService(repo, nil, nil, logger)
						return seeder.NewSeeder(svc, repo, logger).Seed(c.Context)
					})
				},
			},
			{
				Name:  "boards",
				Usage: "inspect and create boards",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "list boards, newest first",
						Action: func(c *cli.Context) error {
							return withDB(logger, func(cfg *config.Config, conn *gorm.DB) error {
								svc := board.NewService(board.NewRepository(conn), nil, nil, logger)
								boards, err := svc.ListBoards(c.Context)
								if err != nil {
									return err
								}
								w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
								fmt.Fprintln(w, "SLUG\tNAME\tCREATED")
								for _, b := range boards {
									fmt.Fprintf(w, "%s\t%s\t%s\n", b.Slug, b.Name, b.CreatedAt.Format("2006-01-02 15:04"))
								}
								return w.Flush()
							})
						},
					},
					{
						Name:      "create",
						Usage:     "create a board",
						ArgsUsage: "<name>",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "slug", Usage: "explicit slug, normalized like the name"},
							&cli.StringFlag{Name: "description"},
						},
						Action: func(c *cli.Context) error {
							if c.NArg() != 1 {
								return cli.Exit("exactly one board name is required", 2)
							}
							in := board.CreateBoardInput{Name: c.Args().First()}
							if c.IsSet("slug") {
								s := c.String("slug")
								in.Slug = &s
							}
							if c.IsSet("description") {
								d := c.String("description")
								in.Description = &d
							}
							return withDB(logger, func(cfg *config.Config, conn *gorm.DB) error {
								svc := board.NewService(board.NewRepository(conn), nil, nil, logger)
								b, err := svc.CreateBoard(c.Context, in)
								if err != nil {
									return err
								}
								fmt.Fprintf(c.App.Writer, "created %s (%s)\n", b.Slug, b.ID)
								return nil
							})
						},
					},
				},
			},
			{
				Name:      "slug",
				Usage:     "print the slug a board name normalizes to",
				ArgsUsage: "<text>...",
				Action: func(c *cli.Context) error {
					for _, arg := range c.Args().Slice() {
						fmt.Fprintln(c.App.Writer, slug.Normalize(arg))
					}
					return nil
				},
			},
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		logger.Error("Command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(exitCode(err))
	}
}

// exitCode honours codes given with cli.Exit and reports 1 for anything else.
func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

func withDB(logger *zap.Logger, fn func(cfg *config.Config, conn *gorm.DB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	conn, err := db.Connect(&cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := conn.DB(); err == nil {
		defer sqlDB.Close()
	}
	return fn(&cfg, conn)
}
