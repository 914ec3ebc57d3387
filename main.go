package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"pgngrid/internal/board"
	"pgngrid/internal/handlers"
	"pgngrid/internal/logging"
	"pgngrid/internal/pgn"
	"pgngrid/internal/storage"
	"pgngrid/internal/templates"
	"pgngrid/internal/viewer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "pgngrid",
		Usage:   "view PGN games as a grid of boards, one per move",
		Version: versionString(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("PGNGRID_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "development log encoding",
			},
			&cli.BoolFlag{
				Name:    "console",
				Aliases: []string{"c"},
				Usage:   "console log encoding instead of JSON",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logging.Init(logging.Options{
				Level:   c.String("level"),
				Dev:     c.Bool("debug"),
				Console: c.Bool("console"),
			})
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			logging.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the web viewer",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Value:   ":8080",
						Usage:   "listen address",
						Sources: cli.EnvVars("PGNGRID_ADDR"),
					},
					&cli.StringFlag{
						Name:    "dsn",
						Usage:   "postgres DSN for stored documents (empty keeps everything in memory)",
						Sources: cli.EnvVars("PGNGRID_DSN"),
					},
					&cli.Int64Flag{
						Name:    "max-upload",
						Value:   handlers.DefaultMaxUpload,
						Usage:   "largest accepted PGN body in bytes",
						Sources: cli.EnvVars("PGNGRID_MAX_UPLOAD"),
					},
					&cli.StringFlag{
						Name:  "piece-theme",
						Value: board.DefaultPieceTheme,
						Usage: "piece image path template for the board widget",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return serve(ctx, serveConfig{
						Addr:       c.String("addr"),
						DSN:        c.String("dsn"),
						MaxUpload:  c.Int64("max-upload"),
						PieceTheme: c.String("piece-theme"),
					})
				},
			},
			{
				Name:      "walk",
				Usage:     "print every ply of one game of a PGN file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "game",
						Value: 1,
						Usage: "1-based game number within the file",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.NArg() != 1 {
						return errors.New("walk: expected exactly one FILE argument")
					}
					return walkFile(stdout, c.Args().First(), c.Int("game"))
				},
			},
			{
				Name:  "version",
				Usage: "print build information",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, err := fmt.Fprintln(stdout, versionString())
					return err
				},
			},
		},
	}
}

type serveConfig struct {
	Addr       string
	DSN        string
	MaxUpload  int64
	PieceTheme string
}

func serve(ctx context.Context, cfg serveConfig) error {
	templates.SetCommit(commit)

	var store *storage.Store
	if cfg.DSN != "" {
		db, err := storage.New(cfg.DSN)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		store = storage.NewStore(db)
		if sqlDB, err := store.DB().DB(); err == nil {
			defer sqlDB.Close()
		}
	}

	hub := viewer.NewHub(pgn.ChessRules{})
	h := handlers.NewHandler(hub, store)
	h.MaxUpload = cfg.MaxUpload
	h.PieceTheme = cfg.PieceTheme

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handlers.WithMiddleware(h.Routes(), os.Stdout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Infof("PGNgrid listening on http://localhost%s …", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return hub.Run(gctx, 5*time.Minute)
	})
	return g.Wait()
}

func walkFile(w io.Writer, path string, game int) error {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	c, err := pgn.Ingest(pgn.DecodeText(b), pgn.ChessRules{})
	if err != nil {
		return err
	}
	if game < 1 || game > len(c.Games) {
		return fmt.Errorf("walk: game %d out of range, file has %d", game, len(c.Games))
	}
	plies, err := pgn.Walk(c.Games[game-1], pgn.ChessRules{})
	if err != nil {
		return err
	}
	for _, p := range plies {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", p.MoveText, p.FEN); err != nil {
			return err
		}
	}
	return nil
}
