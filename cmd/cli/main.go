package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/amirasaad/networth/infra"
	"github.com/amirasaad/networth/infra/initializer"
	infra_cache "github.com/amirasaad/networth/infra/cache"
	infra_repository "github.com/amirasaad/networth/infra/repository"
	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/pkg/config"
	exportsvc "github.com/amirasaad/networth/pkg/service/export"
	"github.com/fatih/color"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  migrate                       apply database migrations
  token <email> [name]          create the user if needed and print a bearer token
  export <email> [csv|xlsx]     write the user's snapshots to a file`

var (
	success = color.New(color.FgGreen).SprintFunc()
	failure = color.New(color.FgRed, color.Bold).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if err := run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, failure("error:"), err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := initializer.SetupLogger(cfg.Log, os.Stderr)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}
	if cmd == "migrate" {
		if err := infra.Migrate(db, cfg.DB, logger); err != nil {
			return err
		}
		fmt.Println(success("database is up to date"))
		return nil
	}

	a, err := app.New(&app.Deps{
		Uow:            infra_repository.NewUoW(db),
		DashboardCache: infra_cache.NoopDashboardCache{},
		DB:             infra.NewDBPinger(db),
		Logger:         logger,
	}, cfg)
	if err != nil {
		return err
	}

	switch cmd {
	case "token":
		if len(args) < 1 {
			return fmt.Errorf("usage: token <email> [name]")
		}
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		u, err := a.UserService.UpsertByEmail(ctx, args[0], name)
		if err != nil {
			return err
		}
		token, err := a.AuthService.GenerateToken(ctx, u)
		if err != nil {
			return err
		}
		if token == "" {
			fmt.Println(faint("the dev auth strategy does not use tokens"))
			return nil
		}
		fmt.Println(faint("user " + u.ID.String()))
		fmt.Println(token)
	case "export":
		if len(args) < 1 {
			return fmt.Errorf("usage: export <email> [csv|xlsx]")
		}
		raw := ""
		if len(args) > 1 {
			raw = args[1]
		}
		format, err := exportsvc.ParseFormat(raw)
		if err != nil {
			return err
		}
		u, err := a.UserService.GetByEmail(ctx, args[0])
		if err != nil {
			return err
		}
		path := exportsvc.Filename(format, time.Now())
		err = writeFile(path, func(w io.Writer) error {
			return a.ExportService.Export(ctx, u.ID, format, w)
		})
		if err != nil {
			return err
		}
		fmt.Println(success("wrote " + path))
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// writeFile creates path and fills it with write. On any failure the
// partial file is removed.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
