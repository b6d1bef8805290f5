// Package main is the entry point for the dispatchctl CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jengzang/dispatch-backend-go/internal/config"
	"github.com/jengzang/dispatch-backend-go/internal/database"
	"github.com/jengzang/dispatch-backend-go/internal/loader"
	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/internal/store"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are shared by every subcommand. Unset flags fall back to the
// server configuration (environment, .env, CONFIG_FILE).
type options struct {
	source  string
	dataDir string
	baseURL string
	dbPath  string
	secret  string
	timeout time.Duration
	verbose bool

	files config.DataFiles
}

func rootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "dispatchctl",
		Short:        "Query and import dispatch trip data",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.source, "source", "", "data source: csv or sqlite")
	pf.StringVar(&opts.dataDir, "data-dir", "", "directory with the CSV exports")
	pf.StringVar(&opts.baseURL, "base-url", "", "fetch CSV exports from this URL instead of --data-dir")
	pf.StringVar(&opts.dbPath, "db", "", "SQLite database path")
	pf.DurationVar(&opts.timeout, "timeout", 0, "load timeout")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "print load logs")

	root.AddCommand(
		importCmd(opts),
		searchCmd(opts),
		driverCmd(opts),
		routeCmd(opts),
		topCmd(opts),
		citiesCmd(opts),
		fleetCmd(opts),
		tokenCmd(opts),
	)

	return root
}

func (o *options) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("source") {
		o.source = cfg.Data.Source
	}
	if !flags.Changed("data-dir") {
		o.dataDir = cfg.Data.Dir
	}
	if !flags.Changed("base-url") {
		o.baseURL = cfg.Data.BaseURL
	}
	if !flags.Changed("db") {
		o.dbPath = cfg.DBPath
	}
	if !flags.Changed("timeout") {
		o.timeout = cfg.Data.LoadTimeout
	}
	o.secret = cfg.JWTSecret
	o.files = cfg.Data.Files

	if o.source != "csv" && o.source != "sqlite" {
		return fmt.Errorf("unknown source %q: want csv or sqlite", o.source)
	}
	if o.verbose {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}

// csvSource builds the CSV source regardless of --source
func (o *options) csvSource() *loader.CSVSource {
	var src *loader.CSVSource
	if o.baseURL != "" {
		src = loader.NewHTTPSource(o.baseURL, o.timeout)
	} else {
		src = loader.NewDirSource(o.dataDir)
	}
	src.Files = loader.MergeFiles(src.Files, loader.Files(o.files))
	return src
}

// loadService loads the configured source into a fresh service
func (o *options) loadService(ctx context.Context) (*service.DispatchService, func(), error) {
	var (
		src     store.Source
		cleanup = func() {}
	)

	if o.source == "sqlite" {
		conn, err := database.Open(o.dbPath)
		if err != nil {
			return nil, nil, err
		}
		src = loader.NewSQLiteSource(conn)
		cleanup = func() { conn.Close() }
	} else {
		src = o.csvSource()
	}

	svc := service.NewDispatchService(store.New(), src, o.source)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	if _, err := svc.Reload(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
