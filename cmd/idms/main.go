package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"idms/cmd/idms/app"
	"idms/internal/apiclient"
	"idms/internal/config"
	"idms/internal/controller"
	"idms/internal/logging"
	"idms/internal/modules"
)

var version = "dev"

var (
	flagConfig  string
	flagAPIURL  string
	flagVerbose bool

	cfg config.Config
	log *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "idms",
		Short: "Interactive client for the internal data management backend",
		Long: `idms is a terminal client for the internal data management backend.
It browses, creates, edits and deletes records across all business modules,
filters and exports them, and computes salary breakdowns.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runInteractive,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default ~/.idms/config.yaml)")
	root.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL (overrides config)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	root.AddCommand(exportCmd(), modulesCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config and the logger before any command runs. The logger
// writes to a file, never the terminal, which belongs to the TUI.
func setup(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}

	level := cfg.Logging.Level
	if flagVerbose {
		level = "debug"
	}
	log, err = logging.New(cfg.Logging.File, level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	return nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	defer log.Sync() //nolint:errcheck

	p := tea.NewProgram(app.New(cfg, log), tea.WithAltScreen())

	// Config hot reload: theme changes apply without restarting.
	watchCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	go func() {
		err := config.Watch(watchCtx, path, log, func(updated config.Config) {
			p.Send(app.ConfigReloaded(updated.UI.Theme))
		})
		if err != nil {
			log.Debug("config watch unavailable", zap.Error(err))
		}
	}()

	_, err := p.Run()
	return err
}

// exportCmd writes every module's records to CSV files, fetching the
// modules concurrently.
func exportCmd() *cobra.Command {
	var outDir string
	var only []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export module records to CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := outDir
			if dir == "" {
				dir = cfg.Export.Dir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			selected := modules.All()
			if len(only) > 0 {
				selected = selected[:0]
				for _, key := range only {
					def, ok := modules.ByKey(key)
					if !ok {
						return fmt.Errorf("unknown module %q", key)
					}
					selected = append(selected, def)
				}
			}

			api := apiclient.New(cfg.API.BaseURL, cfg.APITimeout(), log)
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			g, ctx := errgroup.WithContext(ctx)
			g.SetLimit(4)
			for _, def := range selected {
				def := def
				g.Go(func() error {
					ctrl := controller.New(def, api, log)
					if err := ctrl.Load(ctx); err != nil {
						return fmt.Errorf("%s: %w", def.Key, err)
					}
					data, err := ctrl.ExportCSV()
					if err != nil {
						return fmt.Errorf("%s: %w", def.Key, err)
					}
					path := filepath.Join(dir, def.Key+".csv")
					if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
						return fmt.Errorf("%s: %w", def.Key, err)
					}
					fmt.Printf("wrote %s (%d records)\n", path, len(ctrl.Records()))
					return nil
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringSliceVarP(&only, "module", "m", nil, "export only these modules (repeatable)")
	return cmd
}

func modulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the available modules",
		Run: func(cmd *cobra.Command, args []string) {
			for i, def := range modules.All() {
				fmt.Printf("%2d  %-14s %s\n", i+1, def.Key, def.Title)
			}
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("idms", version)
		},
	}
}
