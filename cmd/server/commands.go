package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/quire/internal/config"
	"github.com/phrazzld/quire/internal/platform/logger"
	"github.com/phrazzld/quire/internal/platform/postgres"
	"github.com/phrazzld/quire/internal/service/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// newRootCmd builds the quire command tree. Configuration comes from
// QUIRE_* environment variables and an optional YAML file.
func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "quire",
		Short:        "Blog and survey web application",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./quire.yaml)")

	load := func() (*config.Config, error) {
		cfg, err := config.LoadFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		return cfg, nil
	}

	root.AddCommand(newServeCmd(load), newMigrateCmd(load), newHashPasswordCmd())
	return root
}

func newServeCmd(load func() (*config.Config, error)) *cobra.Command {
	var inMemory bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			l, err := logger.Setup(cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newApplication(ctx, cfg, l, inMemory)
			if err != nil {
				return err
			}
			return app.startHTTPServer(ctx, app.setupRouter())
		},
	}
	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "keep all data in memory instead of PostgreSQL")
	return cmd
}

func newMigrateCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <command> [args]",
		Short:     "Run database migrations",
		Long:      "Run a goose migration command (up, down, status, version, reset, redo) against the configured database.",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: postgres.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			l, err := logger.Setup(cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}

			db, err := setupAppDatabase(cmd.Context(), cfg, l)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			return postgres.Migrate(cmd.Context(), db, args[0], l, args[1:]...)
		},
	}
}

// newHashPasswordCmd prints bcrypt hashes, for seeding users by hand.
func newHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password <password>...",
		Short: "Print the bcrypt hash of each password",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher := auth.NewBcryptVerifier(cost)
			for _, password := range args {
				hash, err := hasher.Hash(password)
				if err != nil {
					return fmt.Errorf("failed to hash password: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), hash)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}
