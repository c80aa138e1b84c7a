package main

import (
	"fmt"

	"github.com/dmitrijs2005/studydesk/internal/buildinfo"
	"github.com/dmitrijs2005/studydesk/internal/logging"
	"github.com/dmitrijs2005/studydesk/internal/server"
	"github.com/dmitrijs2005/studydesk/internal/server/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "studydesk-store",
		Short:        "Remote store for studydesk papers and words",
		Version:      buildinfo.Version(),
		SilenceUsage: true,
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(serveCmd(), migrateCmd(), useraddCmd())
	return root
}

// loadApp reads configuration from the command's flags and builds the App.
func loadApp(cmd *cobra.Command) (*server.App, logging.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	app, err := server.NewApp(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, logger, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and serve gRPC until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buildinfo.PrintBuildData(cmd.OutOrStdout())

			app, _, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Run(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Migrate(cmd.Context())
		},
	}
}

func useraddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "useradd <username>",
		Short: "Create an account; the password is read from the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if err := app.Migrate(ctx); err != nil {
				return err
			}

			password, err := getPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}

			u, err := app.AddUser(ctx, args[0], password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", u.Username, u.ID)
			return nil
		},
	}
}
