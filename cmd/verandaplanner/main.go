package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tuinmax/verandaplanner/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "verandaplanner",
		Short: "Interactive veranda configurator engine",
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(priceCmd())
	rootCmd.AddCommand(interpretCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a project configuration without resolving the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [project-path]",
		Short: "Resolve the scene target states and print them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runResolve(args[0])
		},
	}
}

func priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price [project-path]",
		Short: "Compute and display the price quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPrice(args[0])
		},
	}
}

func interpretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interpret [text]",
		Short: "Interpret a natural-language wish into a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInterpret(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with interactive 3D renderer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := server.LoadSettings()
			if len(args) == 1 {
				settings.ProjectDir = args[0]
			}
			if cmd.Flags().Changed("port") {
				settings.Port = port
			}

			srv := server.New(settings, newLogger(settings.LogLevel))
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8422, "HTTP server port")
	return cmd
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}
