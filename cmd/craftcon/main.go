// Package main is the entry point for the craftcon console.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	cccli "github.com/craftcon/craftcon/internal/cli"
	"github.com/craftcon/craftcon/pkg/version"
)

func main() {
	connFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "address",
			Aliases: []string{"a"},
			Usage:   "Server RCON endpoint (host:port)",
			Sources: cli.EnvVars("CRAFTCON_ADDRESS"),
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "RCON password (prompted interactively when unset)",
			Sources: cli.EnvVars("CRAFTCON_PASSWORD"),
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a craftcon config file",
			Sources: cli.EnvVars("CRAFTCON_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars("CRAFTCON_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:  "history",
			Usage: "Path to the shell history file",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Network round-trip deadline",
		},
	}

	connParams := func(cmd *cli.Command) cccli.ConnParams {
		return cccli.ConnParams{
			ConfigPath:  cmd.String("config"),
			Address:     cmd.String("address"),
			Password:    cmd.String("password"),
			LogLevel:    cmd.String("log-level"),
			HistoryFile: cmd.String("history"),
			Timeout:     cmd.Duration("timeout"),
		}
	}

	app := &cli.Command{
		Name:                  "craftcon",
		Usage:                 "Interactive RCON console with help-derived completion",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags:                 connFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cccli.Shell(ctx, connParams(cmd))
		},
		Commands: []*cli.Command{
			{
				Name:      "exec",
				Usage:     "Send a single command and print the response",
				ArgsUsage: "COMMAND [ARGS...]",
				Flags:     connFlags,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return cccli.Exec(ctx, cccli.ExecParams{
						Conn: connParams(cmd),
						Args: cmd.Args().Slice(),
					})
				},
			},
			{
				Name:  "validate",
				Usage: "Validate a config file against the JSON Schema",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a craftcon config file",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return cccli.Validate(cmd.String("config"))
				},
			},
			{
				Name:  "schema",
				Usage: "Display or export the config JSON Schema",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the schema to a file instead of stdout",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return cccli.Schema(cmd.String("output"))
				},
			},
			{
				Name:  "version",
				Usage: "Print version information",
				Action: func(_ context.Context, _ *cli.Command) error {
					fmt.Printf("craftcon %s (commit %s, built %s)\n",
						version.Version, version.GitCommit, version.BuildTime)
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
