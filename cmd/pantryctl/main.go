package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  "pantryctl",
		Usage:                 "Use recipes against a household pantry and inspect the result",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   "localhost:8085",
				Usage:   "pantry gRPC address",
				Sources: cli.EnvVars("PANTRY_ADDR"),
			},
			&cli.StringFlag{
				Name:     "owner",
				Usage:    "household the calls act for",
				Required: true,
				Sources:  cli.EnvVars("PANTRY_OWNER"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(formatYAML),
				Usage:   "output format (yaml, json)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaultTimeout,
				Usage: "per call timeout",
			},
		},
		Commands: []*cli.Command{
			useCmd(),
			historyCmd(),
			lotsCmd(),
		},
	}
}
