package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	pantryv1 "github.com/fekuna/household-pantry-service/internal/api/pantryv1"
	"github.com/fekuna/household-pantry-service/internal/auth"
	"github.com/urfave/cli/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const defaultTimeout = 10 * time.Second

var (
	errMissingRecipe = errors.New("recipe id is required")
	errMissingLot    = errors.New("lot id is required")
)

// parseDate accepts a calendar day (taken as UTC midnight) or an RFC 3339
// timestamp. An empty value yields nil.
func parseDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("--%s: want YYYY-MM-DD or RFC 3339, got %q", flag, value)
}

func useCmd() *cli.Command {
	return &cli.Command{
		Name:      "use",
		Usage:     "Deduct a recipe's ingredients from the pantry",
		ArgsUsage: "<recipe-id>",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:    "multiplier",
				Aliases: []string{"x"},
				Value:   1,
				Usage:   "number of batches to cook",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			recipeID := cmd.Args().First()
			if recipeID == "" {
				return errMissingRecipe
			}
			return withConn(ctx, cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := pantryv1.NewRecipeServiceClient(conn).UseRecipe(ctx, &pantryv1.UseRecipeRequest{
					RecipeID:   recipeID,
					Multiplier: cmd.Float("multiplier"),
				})
				if err != nil {
					return fmt.Errorf("use recipe %s: %w", recipeID, err)
				}
				return writeOutput(cmd.Root().Writer, outputFormat(cmd.String("format")), resp)
			})
		},
	}
}

func historyCmd() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List usage logs, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "recipe", Usage: "only logs of this recipe id"},
			&cli.StringFlag{Name: "since", Usage: "only logs created at or after this date"},
			&cli.StringFlag{Name: "until", Usage: "only logs created before this date"},
			&cli.IntFlag{Name: "page", Value: 1},
			&cli.IntFlag{Name: "page-size", Value: 20},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			since, err := parseDate("since", cmd.String("since"))
			if err != nil {
				return err
			}
			until, err := parseDate("until", cmd.String("until"))
			if err != nil {
				return err
			}
			return withConn(ctx, cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := pantryv1.NewRecipeServiceClient(conn).ListUsageLogs(ctx, &pantryv1.ListUsageLogsRequest{
					RecipeID:  cmd.String("recipe"),
					StartDate: since,
					EndDate:   until,
					Page:      int32(cmd.Int("page")),
					PageSize:  int32(cmd.Int("page-size")),
				})
				if err != nil {
					return fmt.Errorf("list usage logs: %w", err)
				}
				return writeOutput(cmd.Root().Writer, outputFormat(cmd.String("format")), resp)
			})
		},
	}
}

func lotsCmd() *cli.Command {
	return &cli.Command{
		Name:  "lots",
		Usage: "List pantry lots, soonest expiring first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Local: true, Usage: "only lots with this name (case-insensitive)"},
			&cli.StringFlag{Name: "expiring-before", Local: true, Usage: "only lots that expire before this date"},
			&cli.IntFlag{Name: "page", Local: true, Value: 1},
			&cli.IntFlag{Name: "page-size", Local: true, Value: 50},
		},
		Commands: []*cli.Command{
			addLotCmd(),
			removeLotCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			expiringBefore, err := parseDate("expiring-before", cmd.String("expiring-before"))
			if err != nil {
				return err
			}
			return withConn(ctx, cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := pantryv1.NewInventoryServiceClient(conn).ListLots(ctx, &pantryv1.ListLotsRequest{
					Name:           cmd.String("name"),
					ExpiringBefore: expiringBefore,
					Page:           int32(cmd.Int("page")),
					PageSize:       int32(cmd.Int("page-size")),
				})
				if err != nil {
					return fmt.Errorf("list lots: %w", err)
				}
				return writeOutput(cmd.Root().Writer, outputFormat(cmd.String("format")), resp)
			})
		},
	}
}

func addLotCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Stock a new lot",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "quantity", Required: true, Usage: "decimal amount, e.g. 2.5"},
			&cli.StringFlag{Name: "unit", Required: true},
			&cli.StringFlag{Name: "expires", Usage: "expiry date; omit for non-perishables"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			expires, err := parseDate("expires", cmd.String("expires"))
			if err != nil {
				return err
			}
			return withConn(ctx, cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				resp, err := pantryv1.NewInventoryServiceClient(conn).AddLot(ctx, &pantryv1.AddLotRequest{
					Name:      cmd.String("name"),
					Quantity:  cmd.String("quantity"),
					Unit:      cmd.String("unit"),
					ExpiresAt: expires,
				})
				if err != nil {
					return fmt.Errorf("add lot: %w", err)
				}
				return writeOutput(cmd.Root().Writer, outputFormat(cmd.String("format")), resp)
			})
		},
	}
}

func removeLotCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Remove a lot",
		ArgsUsage: "<lot-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return errMissingLot
			}
			return withConn(ctx, cmd, func(ctx context.Context, conn *grpc.ClientConn) error {
				if _, err := pantryv1.NewInventoryServiceClient(conn).RemoveLot(ctx, &pantryv1.RemoveLotRequest{ID: id}); err != nil {
					return fmt.Errorf("remove lot %s: %w", id, err)
				}
				_, err := fmt.Fprintf(cmd.Root().Writer, "removed %s\n", id)
				return err
			})
		},
	}
}

// withConn dials the service and runs fn with the owner attached to the
// outgoing metadata.
func withConn(ctx context.Context, cmd *cli.Command, fn func(context.Context, *grpc.ClientConn) error) error {
	format := outputFormat(cmd.String("format"))
	if !format.valid() {
		return fmt.Errorf("unknown output format: %q", format)
	}

	conn, err := grpc.NewClient(cmd.String("addr"), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connect %s: %w", cmd.String("addr"), err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, auth.OwnerMetadataKey, cmd.String("owner"))

	return fn(ctx, conn)
}
