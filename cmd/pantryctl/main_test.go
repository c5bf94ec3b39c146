package main

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	pantryv1 "github.com/fekuna/household-pantry-service/internal/api/pantryv1"
	"github.com/fekuna/household-pantry-service/internal/auth"
	"github.com/fekuna/household-pantry-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

type fakeInventory struct {
	pantryv1.UnimplementedInventoryServiceServer
	owner   string
	req     *pantryv1.ListLotsRequest
	added   *pantryv1.AddLotRequest
	removed string
}

func (f *fakeInventory) ListLots(ctx context.Context, req *pantryv1.ListLotsRequest) (*pantryv1.ListLotsResponse, error) {
	f.owner = auth.GetOwnerID(ctx)
	f.req = req
	return &pantryv1.ListLotsResponse{
		Lots:  []*pantryv1.Lot{{ID: "lot-1", Name: "Flour", Quantity: "2.5", Unit: "kg"}},
		Total: 1,
	}, nil
}

func (f *fakeInventory) AddLot(ctx context.Context, req *pantryv1.AddLotRequest) (*pantryv1.Lot, error) {
	f.owner = auth.GetOwnerID(ctx)
	f.added = req
	return &pantryv1.Lot{ID: "lot-9", Name: req.Name, Quantity: req.Quantity, Unit: req.Unit, ExpiresAt: req.ExpiresAt}, nil
}

func (f *fakeInventory) RemoveLot(ctx context.Context, req *pantryv1.RemoveLotRequest) (*pantryv1.RemoveLotResponse, error) {
	f.owner = auth.GetOwnerID(ctx)
	f.removed = req.ID
	return &pantryv1.RemoveLotResponse{}, nil
}

type fakeRecipes struct {
	pantryv1.UnimplementedRecipeServiceServer
	req     *pantryv1.UseRecipeRequest
	history *pantryv1.ListUsageLogsRequest
}

func (f *fakeRecipes) ListUsageLogs(_ context.Context, req *pantryv1.ListUsageLogsRequest) (*pantryv1.ListUsageLogsResponse, error) {
	f.history = req
	return &pantryv1.ListUsageLogsResponse{}, nil
}

func (f *fakeRecipes) UseRecipe(_ context.Context, req *pantryv1.UseRecipeRequest) (*pantryv1.UseRecipeResponse, error) {
	f.req = req
	return &pantryv1.UseRecipeResponse{
		UsageLog:       &pantryv1.UsageLog{ID: "log-1", RecipeID: req.RecipeID, Multiplier: "2"},
		FullySatisfied: true,
	}, nil
}

func startServer(t *testing.T) (string, *fakeInventory, *fakeRecipes) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	inv, rec := &fakeInventory{}, &fakeRecipes{}
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(middleware.ContextInterceptor()))
	pantryv1.RegisterInventoryServiceServer(srv, inv)
	pantryv1.RegisterRecipeServiceServer(srv, rec)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return lis.Addr().String(), inv, rec
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.Writer = &out
	err := cmd.Run(context.Background(), append([]string{"pantryctl"}, args...))
	return out.String(), err
}

func Test_Lots_YAMLOutput(t *testing.T) {
	addr, inv, _ := startServer(t)

	out, err := run(t, "--addr", addr, "--owner", "house-1", "lots", "--name", "flour")
	require.NoError(t, err)

	assert.Equal(t, "house-1", inv.owner)
	assert.Equal(t, "flour", inv.req.Name)
	assert.Contains(t, out, "lots:\n")
	assert.Contains(t, out, "name: Flour")
	assert.Contains(t, out, "total: 1")
}

func Test_Lots_ExpiringBefore(t *testing.T) {
	addr, inv, _ := startServer(t)

	_, err := run(t, "--addr", addr, "--owner", "house-1", "lots", "--expiring-before", "2026-04-01")
	require.NoError(t, err)

	require.NotNil(t, inv.req.ExpiringBefore)
	assert.True(t, inv.req.ExpiringBefore.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func Test_Lots_BadDate(t *testing.T) {
	_, err := run(t, "--owner", "house-1", "lots", "--expiring-before", "next week")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--expiring-before")
}

func Test_LotsAdd_SendsLot(t *testing.T) {
	addr, inv, _ := startServer(t)

	out, err := run(t, "--addr", addr, "--owner", "house-1", "lots", "add",
		"--name", "Milk", "--quantity", "1.5", "--unit", "l", "--expires", "2026-05-02T09:00:00+02:00")
	require.NoError(t, err)

	require.NotNil(t, inv.added)
	assert.Equal(t, "house-1", inv.owner)
	assert.Equal(t, "Milk", inv.added.Name)
	assert.Equal(t, "1.5", inv.added.Quantity)
	assert.Equal(t, "l", inv.added.Unit)
	require.NotNil(t, inv.added.ExpiresAt)
	assert.True(t, inv.added.ExpiresAt.Equal(time.Date(2026, 5, 2, 7, 0, 0, 0, time.UTC)))
	assert.Contains(t, out, "id: lot-9")
}

func Test_LotsRm(t *testing.T) {
	addr, inv, _ := startServer(t)

	out, err := run(t, "--addr", addr, "--owner", "house-1", "lots", "rm", "lot-3")
	require.NoError(t, err)

	assert.Equal(t, "lot-3", inv.removed)
	assert.Equal(t, "removed lot-3\n", out)
}

func Test_LotsRm_RequiresID(t *testing.T) {
	_, err := run(t, "--owner", "house-1", "lots", "rm")
	assert.ErrorIs(t, err, errMissingLot)
}

func Test_History_DateRange(t *testing.T) {
	addr, _, rec := startServer(t)

	_, err := run(t, "--addr", addr, "--owner", "house-1", "history",
		"--recipe", "pancakes", "--since", "2026-01-01", "--until", "2026-02-01")
	require.NoError(t, err)

	require.NotNil(t, rec.history)
	assert.Equal(t, "pancakes", rec.history.RecipeID)
	require.NotNil(t, rec.history.StartDate)
	require.NotNil(t, rec.history.EndDate)
	assert.True(t, rec.history.StartDate.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rec.history.EndDate.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func Test_Use_JSONOutput(t *testing.T) {
	addr, _, rec := startServer(t)

	out, err := run(t, "--addr", addr, "--owner", "house-1", "--format", "json", "use", "--multiplier", "2", "pancakes")
	require.NoError(t, err)

	assert.Equal(t, "pancakes", rec.req.RecipeID)
	assert.Equal(t, 2.0, rec.req.Multiplier)
	assert.Contains(t, out, `"fully_satisfied": true`)
	assert.Contains(t, out, `"recipe_id": "pancakes"`)
}

func Test_Use_RequiresRecipeID(t *testing.T) {
	_, err := run(t, "--owner", "house-1", "use")
	assert.ErrorIs(t, err, errMissingRecipe)
}

func Test_UnknownFormat(t *testing.T) {
	_, err := run(t, "--owner", "house-1", "--format", "xml", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func Test_WriteOutput_YAMLUsesJSONNames(t *testing.T) {
	var buf bytes.Buffer
	err := writeOutput(&buf, formatYAML, &pantryv1.Shortfall{Ingredient: "Milk", Missing: "1", Reason: "not_found"})
	require.NoError(t, err)

	assert.Equal(t, "ingredient: Milk\nunit: \"\"\nrequested: \"\"\nmissing: \"1\"\nreason: not_found\n", buf.String())
}
