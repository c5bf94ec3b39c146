package consumption

import (
	"context"
	"errors"
	"sort"

	"github.com/fekuna/household-pantry-service/internal/inventory/dto"
	"github.com/fekuna/household-pantry-service/internal/model"
	recipedto "github.com/fekuna/household-pantry-service/internal/recipe/dto"
)

var errStaleLot = errors.New("lot changed since it was read")

// fakeStore backs both repositories with maps. ApplyConsumption validates the
// whole batch before touching anything, like a rolled back transaction.
type fakeStore struct {
	recipes map[string]model.Recipe
	lots    map[string]model.InventoryLot
	logs    []model.UsageLog

	findErr   error
	listErr   error
	commitErr error
	logErr    error

	lotReads int
	batches  []*model.ConsumptionBatch
}

func newFakeStore(recipes []model.Recipe, lots []model.InventoryLot) *fakeStore {
	s := &fakeStore{
		recipes: make(map[string]model.Recipe),
		lots:    make(map[string]model.InventoryLot),
	}
	for _, r := range recipes {
		s.recipes[r.ID] = r
	}
	for _, l := range lots {
		s.lots[l.ID] = l
	}
	return s
}

func (s *fakeStore) FindByID(_ context.Context, ownerID, id string) (*model.Recipe, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	r, ok := s.recipes[id]
	if !ok || r.OwnerID != ownerID {
		return nil, nil
	}
	return &r, nil
}

func (s *fakeStore) ListByOwner(_ context.Context, ownerID string) ([]model.InventoryLot, error) {
	s.lotReads++
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []model.InventoryLot
	for _, l := range s.lots {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) FindAll(ctx context.Context, f *dto.LotFilters) ([]model.InventoryLot, int, error) {
	lots, err := s.ListByOwner(ctx, f.OwnerID)
	return lots, len(lots), err
}

func (s *fakeStore) Create(_ context.Context, lot *model.InventoryLot) error {
	s.lots[lot.ID] = *lot
	return nil
}

func (s *fakeStore) Delete(_ context.Context, ownerID, id string) error {
	delete(s.lots, id)
	return nil
}

func (s *fakeStore) ApplyConsumption(_ context.Context, batch *model.ConsumptionBatch) error {
	s.batches = append(s.batches, batch)
	if s.commitErr != nil {
		return s.commitErr
	}

	for _, m := range batch.Mutations {
		current, ok := s.lots[m.LotID]
		if !ok || current.OwnerID != batch.OwnerID || !current.Quantity.Equal(m.QuantityBefore) {
			return errStaleLot
		}
	}

	for _, m := range batch.Mutations {
		if m.Kind == model.LotMutationDelete {
			delete(s.lots, m.LotID)
			continue
		}
		l := s.lots[m.LotID]
		l.Quantity = m.QuantityAfter
		s.lots[m.LotID] = l
	}

	r := s.recipes[batch.Usage.RecipeID]
	r.TimesUsed = batch.Usage.TimesUsed
	lastUsed := batch.Usage.LastUsed
	r.LastUsed = &lastUsed
	s.recipes[r.ID] = r
	return nil
}

func (s *fakeStore) CreateUsageLog(_ context.Context, log *model.UsageLog) error {
	if s.logErr != nil {
		return s.logErr
	}
	s.logs = append(s.logs, *log)
	return nil
}

func (s *fakeStore) ListUsageLogs(_ context.Context, f *recipedto.UsageLogFilters) ([]model.UsageLog, int, error) {
	var out []model.UsageLog
	for _, l := range s.logs {
		if l.OwnerID == f.OwnerID && (f.RecipeID == "" || l.RecipeID == f.RecipeID) {
			out = append(out, l)
		}
	}
	return out, len(out), nil
}
