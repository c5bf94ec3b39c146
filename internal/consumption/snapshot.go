package consumption

import (
	"slices"

	"github.com/fekuna/household-pantry-service/internal/model"
)

// snapshot is the run's working view of the owner's lots. Mutations staged by
// one ingredient are visible to the ingredients after it, and every lot ends
// up with at most one mutation.
type snapshot struct {
	lots    []model.InventoryLot
	index   map[string]int
	deleted map[string]bool
	staged  map[string]*model.LotMutation
	order   []string
}

func newSnapshot(lots []model.InventoryLot) *snapshot {
	s := &snapshot{
		lots:    slices.Clone(lots),
		index:   make(map[string]int, len(lots)),
		deleted: make(map[string]bool),
		staged:  make(map[string]*model.LotMutation),
	}
	for i, lot := range s.lots {
		s.index[lot.ID] = i
	}
	return s
}

func (s *snapshot) available() []model.InventoryLot {
	out := make([]model.InventoryLot, 0, len(s.lots))
	for _, lot := range s.lots {
		if !s.deleted[lot.ID] {
			out = append(out, lot)
		}
	}
	return out
}

func (s *snapshot) apply(mutations []model.LotMutation) {
	for _, m := range mutations {
		if existing, ok := s.staged[m.LotID]; ok {
			existing.Kind = m.Kind
			existing.QuantityAfter = m.QuantityAfter
		} else {
			staged := m
			s.staged[m.LotID] = &staged
			s.order = append(s.order, m.LotID)
		}

		s.lots[s.index[m.LotID]].Quantity = m.QuantityAfter
		if m.Kind == model.LotMutationDelete {
			s.deleted[m.LotID] = true
		}
	}
}

// mutations returns one mutation per touched lot in first-touch order.
func (s *snapshot) mutations() []model.LotMutation {
	out := make([]model.LotMutation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.staged[id])
	}
	return out
}
