package consumption

import (
	"testing"

	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/stretchr/testify/assert"
)

func Test_MatchLots(t *testing.T) {
	lots := []model.InventoryLot{
		lot("l1", "Flour", "5", "cup", nil),
		lot("l2", "flour", "1", "g", nil),
		lot("l3", "whole wheat flour", "2", "cup", nil),
		lot("l4", "FLOUR ", "2", "cup", nil),
		lot("l5", "sugar", "2", "cup", nil),
	}

	tests := []struct {
		name       string
		ingredient model.RecipeIngredient
		want       []string
	}{
		{
			name:       "case_insensitive_exact_name",
			ingredient: ingredient("flour", "1", "cup"),
			want:       []string{"l1", "l2"},
		},
		{
			name:       "unit_is_not_part_of_matching",
			ingredient: ingredient("FLOUR", "1", "kg"),
			want:       []string{"l1", "l2"},
		},
		{
			name:       "no_match",
			ingredient: ingredient("vanilla", "1", "tbsp"),
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lotIDs(MatchLots(tt.ingredient, lots)))
		})
	}
}
