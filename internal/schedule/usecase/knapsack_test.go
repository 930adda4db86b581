package usecase

import (
	"reflect"
	"testing"

	"home-pa-scheduler/internal/model"
)

func selectedIDs(ss []model.Suggestion) []string {
	ids := make([]string, 0, len(ss))
	for _, s := range ss {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestSelectOptional(t *testing.T) {
	t.Run("Prefers Higher Value Within Capacity", func(t *testing.T) {
		low := suggestion("a-low", 0.3, 0.3, 60, "")
		high := suggestion("b-high", 0.7, 0.9, 60, "")

		chosen := selectOptional([]model.Suggestion{low, high}, 60)
		if !reflect.DeepEqual(selectedIDs(chosen), []string{"b-high"}) {
			t.Errorf("expected only b-high, got %v", selectedIDs(chosen))
		}
	})

	t.Run("Packs Multiple Items", func(t *testing.T) {
		a := suggestion("a", 0.5, 0.6, 30, "")
		b := suggestion("b", 0.5, 0.6, 30, "")
		c := suggestion("c", 0.6, 0.9, 45, "")

		// capacity 60: a+b (value 0.60) beats c alone (0.54)
		chosen := selectOptional([]model.Suggestion{a, b, c}, 60)
		if !reflect.DeepEqual(selectedIDs(chosen), []string{"a", "b"}) {
			t.Errorf("expected a+b, got %v", selectedIDs(chosen))
		}
	})

	t.Run("Respects Capacity Exactly", func(t *testing.T) {
		a := suggestion("a", 0.5, 0.6, 40, "")
		b := suggestion("b", 0.5, 0.6, 40, "")

		chosen := selectOptional([]model.Suggestion{a, b}, 79)
		if len(chosen) != 1 {
			t.Fatalf("expected exactly one item within capacity 79, got %d", len(chosen))
		}
	})

	t.Run("Zero Capacity Selects Nothing", func(t *testing.T) {
		a := suggestion("a", 0.5, 0.6, 30, "")
		if chosen := selectOptional([]model.Suggestion{a}, 0); chosen != nil {
			t.Errorf("expected nil selection, got %v", selectedIDs(chosen))
		}
	})

	t.Run("Deterministic Across Runs", func(t *testing.T) {
		// equal value and weight: the id-sorted DP must resolve ties the same way every time
		items := []model.Suggestion{
			suggestion("c", 0.5, 0.6, 30, ""),
			suggestion("a", 0.5, 0.6, 30, ""),
			suggestion("b", 0.5, 0.6, 30, ""),
		}
		first := selectedIDs(selectOptional(items, 60))
		for i := 0; i < 5; i++ {
			again := selectedIDs(selectOptional(items, 60))
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("selection changed between runs: %v vs %v", first, again)
			}
		}
	})
}
