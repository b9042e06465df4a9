package analytics

import (
	"errors"
	"testing"

	"github.com/Bossax/creagy-project-tracker/internal/model"
)

func testMonths() []model.Month {
	return []model.Month{
		{ID: 3, Label: "2024-03", SortKey: 202403},
		{ID: 1, Label: "2024-01", SortKey: 202401},
		{ID: 2, Label: "2024-02", SortKey: 202402},
	}
}

func TestMonthRegistry_ordering(t *testing.T) {
	t.Parallel()

	reg := NewMonthRegistry(testMonths())
	got := reg.Ordered()
	want := []string{"2024-01", "2024-02", "2024-03"}
	if len(got) != len(want) {
		t.Fatalf("expected %d months, got %d", len(want), len(got))
	}
	for i, label := range want {
		if got[i].Label != label {
			t.Errorf("position %d: label = %q, want %q", i, got[i].Label, label)
		}
	}
}

func TestMonthRegistry_lookupUnknown(t *testing.T) {
	t.Parallel()

	reg := NewMonthRegistry(testMonths())
	if _, err := reg.Lookup(99); !errors.Is(err, ErrMonthNotFound) {
		t.Fatalf("expected ErrMonthNotFound, got %v", err)
	}
	if m, err := reg.Lookup(2); err != nil || m.Label != "2024-02" {
		t.Fatalf("Lookup(2) = %v, %v", m, err)
	}
}

func TestMonthRegistry_duplicateSortKeyTieBreak(t *testing.T) {
	t.Parallel()

	reg := NewMonthRegistry([]model.Month{
		{ID: 8, Label: "2024-05b", SortKey: 202405},
		{ID: 5, Label: "2024-05a", SortKey: 202405},
	})

	ordered := reg.Ordered()
	if ordered[0].ID != 5 {
		t.Errorf("lower id should sort first on duplicate sort key, got id %d", ordered[0].ID)
	}

	dups := reg.DuplicateSortKeys()
	if len(dups) != 1 || dups[0] != 202405 {
		t.Errorf("DuplicateSortKeys = %v, want [202405]", dups)
	}
}
