package analytics

import (
	"sort"

	"github.com/Bossax/creagy-project-tracker/internal/model"
)

// MonthRegistry is the ordered catalog of calendar months the
// analytics derivations use as their time axis. Months are totally
// ordered by SortKey; two distinct months sharing a SortKey is an
// upstream data anomaly, resolved deterministically by treating the
// lower id as earlier.
type MonthRegistry struct {
	ordered []model.Month
	byID    map[int64]model.Month
}

func NewMonthRegistry(months []model.Month) *MonthRegistry {
	ordered := make([]model.Month, len(months))
	copy(ordered, months)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].SortKey != ordered[j].SortKey {
			return ordered[i].SortKey < ordered[j].SortKey
		}
		return ordered[i].ID < ordered[j].ID
	})

	byID := make(map[int64]model.Month, len(ordered))
	for _, m := range ordered {
		byID[m.ID] = m
	}

	return &MonthRegistry{ordered: ordered, byID: byID}
}

// Ordered returns all months in SortKey order.
func (r *MonthRegistry) Ordered() []model.Month {
	return r.ordered
}

func (r *MonthRegistry) Lookup(id int64) (model.Month, error) {
	m, ok := r.byID[id]
	if !ok {
		return model.Month{}, ErrMonthNotFound
	}
	return m, nil
}

// Earlier reports whether month a sorts before month b.
func (r *MonthRegistry) Earlier(a, b model.Month) bool {
	if a.SortKey != b.SortKey {
		return a.SortKey < b.SortKey
	}
	return a.ID < b.ID
}

// DuplicateSortKeys returns the SortKey values shared by more than one
// month. The registry still orders such months deterministically; the
// caller is expected to report the anomaly.
func (r *MonthRegistry) DuplicateSortKeys() []int {
	var dups []int
	for i := 1; i < len(r.ordered); i++ {
		if r.ordered[i].SortKey == r.ordered[i-1].SortKey {
			if len(dups) == 0 || dups[len(dups)-1] != r.ordered[i].SortKey {
				dups = append(dups, r.ordered[i].SortKey)
			}
		}
	}
	return dups
}
