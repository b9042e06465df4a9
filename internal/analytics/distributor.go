package analytics

// DistributeManday splits a task's total manday evenly across its
// assigned months. The input may contain duplicate month ids (a task
// can carry several activity types in the same month); duplicates
// count once. The returned shares always sum to the input manday for
// any non-empty month set.
//
// Zero assigned months yields an empty map, not an error: the task
// simply contributes nothing to the monthly chart.
func DistributeManday(manday float64, monthIDs []int64) map[int64]float64 {
	distinct := make(map[int64]struct{}, len(monthIDs))
	for _, id := range monthIDs {
		distinct[id] = struct{}{}
	}

	shares := make(map[int64]float64, len(distinct))
	if len(distinct) == 0 {
		return shares
	}

	share := manday / float64(len(distinct))
	for id := range distinct {
		shares[id] = share
	}
	return shares
}
