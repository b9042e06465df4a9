package analytics

import (
	"math"
	"testing"
)

func TestDistributeManday_evenSplit(t *testing.T) {
	t.Parallel()

	shares := DistributeManday(10, []int64{1, 2, 3})
	if len(shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(shares))
	}
	for id, share := range shares {
		if math.Abs(share-10.0/3.0) > 1e-9 {
			t.Errorf("month %d: share = %v, want %v", id, share, 10.0/3.0)
		}
	}
}

func TestDistributeManday_conservation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		manday   float64
		monthIDs []int64
	}{
		{"one month", 7.5, []int64{4}},
		{"three months", 10, []int64{1, 2, 3}},
		{"seven months", 13.37, []int64{1, 2, 3, 4, 5, 6, 7}},
		{"zero manday", 0, []int64{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sum float64
			for _, share := range DistributeManday(tc.manday, tc.monthIDs) {
				sum += share
			}
			if math.Abs(sum-tc.manday) > 1e-9 {
				t.Errorf("sum of shares = %v, want %v", sum, tc.manday)
			}
		})
	}
}

func TestDistributeManday_zeroMonths(t *testing.T) {
	t.Parallel()

	shares := DistributeManday(5, nil)
	if len(shares) != 0 {
		t.Fatalf("expected empty mapping for zero months, got %v", shares)
	}
}

func TestDistributeManday_duplicateMonthsCountOnce(t *testing.T) {
	t.Parallel()

	// Two activity types in the same month arrive as duplicate ids.
	shares := DistributeManday(9, []int64{1, 1, 2, 3, 3})
	if len(shares) != 3 {
		t.Fatalf("expected 3 distinct months, got %d", len(shares))
	}
	for id, share := range shares {
		if math.Abs(share-3) > 1e-9 {
			t.Errorf("month %d: share = %v, want 3", id, share)
		}
	}
}
