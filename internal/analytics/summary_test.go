package analytics

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Bossax/creagy-project-tracker/internal/model"
)

func TestBuildSummary_noTasks(t *testing.T) {
	t.Parallel()

	project := model.Project{
		Budget:    12000,
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.June, 30),
	}

	s, err := BuildSummary(project, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.DurationMonths != 6 {
		t.Errorf("DurationMonths = %d, want 6", s.DurationMonths)
	}
	if s.TotalManday != 0 {
		t.Errorf("TotalManday = %v, want 0", s.TotalManday)
	}
	if s.TotalBudget != 12000 {
		t.Errorf("TotalBudget = %v, want project budget only", s.TotalBudget)
	}
}

func TestBuildSummary_durations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same month", date(2024, time.March, 1), date(2024, time.March, 31), 1},
		{"half year", date(2024, time.January, 1), date(2024, time.June, 30), 6},
		{"across years", date(2024, time.November, 1), date(2025, time.February, 28), 4},
		{"single day", date(2024, time.July, 15), date(2024, time.July, 15), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := BuildSummary(model.Project{StartDate: tc.start, EndDate: tc.end}, nil)
			if err != nil {
				t.Fatal(err)
			}
			if s.DurationMonths != tc.want {
				t.Errorf("DurationMonths = %d, want %d", s.DurationMonths, tc.want)
			}
		})
	}
}

func TestBuildSummary_additivity(t *testing.T) {
	t.Parallel()

	project := model.Project{
		Budget:    10000,
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.December, 31),
	}
	tasks := []model.Task{
		{ID: 1, Manday: 10, Budget: 2500},
		{ID: 2, Manday: 7.5, Budget: 1500},
		{ID: 3, Manday: 0, Budget: 0}, // zero-month degenerate task still counts
	}

	s, err := BuildSummary(project, tasks)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.TotalManday-17.5) > 1e-9 {
		t.Errorf("TotalManday = %v, want 17.5", s.TotalManday)
	}
	if math.Abs(s.TotalBudget-14000) > 1e-9 {
		t.Errorf("TotalBudget = %v, want 14000", s.TotalBudget)
	}
}

func TestBuildSummary_invalidRange(t *testing.T) {
	t.Parallel()

	project := model.Project{
		StartDate: date(2024, time.June, 1),
		EndDate:   date(2024, time.January, 31),
	}
	if _, err := BuildSummary(project, nil); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
