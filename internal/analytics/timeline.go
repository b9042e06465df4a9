package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Bossax/creagy-project-tracker/internal/model"
)

const dateLayout = "2006-01-02"

const (
	KindProject = "project"
	KindTask    = "task"
)

// GanttEntry is one named date range on the timeline chart. Dates are
// ISO calendar days; the serialization at the HTTP boundary is exactly
// this struct.
type GanttEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
	Kind  string `json:"kind"`
}

// BuildTimeline derives the Gantt entries for a project and its tasks.
//
// The project entry spans the manager-entered start/end dates. Each
// task entry spans the first calendar day of its earliest assigned
// month through the last calendar day of its latest assigned month;
// "earliest" and "latest" follow the registry's SortKey order, never
// insertion order. Tasks with no assigned months are excluded rather
// than defaulted to the project span, so the chart never implies
// effort in months the manager never scheduled.
//
// Output order is stable for identical input: the project first, then
// tasks by earliest assigned month, tie-broken by task id.
func BuildTimeline(reg *MonthRegistry, project model.Project, tasks []model.Task, assignments map[int64][]model.TaskActivityAssignment) ([]GanttEntry, error) {
	entries := []GanttEntry{{
		ID:    fmt.Sprintf("project-%d", project.ID),
		Name:  project.Name,
		Start: project.StartDate.Format(dateLayout),
		End:   project.EndDate.Format(dateLayout),
		Kind:  KindProject,
	}}

	type taskWindow struct {
		task     model.Task
		earliest model.Month
		start    time.Time
		end      time.Time
	}

	windows := make([]taskWindow, 0, len(tasks))
	for _, task := range tasks {
		rows := assignments[task.ID]
		if len(rows) == 0 {
			continue
		}

		var earliest, latest model.Month
		seen := false
		for _, row := range rows {
			m, err := reg.Lookup(row.MonthID)
			if err != nil {
				return nil, fmt.Errorf("task %d assignment %d: %w", task.ID, row.ID, err)
			}
			if !seen {
				earliest, latest = m, m
				seen = true
				continue
			}
			if reg.Earlier(m, earliest) {
				earliest = m
			}
			if reg.Earlier(latest, m) {
				latest = m
			}
		}

		start, _, err := MonthBounds(earliest.Label)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", task.ID, err)
		}
		_, end, err := MonthBounds(latest.Label)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", task.ID, err)
		}

		windows = append(windows, taskWindow{task: task, earliest: earliest, start: start, end: end})
	}

	sort.Slice(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		if a.earliest.SortKey != b.earliest.SortKey {
			return a.earliest.SortKey < b.earliest.SortKey
		}
		if a.earliest.ID != b.earliest.ID {
			return a.earliest.ID < b.earliest.ID
		}
		return a.task.ID < b.task.ID
	})

	for _, w := range windows {
		entries = append(entries, GanttEntry{
			ID:    fmt.Sprintf("task-%d", w.task.ID),
			Name:  w.task.Name,
			Start: w.start.Format(dateLayout),
			End:   w.end.Format(dateLayout),
			Kind:  KindTask,
		})
	}

	return entries, nil
}

// MonthBounds returns the first and last calendar day of a "YYYY-MM"
// month label. Last-day-of-month is the documented end boundary for
// task ranges.
func MonthBounds(label string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", label)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed month label %q: %w", label, err)
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}
