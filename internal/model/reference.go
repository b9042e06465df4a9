package model

// Month is one entry of the calendar month catalog used as the
// discrete time axis for all analytics. Labels are "YYYY-MM"; SortKey
// gives the total order (labels are display strings, not keys).
type Month struct {
	ID      int64  `json:"id"`
	Label   string `json:"label"`
	SortKey int    `json:"sort_key"`
}

type ActivityType struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Client struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
