package entity

import "time"

// WeekKeyLayout formats a week start date into the key shared by every
// per-week store (SQLite, Redis mirror, HTTP API).
const WeekKeyLayout = "2006-01-02"

// WeekKey returns the storage key of the week starting at start
func WeekKey(start time.Time) string {
	return start.Format(WeekKeyLayout)
}

// Assignment is the derived fact "this week window is owned by this unit".
// It is never stored.
type Assignment struct {
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Unit          *Unit     `json:"unit"`
	IsCurrentWeek bool      `json:"is_current_week"`
}

func (a Assignment) Key() string {
	return WeekKey(a.StartDate)
}

// WeeklyRecord is the persisted state of one duty week.
// PlannedDay uses 0=Sunday..6=Saturday.
type WeeklyRecord struct {
	WeekKey    string          `json:"week_key"`
	Completed  map[string]bool `json:"completed"`
	PlannedDay *int            `json:"planned_day,omitempty"`
	Notes      string          `json:"notes"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewWeeklyRecord returns an empty record for the given week key
func NewWeeklyRecord(weekKey string) *WeeklyRecord {
	return &WeeklyRecord{
		WeekKey:   weekKey,
		Completed: map[string]bool{},
	}
}

// CompletedCount counts the tasks marked done in this record
func (r *WeeklyRecord) CompletedCount(tasks []*Task) int {
	count := 0
	for _, task := range tasks {
		if r.Completed[task.ID] {
			count++
		}
	}
	return count
}

func (r *WeeklyRecord) AllCompleted(tasks []*Task) bool {
	return len(tasks) > 0 && r.CompletedCount(tasks) == len(tasks)
}

// Duty is the week the building is currently working on, joined with its record
type Duty struct {
	Assignment Assignment    `json:"assignment"`
	PreCycle   bool          `json:"pre_cycle"`
	MyTurn     bool          `json:"my_turn"`
	Tasks      []*Task       `json:"tasks"`
	Record     *WeeklyRecord `json:"record"`
}

func (d *Duty) CompletedCount() int {
	return d.Record.CompletedCount(d.Tasks)
}

func (d *Duty) AllCompleted() bool {
	return d.Record.AllCompleted(d.Tasks)
}

// WeekSummary is a past week with its completion status
type WeekSummary struct {
	Assignment Assignment `json:"assignment"`
	Completed  int        `json:"completed"`
	Total      int        `json:"total"`
	PlannedDay *int       `json:"planned_day,omitempty"`
	Notes      string     `json:"notes"`
}
