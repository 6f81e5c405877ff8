package entity

import "time"

// Unit is a roster entry (an apartment) taking part in the rotation.
// Rotation order is ascending Position.
type Unit struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Label returns the unit number, followed by its name when set
func (u *Unit) Label() string {
	if u.Name == "" {
		return u.Number
	}
	return u.Number + " (" + u.Name + ")"
}

type Task struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

type Settings struct {
	CycleStartDate   string    `json:"cycle_start_date" validate:"required,datetime=2006-01-02"`
	MyUnitID         string    `json:"my_unit_id"`
	NotificationTime string    `json:"notification_time" validate:"required,datetime=15:04"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
