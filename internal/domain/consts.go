package domain

// Planned cleaning day numbers. Sunday is 0 even though duty weeks run
// Monday..Sunday; stored records already use this numbering.
const (
	Sunday    = 0
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
)

// WeekdayNames maps planned day numbers to their English names
var WeekdayNames = map[int]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// WeekdayNumbers maps user input to planned day numbers
var WeekdayNumbers = map[string]int{
	"0":         Sunday,
	"1":         Monday,
	"2":         Tuesday,
	"3":         Wednesday,
	"4":         Thursday,
	"5":         Friday,
	"6":         Saturday,
	"sun":       Sunday,
	"mon":       Monday,
	"tue":       Tuesday,
	"wed":       Wednesday,
	"thu":       Thursday,
	"fri":       Friday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
}

// WeekOrder lists planned day numbers in duty-week order (Monday first)
var WeekOrder = []int{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

const (
	// DateLayout is the ISO calendar date used for the cycle anchor and week keys
	DateLayout = "2006-01-02"

	// TimeLayout is the HH:MM notification time format
	TimeLayout = "15:04"

	DefaultCycleStartDate   = "2025-01-06"
	DefaultNotificationTime = "09:00"

	// DefaultScheduleWeeks is the length of the long-range schedule
	DefaultScheduleWeeks = 52
	// DefaultUpcomingWeeks is used when a caller does not ask for a length
	DefaultUpcomingWeeks = 6
	DefaultHistoryWeeks  = 4
	MaxListWeeks         = 104
)

// DefaultUnit is a seed roster entry
type DefaultUnit struct {
	ID     string
	Number string
}

// DefaultUnits is the roster seeded on first start, in rotation order
var DefaultUnits = []DefaultUnit{
	{ID: "1", Number: "101"},
	{ID: "2", Number: "102"},
	{ID: "3", Number: "201"},
	{ID: "4", Number: "202"},
	{ID: "5", Number: "301"},
	{ID: "6", Number: "302"},
}

// DefaultTask is a seed checklist entry
type DefaultTask struct {
	ID    string
	Label string
}

// DefaultTasks is the weekly checklist seeded on first start
var DefaultTasks = []DefaultTask{
	{ID: "stairs_corridor", Label: "Clean corridor and stairs"},
	{ID: "garage", Label: "Clean garage"},
	{ID: "bbq", Label: "Clean barbecue area"},
	{ID: "trash_house", Label: "Clean the trash shelter"},
}

// MaxNotesLength caps the free-text notes of a week, in characters
const MaxNotesLength = 500
