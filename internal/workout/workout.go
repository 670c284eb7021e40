package workout

import "fmt"

// Exercise is a single named exercise. UsesWeight tells whether the used
// weight is tracked alongside the repetitions.
type Exercise struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	UsesWeight bool   `json:"usesWeight"`
}

// Workout is a named, ordered collection of exercises. Exercises holds the
// program (display) order; the execution order may differ for workouts with
// an ordering pattern set (see ExecutionOrder).
type Workout struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	OrderingPattern OrderingPattern `json:"orderingPattern"`
	Exercises       []Exercise      `json:"exercises"`
}

// Repeats tells whether the workout expands its exercise list during
// execution.
func (w *Workout) Repeats() bool {
	return w.OrderingPattern != PatternNone
}

// ISO weekdays, as in EXTRACT(isodow FROM now()).
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

var dayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func DayName(day int) string {
	if name, ok := dayNames[day]; ok {
		return name
	}
	return fmt.Sprintf("unknown day %d", day)
}

func IsValidDay(day int) bool {
	return day >= Monday && day <= Sunday
}

// ScheduleEntry assigns a workout to an ISO weekday. At most one workout per
// weekday, enforced with a unique constraint on day.
type ScheduleEntry struct {
	ID        int    `json:"id"`
	Day       int    `json:"day"`
	WorkoutID int    `json:"workoutId"`
	Workout   string `json:"workout"`
}
