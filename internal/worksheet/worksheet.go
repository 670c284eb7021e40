package worksheet

import (
	"encoding/json"
	"time"

	"github.com/mkrstic/worksheet/internal/workout"
)

const (
	StatusInProgress = "in progress"
	StatusDone       = "done"
)

// Worksheet is one dated instance of performing a workout. At most one
// worksheet exists per calendar date, enforced in storage.
type Worksheet struct {
	ID        int        `json:"id"`
	WorkoutID int        `json:"workoutId"`
	Workout   string     `json:"workout"`
	Done      bool       `json:"done"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	Date      time.Time  `json:"date"`
}

func (ws *Worksheet) Status() string {
	if ws.Done {
		return StatusDone
	}
	return StatusInProgress
}

// Result is one exercise slot of a worksheet. The full set of results is
// materialized when the worksheet is created, mirroring the execution order;
// afterwards only reps and weight change. Previous carries the result at the
// same position in the most recent prior closed worksheet of the same
// workout, when one exists.
type Result struct {
	ID          int              `json:"id"`
	WorksheetID int              `json:"worksheetId"`
	Exercise    workout.Exercise `json:"exercise"`
	Position    int              `json:"position"`
	Reps        *int             `json:"reps"`
	Weight      *int             `json:"weight,omitempty"`
	Previous    *Result          `json:"previous,omitempty"`
}

// IsFilled tells whether the result has been recorded. Reps is the primary
// signal; weight is only conditionally meaningful.
func (r *Result) IsFilled() bool {
	return r.Reps != nil
}

// MarshalJSON adds the computed filled flag to the wire form.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		plain
		Filled bool `json:"filled"`
	}{plain(r), r.IsFilled()})
}
