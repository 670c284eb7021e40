package worksheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	FieldReps   = "reps"
	FieldWeight = "weight"
)

var ErrUnsupportedField = errors.New("unsupported field")

// ResultUpdate is one raw incoming change: values arrive as strings and get
// validated before anything is written.
type ResultUpdate struct {
	ResultID int    `json:"resultId"`
	Reps     string `json:"reps"`
	Weight   string `json:"weight"`
}

type FieldErrors map[string]string

// UpdateOutcome is the validation verdict for one result: either the parsed
// values to persist, or the per-field error messages.
type UpdateOutcome struct {
	ResultID int         `json:"resultId"`
	Reps     *int        `json:"-"`
	Weight   *int        `json:"-"`
	Errors   FieldErrors `json:"errors,omitempty"`
}

func (o *UpdateOutcome) OK() bool {
	return len(o.Errors) == 0
}

// ValidationError is a single-field rejection, used by the single-field
// update path where one message is enough.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validateUpdate checks one raw update against the rules for its exercise.
// Reps is mandatory and must be a non-negative integer. Weight is optional;
// for exercises that do not track weight any submitted value is discarded
// without complaint.
func validateUpdate(update ResultUpdate, usesWeight bool) UpdateOutcome {
	outcome := UpdateOutcome{
		ResultID: update.ResultID,
		Errors:   FieldErrors{},
	}

	reps := strings.TrimSpace(update.Reps)
	switch {
	case reps == "":
		outcome.Errors[FieldReps] = "missing reps"
	default:
		n, err := strconv.Atoi(reps)
		switch {
		case err != nil:
			outcome.Errors[FieldReps] = "not a number"
		case n < 0:
			outcome.Errors[FieldReps] = "reps cannot be negative"
		default:
			outcome.Reps = &n
		}
	}

	weight := strings.TrimSpace(update.Weight)
	switch {
	case !usesWeight:
		// exercise does not track weight, whatever came in is dropped
	case weight == "":
		// absent, not an error
	default:
		n, err := strconv.Atoi(weight)
		switch {
		case err != nil:
			outcome.Errors[FieldWeight] = "not a number"
		case n < 0:
			outcome.Errors[FieldWeight] = "weight cannot be negative"
		default:
			outcome.Weight = &n
		}
	}

	return outcome
}

// parseField parses a raw single-field value. The returned value is nil for
// a discarded weight (exercise does not track it).
func parseField(field, raw string, usesWeight bool) (*int, error) {
	value := strings.TrimSpace(raw)

	switch field {
	case FieldReps:
		if value == "" {
			return nil, &ValidationError{Field: FieldReps, Message: "missing reps"}
		}
	case FieldWeight:
		if !usesWeight {
			return nil, nil
		}
		if value == "" {
			return nil, nil
		}
	default:
		return nil, ErrUnsupportedField
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("expected a number, got %q", raw),
		}
	}
	if n < 0 {
		return nil, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid value %d for field '%s'", n, field),
		}
	}
	return &n, nil
}
