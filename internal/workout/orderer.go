package workout

// OrderingPattern selects how a workout's exercise list is expanded into the
// actual execution order. Stored as a workout attribute, so new patterns can
// be added without touching existing workouts.
type OrderingPattern string

const (
	// PatternNone - execution order equals program order.
	PatternNone OrderingPattern = ""
	// PatternPairsReversed - a second round is added, with each consecutive
	// pair flipped: 1, 2, 3, 4 -> 1, 2, 3, 4, 2, 1, 4, 3
	PatternPairsReversed OrderingPattern = "pairs_reversed"
	// PatternTripletsDoubled - each consecutive triplet is performed twice
	// before moving on: 1, 2, 3, 4, 5, 6 -> 1, 2, 3, 1, 2, 3, 4, 5, 6, 4, 5, 6
	PatternTripletsDoubled OrderingPattern = "triplets_doubled"
)

func (p OrderingPattern) String() string {
	return string(p)
}

func (p OrderingPattern) IsValid() bool {
	switch p {
	case PatternNone, PatternPairsReversed, PatternTripletsDoubled:
		return true
	default:
		return false
	}
}

type orderingFunc func(base []Exercise) []Exercise

// Unknown patterns fall back to program order, so a bad value in the
// database can never make a workout unusable.
var orderings = map[OrderingPattern]orderingFunc{
	PatternPairsReversed:   pairsReversed,
	PatternTripletsDoubled: tripletsDoubled,
}

// ExecutionOrder expands the workout's program-ordered exercise list into
// the sequence of exercise slots actually performed. It is a pure function
// of the exercise list and the ordering pattern; callers materialize the
// result exactly once, when a worksheet is created.
func (w *Workout) ExecutionOrder() []Exercise {
	if !w.Repeats() {
		return w.Exercises
	}
	ordering, ok := orderings[w.OrderingPattern]
	if !ok {
		return w.Exercises
	}
	return ordering(w.Exercises)
}

// pairsReversed emits the whole list, then every full consecutive pair again
// in flipped order. A trailing unpaired exercise appears only in the first
// round, so every exercise is performed at least once and nothing is
// repeated by accident.
func pairsReversed(base []Exercise) []Exercise {
	out := make([]Exercise, 0, 2*len(base))
	out = append(out, base...)
	for i := 0; i+1 < len(base); i += 2 {
		out = append(out, base[i+1], base[i])
	}
	return out
}

// tripletsDoubled emits every full consecutive triplet twice. Leftover
// exercises that do not fill a triplet are appended once, at the end.
func tripletsDoubled(base []Exercise) []Exercise {
	out := make([]Exercise, 0, 2*len(base))
	i := 0
	for ; i+2 < len(base); i += 3 {
		triplet := base[i : i+3]
		out = append(out, triplet...)
		out = append(out, triplet...)
	}
	out = append(out, base[i:]...)
	return out
}
