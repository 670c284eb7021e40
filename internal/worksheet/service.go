package worksheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mkrstic/worksheet/internal/telemetry/metrics"
	"github.com/mkrstic/worksheet/internal/telemetry/tracing"
	"github.com/mkrstic/worksheet/internal/workout"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=worksheet_test

var (
	ErrWorksheetClosed = errors.New("worksheet is closed")
	// creation is blocked while an older worksheet is still open
	ErrActiveWorksheetExists = errors.New("an older active worksheet exists")
	ErrValidationFailed      = errors.New("validation failed")
)

type sessionRepo interface {
	GetOrCreate(ctx context.Context, w *workout.Workout, date time.Time) (*Worksheet, bool, error)
	Get(ctx context.Context, id int) (*Worksheet, error)
	GetByDate(ctx context.Context, date time.Time) (*Worksheet, error)
	ListActive(ctx context.Context, before time.Time) ([]Worksheet, error)
	PreviousClosed(ctx context.Context, workoutID int, before time.Time) (*Worksheet, error)
	Close(ctx context.Context, id int) (bool, error)
	Results(ctx context.Context, worksheetID int) ([]Result, error)
	GetResult(ctx context.Context, worksheetID, resultID int) (*Result, error)
	UpdateResults(ctx context.Context, worksheetID int, patches []ResultPatch) error
	UpdateResult(ctx context.Context, worksheetID int, patch ResultPatch) (bool, error)
}

type scheduleResolver interface {
	WorkoutForDate(ctx context.Context, date time.Time) (*workout.Workout, error)
}

// View is a worksheet together with its ordered results, the read model
// served to clients.
type View struct {
	Worksheet *Worksheet `json:"worksheet"`
	Status    string     `json:"status"`
	Results   []Result   `json:"results"`
}

// Overview is the index read model: stale open sessions first, otherwise
// whatever today holds.
type Overview struct {
	Active    []Worksheet      `json:"active,omitempty"`
	Scheduled *workout.Workout `json:"scheduled,omitempty"`
	Today     *View            `json:"today,omitempty"`
}

// Service governs the worksheet lifecycle: creation gated by the schedule,
// result updates gated by validation, and closing.
type Service struct {
	repo     sessionRepo
	resolver scheduleResolver
	metrics  *metrics.Manager
}

func NewService(repo sessionRepo, resolver scheduleResolver, metrics *metrics.Manager) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		metrics:  metrics,
	}
}

// Overview assembles the index read model for the given moment: any stale
// open worksheets, the workout scheduled for today, and today's worksheet
// when it already exists.
func (s *Service) Overview(ctx context.Context, now time.Time) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.worksheet.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	overview := &Overview{}

	overview.Active, err = s.repo.ListActive(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list active worksheets: %w", err)
	}

	overview.Scheduled, err = s.resolver.WorkoutForDate(ctx, now)
	if err != nil && !errors.Is(err, workout.ErrNothingScheduled) {
		return nil, fmt.Errorf("resolve scheduled workout: %w", err)
	}

	today, err := s.ForDate(ctx, now)
	if err != nil && !errors.Is(err, ErrWorksheetNotFound) {
		return nil, err
	}
	overview.Today = today

	return overview, nil
}

// Create starts (or returns) the worksheet for the given moment. It refuses
// while an older worksheet is still open and is a no-op when nothing is
// scheduled for the day.
func (s *Service) Create(ctx context.Context, now time.Time) (_ *View, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.worksheet.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	active, err := s.repo.ListActive(ctx, now)
	if err != nil {
		return nil, false, fmt.Errorf("list active worksheets: %w", err)
	}
	if len(active) > 0 {
		return nil, false, ErrActiveWorksheetExists
	}

	scheduled, err := s.resolver.WorkoutForDate(ctx, now)
	if err != nil {
		// includes workout.ErrNothingScheduled, nothing to create then
		return nil, false, err
	}

	ws, created, err := s.repo.GetOrCreate(ctx, scheduled, now)
	if err != nil {
		return nil, false, fmt.Errorf("get or create worksheet: %w", err)
	}
	if created {
		s.metrics.CounterWorksheetsCreated.Inc()
		log.Debugf("worksheet %d created for %s [%s]", ws.ID, now.Format(dateLayout), scheduled.Name)
	}

	view, err := s.view(ctx, ws)
	if err != nil {
		return nil, false, err
	}
	return view, created, nil
}

// ForDate returns the worksheet for the given date with its ordered results.
// While the sheet is open, each result carries the matching result of the
// most recent prior closed worksheet of the same workout.
func (s *Service) ForDate(ctx context.Context, date time.Time) (_ *View, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.worksheet.fordate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ws, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, ws)
}

// Close marks the worksheet done. Closing an unknown or already closed
// worksheet is a quiet no-op, the end timestamp never changes after the
// first close.
func (s *Service) Close(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.worksheet.close")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	closed, err := s.repo.Close(ctx, id)
	if err != nil {
		return fmt.Errorf("close worksheet: %w", err)
	}
	if closed {
		s.metrics.CounterWorksheetsClosed.Inc()
		log.Debugf("worksheet %d closed", id)
	}
	return nil
}

// ApplyBatch validates the whole batch first and persists it only when every
// update passes; one bad row rejects everything. On validation failure the
// outcomes carry per-result field errors and the returned error is
// ErrValidationFailed.
func (s *Service) ApplyBatch(ctx context.Context, worksheetID int, updates []ResultUpdate) (_ []Result, outcomes []UpdateOutcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.worksheet.applybatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("worksheet.id", worksheetID))
	span.SetAttributes(attribute.Int("updates", len(updates)))

	ws, err := s.repo.Get(ctx, worksheetID)
	if err != nil {
		return nil, nil, err
	}
	if ws.Done {
		return nil, nil, ErrWorksheetClosed
	}

	results, err := s.repo.Results(ctx, worksheetID)
	if err != nil {
		return nil, nil, fmt.Errorf("get results: %w", err)
	}
	byID := make(map[int]Result, len(results))
	for _, result := range results {
		byID[result.ID] = result
	}

	outcomes = make([]UpdateOutcome, 0, len(updates))
	failed := false
	for _, update := range updates {
		result, ok := byID[update.ResultID]
		if !ok {
			outcomes = append(outcomes, UpdateOutcome{
				ResultID: update.ResultID,
				Errors:   FieldErrors{"resultId": "unknown result"},
			})
			failed = true
			continue
		}

		outcome := validateUpdate(update, result.Exercise.UsesWeight)
		if !outcome.OK() {
			failed = true
		}
		outcomes = append(outcomes, outcome)
	}

	if failed {
		s.metrics.CounterValidationFailures.Inc()
		return nil, outcomes, ErrValidationFailed
	}

	patches := make([]ResultPatch, 0, len(outcomes))
	for _, outcome := range outcomes {
		patches = append(patches, ResultPatch{
			ID:     outcome.ResultID,
			Reps:   outcome.Reps,
			Weight: outcome.Weight,
		})
	}
	if err := s.repo.UpdateResults(ctx, worksheetID, patches); err != nil {
		return nil, nil, fmt.Errorf("update results: %w", err)
	}
	s.metrics.CounterResultUpdates.Add(float64(len(patches)))

	updated, err := s.repo.Results(ctx, worksheetID)
	if err != nil {
		return nil, nil, fmt.Errorf("re-read results: %w", err)
	}
	return updated, outcomes, nil
}

// ApplySingle updates one field of one result. An unknown worksheet id or a
// result id not belonging to the worksheet is a quiet no-op (updated=false),
// a bad value comes back as *ValidationError, an unknown field as
// ErrUnsupportedField.
func (s *Service) ApplySingle(ctx context.Context, worksheetID, resultID int, field, rawValue string) (updated bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.worksheet.applysingle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("result.id", resultID))
	span.SetAttributes(attribute.String("field", field))

	if field != FieldReps && field != FieldWeight {
		return false, ErrUnsupportedField
	}

	ws, err := s.repo.Get(ctx, worksheetID)
	if errors.Is(err, ErrWorksheetNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if ws.Done {
		return false, ErrWorksheetClosed
	}

	result, err := s.repo.GetResult(ctx, worksheetID, resultID)
	if errors.Is(err, ErrResultNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get result: %w", err)
	}

	value, err := parseField(field, rawValue, result.Exercise.UsesWeight)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			s.metrics.CounterValidationFailures.Inc()
		}
		return false, err
	}

	patch := ResultPatch{ID: result.ID, Reps: result.Reps, Weight: result.Weight}
	switch field {
	case FieldReps:
		patch.Reps = value
	case FieldWeight:
		patch.Weight = value
	}

	updated, err = s.repo.UpdateResult(ctx, worksheetID, patch)
	if err != nil {
		return false, fmt.Errorf("update result: %w", err)
	}
	if updated {
		s.metrics.CounterResultUpdates.Inc()
	}
	return updated, nil
}

// view loads the ordered results and, for an open sheet, attaches the
// previous results cross reference zipped by position.
func (s *Service) view(ctx context.Context, ws *Worksheet) (*View, error) {
	results, err := s.repo.Results(ctx, ws.ID)
	if err != nil {
		return nil, fmt.Errorf("get results: %w", err)
	}

	if !ws.Done {
		if err := s.attachPrevious(ctx, ws, results); err != nil {
			return nil, err
		}
	}

	return &View{
		Worksheet: ws,
		Status:    ws.Status(),
		Results:   results,
	}, nil
}

func (s *Service) attachPrevious(ctx context.Context, ws *Worksheet, results []Result) error {
	previous, err := s.repo.PreviousClosed(ctx, ws.WorkoutID, ws.Date)
	if errors.Is(err, ErrWorksheetNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get previous worksheet: %w", err)
	}

	previousResults, err := s.repo.Results(ctx, previous.ID)
	if err != nil {
		return fmt.Errorf("get previous results: %w", err)
	}

	// zip by position, a changed program just leaves the tail unmatched
	for i := range results {
		if i >= len(previousResults) {
			break
		}
		prev := previousResults[i]
		results[i].Previous = &prev
	}
	return nil
}
