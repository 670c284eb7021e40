package worksheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mkrstic/worksheet/internal/telemetry/tracing"
	"github.com/mkrstic/worksheet/internal/workout"
)

var (
	ErrWorksheetNotFound = errors.New("worksheet not found")
	ErrResultNotFound    = errors.New("result not found")
)

const (
	pgUniqueViolation = "23505"
	dateLayout        = "2006-01-02"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ResultPatch is one persisted change to a result row. Values are already
// validated; a nil field clears the stored value.
type ResultPatch struct {
	ID     int
	Reps   *int
	Weight *int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetOrCreate returns the worksheet for the given date, creating it together
// with its full result set when none exists yet. Creation runs in one
// transaction; a concurrent creator losing the race on the unique date
// constraint falls back to re-reading the winner's row.
func (r *Repo) GetOrCreate(ctx context.Context, w *workout.Workout, date time.Time) (_ *Worksheet, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.getorcreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(dateLayout)))

	ws, err := r.GetByDate(ctx, date)
	if err == nil {
		return ws, false, nil
	}
	if !errors.Is(err, ErrWorksheetNotFound) {
		return nil, false, err
	}

	ws, err = r.create(ctx, w, date)
	if isUniqueViolation(err) {
		// somebody else created it in the meantime, their row wins
		log.Warnf("worksheet for %s created concurrently, re-reading", date.Format(dateLayout))
		ws, err = r.GetByDate(ctx, date)
		if err != nil {
			return nil, false, fmt.Errorf("re-read worksheet after create race: %w", err)
		}
		return ws, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return ws, true, nil
}

func (r *Repo) create(ctx context.Context, w *workout.Workout, date time.Time) (_ *Worksheet, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	ws := Worksheet{
		WorkoutID: w.ID,
		Workout:   w.Name,
		Date:      date,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO worksheet (workout_id, done, started_at, date)
		VALUES ($1, FALSE, NOW(), $2)
		RETURNING id, started_at;`,
		w.ID, date.Format(dateLayout),
	).Scan(&ws.ID, &ws.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("insert worksheet: %w", err)
	}

	for position, exercise := range w.ExecutionOrder() {
		if _, err = tx.Exec(ctx, `
			INSERT INTO result (worksheet_id, exercise_id, position)
			VALUES ($1, $2, $3);`,
			ws.ID, exercise.ID, position,
		); err != nil {
			return nil, fmt.Errorf("insert result slot [%d]: %w", position, err)
		}
	}

	return &ws, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Worksheet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return r.scanOne(ctx, `WHERE ws.id = $1`, id)
}

func (r *Repo) GetByDate(ctx context.Context, date time.Time) (_ *Worksheet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.getbydate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(dateLayout)))

	return r.scanOne(ctx, `WHERE ws.date = $1`, date.Format(dateLayout))
}

// ListActive returns all open worksheets dated strictly before the given
// date, oldest first.
func (r *Repo) ListActive(ctx context.Context, before time.Time) (_ []Worksheet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.listactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, worksheetSelect+`
		WHERE ws.done = FALSE AND ws.date < $1
		ORDER BY ws.date;`,
		before.Format(dateLayout),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	worksheets := make([]Worksheet, 0)
	for rows.Next() {
		var ws Worksheet
		if err := rows.Scan(&ws.ID, &ws.WorkoutID, &ws.Workout, &ws.Done, &ws.StartedAt, &ws.EndedAt, &ws.Date); err != nil {
			return nil, err
		}
		worksheets = append(worksheets, ws)
	}
	return worksheets, rows.Err()
}

// PreviousClosed returns the most recent closed worksheet of the given
// workout dated strictly before the given date.
func (r *Repo) PreviousClosed(ctx context.Context, workoutID int, before time.Time) (_ *Worksheet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.previousclosed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	return r.scanOne(ctx, `
		WHERE ws.workout_id = $1 AND ws.done = TRUE AND ws.date < $2
		ORDER BY ws.date DESC
		LIMIT 1`,
		workoutID, before.Format(dateLayout),
	)
}

// Close marks the worksheet done. The end timestamp is set only on the first
// close, repeated calls leave it untouched. An unknown or already closed
// worksheet is not an error.
func (r *Repo) Close(ctx context.Context, id int) (closed bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.close")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE worksheet
		SET done = TRUE, ended_at = COALESCE(ended_at, NOW())
		WHERE id = $1 AND done = FALSE;`,
		id,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) Results(ctx context.Context, worksheetID int) (_ []Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.results")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("worksheet.id", worksheetID))

	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.worksheet_id, r.position, r.reps, r.weight,
			e.id, e.name, e.uses_weight
		FROM result r
		JOIN exercise e ON e.id = r.exercise_id
		WHERE r.worksheet_id = $1
		ORDER BY r.position;`,
		worksheetID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]Result, 0)
	for rows.Next() {
		var result Result
		if err := rows.Scan(
			&result.ID, &result.WorksheetID, &result.Position, &result.Reps, &result.Weight,
			&result.Exercise.ID, &result.Exercise.Name, &result.Exercise.UsesWeight,
		); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func (r *Repo) GetResult(ctx context.Context, worksheetID, resultID int) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.getresult")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("result.id", resultID))

	var result Result
	err = r.db.QueryRow(ctx, `
		SELECT r.id, r.worksheet_id, r.position, r.reps, r.weight,
			e.id, e.name, e.uses_weight
		FROM result r
		JOIN exercise e ON e.id = r.exercise_id
		WHERE r.id = $1 AND r.worksheet_id = $2;`,
		resultID, worksheetID,
	).Scan(
		&result.ID, &result.WorksheetID, &result.Position, &result.Reps, &result.Weight,
		&result.Exercise.ID, &result.Exercise.Name, &result.Exercise.UsesWeight,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateResults writes a whole batch of result patches in one transaction.
func (r *Repo) UpdateResults(ctx context.Context, worksheetID int, patches []ResultPatch) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.updateresults")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("worksheet.id", worksheetID))
	span.SetAttributes(attribute.Int("patches", len(patches)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	for _, patch := range patches {
		tag, err := tx.Exec(ctx, `
			UPDATE result SET reps = $1, weight = $2
			WHERE id = $3 AND worksheet_id = $4;`,
			patch.Reps, patch.Weight, patch.ID, worksheetID,
		)
		if err != nil {
			return fmt.Errorf("update result %d: %w", patch.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("update result %d: %w", patch.ID, ErrResultNotFound)
		}
	}
	return nil
}

// UpdateResult writes a single result patch. Reports whether a row matched;
// a miss is not an error.
func (r *Repo) UpdateResult(ctx context.Context, worksheetID int, patch ResultPatch) (updated bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.worksheet.updateresult")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("result.id", patch.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE result SET reps = $1, weight = $2
		WHERE id = $3 AND worksheet_id = $4;`,
		patch.Reps, patch.Weight, patch.ID, worksheetID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const worksheetSelect = `
	SELECT ws.id, ws.workout_id, w.name, ws.done, ws.started_at, ws.ended_at, ws.date
	FROM worksheet ws
	JOIN workout w ON w.id = ws.workout_id
`

func (r *Repo) scanOne(ctx context.Context, where string, args ...any) (*Worksheet, error) {
	var ws Worksheet
	err := r.db.QueryRow(ctx, worksheetSelect+where+";", args...).
		Scan(&ws.ID, &ws.WorkoutID, &ws.Workout, &ws.Done, &ws.StartedAt, &ws.EndedAt, &ws.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorksheetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func finishTx(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
		}
		return err
	}
	return tx.Commit(ctx)
}
