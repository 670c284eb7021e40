package workout

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkrstic/worksheet/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrNothingScheduled = errors.New("nothing scheduled for this day")
	// deletes are protected while worksheets / results still reference the row
	ErrExerciseInUse = errors.New("exercise is referenced by results")
	ErrWorkoutInUse  = errors.New("workout is referenced by worksheets")
)

const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO exercise (name, uses_weight)
		VALUES ($1, $2)
		RETURNING id;`,
		exercise.Name, exercise.UsesWeight,
	).Scan(&exercise.ID)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	return &exercise, nil
}

func (r *Repo) GetExercise(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.getexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var exercise Exercise
	err = r.db.QueryRow(ctx, `
		SELECT id, name, uses_weight
		FROM exercise
		WHERE id = $1;`,
		id,
	).Scan(&exercise.ID, &exercise.Name, &exercise.UsesWeight)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.listexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, uses_weight
		FROM exercise
		ORDER BY name;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (r *Repo) UpdateExercise(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.updateexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE exercise SET name = $1, uses_weight = $2 WHERE id = $3;`,
		exercise.Name, exercise.UsesWeight, exercise.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteExercise(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.deleteexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1;`, id)
	if isForeignKeyViolation(err) {
		return ErrExerciseInUse
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// AddWorkout creates the workout together with its program: exerciseIDs come
// in display order and get dense positions 0..n-1.
func (r *Repo) AddWorkout(ctx context.Context, workout Workout, exerciseIDs []int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO workout (name, ordering_pattern)
		VALUES ($1, $2)
		RETURNING id;`,
		workout.Name, workout.OrderingPattern.String(),
	).Scan(&workout.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	if err = insertProgram(ctx, tx, workout.ID, exerciseIDs); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return &workout, nil
}

func (r *Repo) GetWorkout(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var workout Workout
	err = r.db.QueryRow(ctx, `
		SELECT id, name, ordering_pattern
		FROM workout
		WHERE id = $1;`,
		id,
	).Scan(&workout.ID, &workout.Name, &workout.OrderingPattern)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	workout.Exercises, err = r.programExercises(ctx, workout.ID)
	if err != nil {
		return nil, fmt.Errorf("get program exercises: %w", err)
	}
	return &workout, nil
}

func (r *Repo) ListWorkouts(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, ordering_pattern
		FROM workout
		ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		var workout Workout
		if err := rows.Scan(&workout.ID, &workout.Name, &workout.OrderingPattern); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		workouts[i].Exercises, err = r.programExercises(ctx, workouts[i].ID)
		if err != nil {
			return nil, fmt.Errorf("get program exercises: %w", err)
		}
	}
	return workouts, nil
}

// UpdateWorkout rewrites both the workout row and its whole program.
func (r *Repo) UpdateWorkout(ctx context.Context, workout *Workout, exerciseIDs []int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE workout SET name = $1, ordering_pattern = $2 WHERE id = $3;`,
		workout.Name, workout.OrderingPattern.String(), workout.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	if _, err = tx.Exec(ctx, `DELETE FROM program WHERE workout_id = $1;`, workout.ID); err != nil {
		return fmt.Errorf("clear program: %w", err)
	}
	return insertProgram(ctx, tx, workout.ID, exerciseIDs)
}

func (r *Repo) DeleteWorkout(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1;`, id)
	if isForeignKeyViolation(err) {
		return ErrWorkoutInUse
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// GetScheduled returns the workout assigned to the given ISO weekday, with
// its program-ordered exercises. The unique constraint on schedule.day
// guarantees at most one match.
func (r *Repo) GetScheduled(ctx context.Context, day int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.getscheduled")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day", day))

	var workout Workout
	err = r.db.QueryRow(ctx, `
		SELECT w.id, w.name, w.ordering_pattern
		FROM schedule s
		JOIN workout w ON w.id = s.workout_id
		WHERE s.day = $1;`,
		day,
	).Scan(&workout.ID, &workout.Name, &workout.OrderingPattern)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNothingScheduled
	}
	if err != nil {
		return nil, err
	}

	workout.Exercises, err = r.programExercises(ctx, workout.ID)
	if err != nil {
		return nil, fmt.Errorf("get program exercises: %w", err)
	}
	return &workout, nil
}

// SetSchedule assigns a workout to a weekday, replacing any previous
// assignment for that day.
func (r *Repo) SetSchedule(ctx context.Context, day, workoutID int) (_ *ScheduleEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.setschedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day", day))
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	entry := ScheduleEntry{Day: day, WorkoutID: workoutID}
	err = r.db.QueryRow(ctx, `
		INSERT INTO schedule (day, workout_id)
		VALUES ($1, $2)
		ON CONFLICT (day) DO UPDATE SET workout_id = EXCLUDED.workout_id
		RETURNING id, (SELECT name FROM workout WHERE id = $2);`,
		day, workoutID,
	).Scan(&entry.ID, &entry.Workout)
	if err != nil {
		return nil, fmt.Errorf("upsert schedule: %w", err)
	}
	return &entry, nil
}

func (r *Repo) ListSchedule(ctx context.Context) (_ []ScheduleEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.listschedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.day, s.workout_id, w.name
		FROM schedule s
		JOIN workout w ON w.id = s.workout_id
		ORDER BY s.day;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ScheduleEntry, 0)
	for rows.Next() {
		var entry ScheduleEntry
		if err := rows.Scan(&entry.ID, &entry.Day, &entry.WorkoutID, &entry.Workout); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *Repo) ClearSchedule(ctx context.Context, day int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.clearschedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day", day))

	tag, err := r.db.Exec(ctx, `DELETE FROM schedule WHERE day = $1;`, day)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNothingScheduled
	}
	return nil
}

func (r *Repo) programExercises(ctx context.Context, workoutID int) ([]Exercise, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.name, e.uses_weight
		FROM program p
		JOIN exercise e ON e.id = p.exercise_id
		WHERE p.workout_id = $1
		ORDER BY p.position;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func insertProgram(ctx context.Context, tx pgx.Tx, workoutID int, exerciseIDs []int) error {
	for position, exerciseID := range exerciseIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO program (workout_id, exercise_id, position)
			VALUES ($1, $2, $3);`,
			workoutID, exerciseID, position,
		); err != nil {
			return fmt.Errorf("insert program entry [%d]: %w", position, err)
		}
	}
	return nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(&exercise.ID, &exercise.Name, &exercise.UsesWeight); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	return exercises, rows.Err()
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
