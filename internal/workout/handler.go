package workout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mkrstic/worksheet/internal/telemetry/tracing"
	"github.com/mkrstic/worksheet/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type adminRepo interface {
	AddExercise(ctx context.Context, exercise Exercise) (*Exercise, error)
	GetExercise(ctx context.Context, id int) (*Exercise, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
	UpdateExercise(ctx context.Context, exercise *Exercise) error
	DeleteExercise(ctx context.Context, id int) error
	AddWorkout(ctx context.Context, workout Workout, exerciseIDs []int) (*Workout, error)
	GetWorkout(ctx context.Context, id int) (*Workout, error)
	ListWorkouts(ctx context.Context) ([]Workout, error)
	UpdateWorkout(ctx context.Context, workout *Workout, exerciseIDs []int) error
	DeleteWorkout(ctx context.Context, id int) error
	SetSchedule(ctx context.Context, day, workoutID int) (*ScheduleEntry, error)
	ListSchedule(ctx context.Context) ([]ScheduleEntry, error)
	ClearSchedule(ctx context.Context, day int) error
}

type workoutRequest struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	OrderingPattern OrderingPattern `json:"orderingPattern"`
	ExerciseIDs     []int           `json:"exerciseIds"`
}

type scheduleRequest struct {
	WorkoutID int `json:"workoutId"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

// Handler covers the administrative surface: exercises, workouts with their
// programs, and the weekday schedule.
type Handler struct {
	repo     adminRepo
	resolver *Resolver
}

func NewHandler(repo adminRepo, resolver *Resolver) *Handler {
	return &Handler{
		repo:     repo,
		resolver: resolver,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.handleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/exercises", handler.handleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	router.HandleFunc("/exercises", handler.handleUpdateExercise).Methods("PUT", "OPTIONS").Name("update-exercise")
	router.HandleFunc("/exercises/{id}", handler.handleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	router.HandleFunc("/workouts", handler.handleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	router.HandleFunc("/workouts", handler.handleAddWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	router.HandleFunc("/workouts", handler.handleUpdateWorkout).Methods("PUT", "OPTIONS").Name("update-workout")
	router.HandleFunc("/workouts/{id}", handler.handleGetWorkout).Methods("GET", "OPTIONS").Name("get-workout")
	router.HandleFunc("/workouts/{id}", handler.handleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")

	router.HandleFunc("/schedule", handler.handleListSchedule).Methods("GET", "OPTIONS").Name("list-schedule")
	router.HandleFunc("/schedule/{day}", handler.handleSetSchedule).Methods("PUT", "OPTIONS").Name("set-schedule")
	router.HandleFunc("/schedule/{day}", handler.handleClearSchedule).Methods("DELETE", "OPTIONS").Name("clear-schedule")
}

func (handler *Handler) handleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercises.list")
	defer span.End()

	exercises, err := handler.repo.ListExercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	writeJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercises.add")
	defer span.End()

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	if exercise.Name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddExercise(ctx, exercise)
	if err != nil {
		log.Errorf("failed to add exercise [%s]: %s", exercise.Name, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: [%d] %s", added.ID, added.Name)
	writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercises.update")
	defer span.End()

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}
	if exercise.Name == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateExercise(ctx, &exercise); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update exercise %d: %s", exercise.ID, err)
		http.Error(w, "error, failed to update exercise", http.StatusInternalServerError)
		return
	}

	handler.resolver.InvalidateAll()
	writeJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercises.delete")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := handler.repo.DeleteExercise(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseInUse):
			http.Error(w, "exercise is used by recorded results", http.StatusConflict)
		default:
			log.Errorf("failed to delete exercise %d: %s", id, err)
			http.Error(w, "exercise not deleted", http.StatusInternalServerError)
		}
		return
	}

	handler.resolver.InvalidateAll()
	writeJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.list")
	defer span.End()

	workouts, err := handler.repo.ListWorkouts(ctx)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.get")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	workout, err := handler.repo.GetWorkout(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	writeJSON(w, workout, http.StatusOK)
}

func (handler *Handler) handleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.add")
	defer span.End()

	req, ok := decodeWorkoutRequest(w, r)
	if !ok {
		return
	}

	added, err := handler.repo.AddWorkout(ctx, Workout{
		Name:            req.Name,
		OrderingPattern: req.OrderingPattern,
	}, req.ExerciseIDs)
	if err != nil {
		log.Errorf("failed to add workout [%s]: %s", req.Name, err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: [%d] %s", added.ID, added.Name)
	writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.update")
	defer span.End()

	req, ok := decodeWorkoutRequest(w, r)
	if !ok {
		return
	}

	workout := Workout{
		ID:              req.ID,
		Name:            req.Name,
		OrderingPattern: req.OrderingPattern,
	}
	if err := handler.repo.UpdateWorkout(ctx, &workout, req.ExerciseIDs); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update workout %d: %s", req.ID, err)
		http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
		return
	}

	handler.resolver.InvalidateAll()
	writeJSON(w, workout, http.StatusOK)
}

func (handler *Handler) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.delete")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := handler.repo.DeleteWorkout(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		case errors.Is(err, ErrWorkoutInUse):
			http.Error(w, "workout has recorded worksheets", http.StatusConflict)
		default:
			log.Errorf("failed to delete workout %d: %s", id, err)
			http.Error(w, "workout not deleted", http.StatusInternalServerError)
		}
		return
	}

	handler.resolver.InvalidateAll()
	writeJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) handleListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.schedule.list")
	defer span.End()

	entries, err := handler.repo.ListSchedule(ctx)
	if err != nil {
		log.Errorf("list schedule: %s", err)
		http.Error(w, "failed to list schedule", http.StatusInternalServerError)
		return
	}

	writeJSON(w, entries, http.StatusOK)
}

func (handler *Handler) handleSetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.schedule.set")
	defer span.End()

	day, ok := pathDay(w, r)
	if !ok {
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set schedule, unmarshal json params: %s", err)
		http.Error(w, "set schedule failed", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.SetSchedule(ctx, day, req.WorkoutID)
	if err != nil {
		log.Errorf("failed to set schedule for %s: %s", DayName(day), err)
		http.Error(w, "error, failed to set schedule", http.StatusInternalServerError)
		return
	}

	handler.resolver.InvalidateDay(day)
	log.Debugf("schedule set: %s -> workout %d", DayName(day), req.WorkoutID)
	writeJSON(w, entry, http.StatusOK)
}

func (handler *Handler) handleClearSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.schedule.clear")
	defer span.End()

	day, ok := pathDay(w, r)
	if !ok {
		return
	}

	if err := handler.repo.ClearSchedule(ctx, day); err != nil {
		if errors.Is(err, ErrNothingScheduled) {
			http.Error(w, "nothing scheduled for this day", http.StatusNotFound)
			return
		}
		log.Errorf("failed to clear schedule for %s: %s", DayName(day), err)
		http.Error(w, "error, failed to clear schedule", http.StatusInternalServerError)
		return
	}

	handler.resolver.InvalidateDay(day)
	writeJSON(w, DeleteResponse{DeletedID: day}, http.StatusOK)
}

func decodeWorkoutRequest(w http.ResponseWriter, r *http.Request) (*workoutRequest, bool) {
	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("workout request, unmarshal json params: %s", err)
		http.Error(w, "invalid workout payload", http.StatusBadRequest)
		return nil, false
	}
	if req.Name == "" {
		http.Error(w, "error, workout name empty", http.StatusBadRequest)
		return nil, false
	}
	if !req.OrderingPattern.IsValid() {
		http.Error(w, "error, unknown ordering pattern", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	idStr := mux.Vars(r)[name]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func pathDay(w http.ResponseWriter, r *http.Request) (int, bool) {
	day, ok := pathID(w, r, "day")
	if !ok {
		return 0, false
	}
	if !IsValidDay(day) {
		http.Error(w, "error, day must be 1 (Monday) to 7 (Sunday)", http.StatusBadRequest)
		return 0, false
	}
	return day, true
}

func writeJSON(w http.ResponseWriter, payload any, statusCode int) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, statusCode)
}
