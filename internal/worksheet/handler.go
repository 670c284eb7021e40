package worksheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mkrstic/worksheet/internal/telemetry/tracing"
	"github.com/mkrstic/worksheet/internal/workout"
	"github.com/mkrstic/worksheet/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=worksheet_test

type lifecycle interface {
	Overview(ctx context.Context, now time.Time) (*Overview, error)
	Create(ctx context.Context, now time.Time) (*View, bool, error)
	ForDate(ctx context.Context, date time.Time) (*View, error)
	Close(ctx context.Context, id int) error
	ApplyBatch(ctx context.Context, worksheetID int, updates []ResultUpdate) ([]Result, []UpdateOutcome, error)
	ApplySingle(ctx context.Context, worksheetID, resultID int, field, rawValue string) (bool, error)
}

type batchRequest struct {
	Updates []ResultUpdate `json:"updates"`
}

type batchErrorResponse struct {
	Error    string          `json:"error"`
	Outcomes []UpdateOutcome `json:"outcomes"`
}

type singleUpdateRequest struct {
	Value string `json:"value"`
}

type Handler struct {
	lifecycle lifecycle
}

func NewHandler(lifecycle lifecycle) *Handler {
	return &Handler{
		lifecycle: lifecycle,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/worksheet/today", handler.handleToday).Methods("GET", "OPTIONS").Name("worksheet-today")
	router.HandleFunc("/worksheet", handler.handleCreate).Methods("POST", "OPTIONS").Name("new-worksheet")
	router.HandleFunc("/worksheet/{year}/{month}/{day}", handler.handleGetByDate).Methods("GET", "OPTIONS").Name("worksheet-by-date")
	router.HandleFunc("/worksheet/{id}/close", handler.handleClose).Methods("POST", "OPTIONS").Name("close-worksheet")
	router.HandleFunc("/worksheet/{id}/results", handler.handleUpdateResults).Methods("PUT", "OPTIONS").Name("update-results")
	router.HandleFunc("/worksheet/{id}/result/{resultId}/{field}", handler.handleUpdateResult).Methods("PUT", "OPTIONS").Name("update-result-field")
}

func (handler *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.worksheet.today")
	defer span.End()

	overview, err := handler.lifecycle.Overview(ctx, time.Now())
	if err != nil {
		log.Errorf("get today overview: %s", err)
		http.Error(w, "failed to get overview", http.StatusInternalServerError)
		return
	}

	writeJSON(w, overview, http.StatusOK)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.worksheet.create")
	defer span.End()

	view, created, err := handler.lifecycle.Create(ctx, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, workout.ErrNothingScheduled):
			// nothing to start today, deliberately not an error
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrActiveWorksheetExists):
			http.Error(w, "an older worksheet is still open", http.StatusConflict)
		default:
			log.Errorf("create worksheet: %s", err)
			http.Error(w, "failed to create worksheet", http.StatusInternalServerError)
		}
		return
	}

	statusCode := http.StatusOK
	if created {
		statusCode = http.StatusCreated
		log.Debugf("worksheet %d created", view.Worksheet.ID)
	}
	writeJSON(w, view, statusCode)
}

func (handler *Handler) handleGetByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.worksheet.getbydate")
	defer span.End()

	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	view, err := handler.lifecycle.ForDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrWorksheetNotFound) {
			http.Error(w, "no worksheet for this date", http.StatusNotFound)
			return
		}
		log.Errorf("get worksheet for %s: %s", date.Format(dateLayout), err)
		http.Error(w, "failed to get worksheet", http.StatusInternalServerError)
		return
	}

	writeJSON(w, view, http.StatusOK)
}

func (handler *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.worksheet.close")
	defer span.End()

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := handler.lifecycle.Close(ctx, id); err != nil {
		log.Errorf("close worksheet %d: %s", id, err)
		http.Error(w, "failed to close worksheet", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("worksheet %d closed", id))
}

func (handler *Handler) handleUpdateResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.worksheet.updateresults")
	defer span.End()

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update results, unmarshal json params: %s", err)
		http.Error(w, "invalid results payload", http.StatusBadRequest)
		return
	}

	results, outcomes, err := handler.lifecycle.ApplyBatch(ctx, id, req.Updates)
	if err != nil {
		switch {
		case errors.Is(err, ErrWorksheetNotFound):
			http.Error(w, "worksheet not found", http.StatusNotFound)
		case errors.Is(err, ErrWorksheetClosed):
			http.Error(w, "worksheet is closed", http.StatusConflict)
		case errors.Is(err, ErrValidationFailed):
			writeJSON(w, batchErrorResponse{
				Error:    "validation failed, nothing was saved",
				Outcomes: outcomes,
			}, http.StatusBadRequest)
		default:
			log.Errorf("update results of worksheet %d: %s", id, err)
			http.Error(w, "failed to update results", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, results, http.StatusOK)
}

func (handler *Handler) handleUpdateResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.worksheet.updateresult")
	defer span.End()

	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	resultID, ok := pathInt(w, r, "resultId")
	if !ok {
		return
	}
	field := mux.Vars(r)["field"]

	var req singleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update result, unmarshal json params: %s", err)
		http.Error(w, "invalid result payload", http.StatusBadRequest)
		return
	}

	updated, err := handler.lifecycle.ApplySingle(ctx, id, resultID, field, req.Value)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.Is(err, ErrUnsupportedField):
			http.Error(w, fmt.Sprintf("unsupported field %q", field), http.StatusNotFound)
		case errors.Is(err, ErrWorksheetNotFound):
			http.Error(w, "worksheet not found", http.StatusNotFound)
		case errors.Is(err, ErrWorksheetClosed):
			http.Error(w, "worksheet is closed", http.StatusConflict)
		case errors.As(err, &validationErr):
			writeJSON(w, map[string]string{validationErr.Field: validationErr.Message}, http.StatusBadRequest)
		default:
			log.Errorf("update result %d of worksheet %d: %s", resultID, id, err)
			http.Error(w, "failed to update result", http.StatusInternalServerError)
		}
		return
	}

	if !updated {
		// result does not belong to this worksheet, quiet no-op
		w.WriteHeader(http.StatusNoContent)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("result %d updated", resultID))
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		http.Error(w, fmt.Sprintf("error, %s empty", name), http.StatusBadRequest)
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s NaN", name), http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

func pathDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	year, ok := pathInt(w, r, "year")
	if !ok {
		return time.Time{}, false
	}
	month, ok := pathInt(w, r, "month")
	if !ok {
		return time.Time{}, false
	}
	day, ok := pathInt(w, r, "day")
	if !ok {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
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
