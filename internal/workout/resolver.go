package workout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mkrstic/worksheet/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=workout_test

const scheduleCacheExpireSeconds = 5 * 60

type scheduleRepo interface {
	GetScheduled(ctx context.Context, day int) (*Workout, error)
}

// Resolver maps a calendar date to the workout scheduled for its weekday.
// Lookups are cached, since the schedule changes rarely and the index page
// hits this on every load; schedule writes must call InvalidateDay.
type Resolver struct {
	repo  scheduleRepo
	cache *freecache.Cache
}

func NewResolver(repo scheduleRepo) *Resolver {
	megabyte := 1024 * 1024
	return &Resolver{
		repo:  repo,
		cache: freecache.NewCache(1 * megabyte),
	}
}

// ISOWeekday returns the weekday of t in ISO numbering, 1=Monday..7=Sunday.
func ISOWeekday(t time.Time) int {
	day := int(t.Weekday())
	if day == 0 {
		return Sunday
	}
	return day
}

// WorkoutForDate returns the workout scheduled for the weekday of the given
// date, or ErrNothingScheduled.
func (r *Resolver) WorkoutForDate(ctx context.Context, date time.Time) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.resolver.workoutfordate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := ISOWeekday(date)
	span.SetAttributes(attribute.Int("day", day))

	key := scheduleCacheKey(day)
	if cachedBytes, cacheErr := r.cache.Get(key); cacheErr == nil {
		var cached Workout
		if err := json.Unmarshal(cachedBytes, &cached); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &cached, nil
		}
		log.Warnf("schedule cache: corrupt entry for day %d, falling through", day)
	}

	scheduled, err := r.repo.GetScheduled(ctx, day)
	if err != nil {
		return nil, err
	}

	if workoutBytes, err := json.Marshal(scheduled); err != nil {
		log.Warnf("schedule cache: marshal workout for day %d: %s", day, err)
	} else if err := r.cache.Set(key, workoutBytes, scheduleCacheExpireSeconds); err != nil {
		log.Warnf("schedule cache: set day %d: %s", day, err)
	}

	return scheduled, nil
}

// InvalidateDay drops the cached lookup for one weekday. Called after
// schedule or workout edits touching that day.
func (r *Resolver) InvalidateDay(day int) {
	r.cache.Del(scheduleCacheKey(day))
}

// InvalidateAll drops all cached lookups. Called after workout or program
// edits, where figuring out the affected days is not worth the trouble.
func (r *Resolver) InvalidateAll() {
	r.cache.Clear()
}

func scheduleCacheKey(day int) []byte {
	return []byte(fmt.Sprintf("schedule:day:%d", day))
}
