package completions

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/programs"
	"github.com/2beens/gymprogress/internal/telemetry/metrics"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/internal/users"
	"github.com/2beens/gymprogress/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=completions_test

type completionStore interface {
	Add(ctx context.Context, e *LogEntry) error
	Get(ctx context.Context, id int64) (*LogEntry, error)
	ListByUser(ctx context.Context, userID int) ([]LogEntry, error)
	Edit(ctx context.Context, id int64, stations []programs.Station, completed bool, editedAt time.Time) error
	CountInRange(ctx context.Context, userID int, from, to time.Time) (int, error)
}

type workoutResolver interface {
	ResolveWorkout(ctx context.Context, programID, workoutID string) (*programs.Workout, int, error)
}

type userState interface {
	Get(ctx context.Context, id int) (*users.User, error)
	IncrementWorkouts(ctx context.Context, userID int) error
	UpdateWeeklyGoal(ctx context.Context, userID, goal int) error
}

type FinishWorkoutRequest struct {
	ProgramID string `json:"programId"`
	WorkoutID string `json:"workOutId"`
	// Stations as performed; the workout's own stations are snapshotted when nil.
	Stations  []programs.Station `json:"stations,omitempty"`
	Completed *bool              `json:"completed,omitempty"`
}

type EditCompletionRequest struct {
	Stations  []programs.Station `json:"stations"`
	Completed bool               `json:"completed"`
}

type History struct {
	Entries []LogEntry   `json:"entries"`
	Streak  StreakResult `json:"streak"`
}

type Service struct {
	store    completionStore
	workouts workoutResolver
	users    userState
	clock    pkg.Clock
	metrics  *metrics.Manager
}

func NewService(
	store completionStore,
	workouts workoutResolver,
	users userState,
	clock pkg.Clock,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		store:    store,
		workouts: workouts,
		users:    users,
		clock:    clock,
		metrics:  metricsManager,
	}
}

// RecordCompletion always appends a new entry. Finishing the same workout twice
// yields two entries.
func (s *Service) RecordCompletion(
	ctx context.Context,
	userID int,
	programID, workoutID string,
	weekNumber int,
	stations []programs.Station,
	completed bool,
) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry := &LogEntry{
		UserID:      userID,
		ProgramID:   programID,
		WorkoutID:   workoutID,
		WeekNumber:  weekNumber,
		Stations:    programs.CloneStations(stations),
		Completed:   completed,
		CompletedAt: s.clock.Now().UTC(),
	}
	if err := s.store.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("add completion: %w", err)
	}

	span.SetAttributes(attribute.Int64("completion.id", entry.ID))
	s.metrics.CounterCompletions.Inc()
	return entry, nil
}

// FinishWorkout resolves the workout, logs the completion and bumps the user's
// workout counters. The counters are a separate write: when it fails the entry
// stands and the failure is only logged.
func (s *Service) FinishWorkout(ctx context.Context, userID int, req FinishWorkoutRequest) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("program.id", req.ProgramID),
		attribute.String("workout.id", req.WorkoutID),
	)

	if req.ProgramID == "" || req.WorkoutID == "" {
		return nil, apperr.Validation("programId and workOutId are required")
	}

	workout, weekNumber, err := s.workouts.ResolveWorkout(ctx, req.ProgramID, req.WorkoutID)
	if err != nil {
		return nil, err
	}

	stations := workout.Stations
	if req.Stations != nil {
		stations = req.Stations
	}
	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	entry, err := s.RecordCompletion(ctx, userID, req.ProgramID, workout.ID, weekNumber, stations, completed)
	if err != nil {
		return nil, err
	}

	if err := s.users.IncrementWorkouts(ctx, userID); err != nil {
		log.Errorf("finish workout, increment workouts of user %d: %s", userID, err)
	}

	return entry, nil
}

func (s *Service) ListCompletions(ctx context.Context, userID int) ([]LogEntry, error) {
	return s.store.ListByUser(ctx, userID)
}

// History lists the user's completions together with the consecutive-week streak.
func (s *Service) History(ctx context.Context, userID int) (*History, error) {
	entries, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	return &History{
		Entries: entries,
		Streak:  CalculateStreak(entries),
	}, nil
}

// EditCompletion corrects stations and completed flag of an entry owned by userID.
func (s *Service) EditCompletion(ctx context.Context, userID int, id int64, req EditCompletionRequest) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.edit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		// other users' entries are reported as missing
		return nil, apperr.NotFound("completion %d not found", id)
	}
	if req.Stations == nil {
		return nil, apperr.Validation("stations are required")
	}

	editedAt := s.clock.Now().UTC()
	stations := programs.CloneStations(req.Stations)
	if err := s.store.Edit(ctx, id, stations, req.Completed, editedAt); err != nil {
		return nil, err
	}

	entry.Stations = stations
	entry.Completed = req.Completed
	entry.EditedAt = &editedAt
	return entry, nil
}

func (s *Service) SetWeeklyGoal(ctx context.Context, userID, goal int) error {
	if goal < 1 {
		return apperr.Validation("weekly goal must be at least 1, got %d", goal)
	}
	return s.users.UpdateWeeklyGoal(ctx, userID, goal)
}

// CompletedVsGoal counts the completions inside the clock's current ISO week.
func (s *Service) CompletedVsGoal(ctx context.Context, userID int) (_ *GoalProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.goal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := ISOWeekBounds(s.clock.Now())
	completed, err := s.store.CountInRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("count completions: %w", err)
	}

	progress := newGoalProgress(completed, u.WeeklyWorkOutGoal, weekStart, weekEnd)
	return &progress, nil
}
