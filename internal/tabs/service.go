package tabs

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/programs"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tabs_test

type tabStore interface {
	Add(ctx context.Context, tabNumber int, passwordHash string) error
	Get(ctx context.Context, tabNumber int) (*Tab, error)
	Pair(ctx context.Context, tabNumber, userID int, at time.Time) error
	Unpair(ctx context.Context, tabNumber int) error
}

type workoutScheduler interface {
	TodaysWorkout(ctx context.Context, userID int) (*programs.TodaysWorkout, error)
}

type NewTabRequest struct {
	TabNumber int    `json:"tabNumber"`
	Password  string `json:"password"`
}

type PairRequest struct {
	Password string `json:"password"`
}

// TabStation is what a paired tab displays.
type TabStation struct {
	TabNumber  int              `json:"tabNumber"`
	UserID     int              `json:"userId"`
	ProgramID  string           `json:"programId"`
	WeekNumber int              `json:"weekNumber"`
	WorkoutID  string           `json:"workOutId"`
	Workout    string           `json:"workoutName"`
	Station    programs.Station `json:"station"`
}

type Service struct {
	store            tabStore
	workouts         workoutScheduler
	clock            pkg.Clock
	HashPasswordFunc func(password string) (string, error)
}

func NewService(store tabStore, workouts workoutScheduler, clock pkg.Clock) *Service {
	return &Service{
		store:            store,
		workouts:         workouts,
		clock:            clock,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func (s *Service) Register(ctx context.Context, req NewTabRequest) error {
	if req.TabNumber < 1 {
		return apperr.Validation("tab number must be positive, got %d", req.TabNumber)
	}
	if req.Password == "" {
		return apperr.Validation("tab password is required")
	}

	hash, err := s.HashPasswordFunc(req.Password)
	if err != nil {
		return fmt.Errorf("hash tab password: %w", err)
	}
	if err := s.store.Add(ctx, req.TabNumber, hash); err != nil {
		return err
	}

	log.Infof("tab %d registered", req.TabNumber)
	return nil
}

// Pair logs userID into the tab. A wrong tab password is reported as not found
// so tab numbers cannot be probed.
func (s *Service) Pair(ctx context.Context, tabNumber, userID int, password string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tabs.pair")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("tab.number", tabNumber), attribute.Int("user.id", userID))

	tab, err := s.store.Get(ctx, tabNumber)
	if err != nil {
		return err
	}
	if !pkg.CheckPasswordHash(password, tab.PasswordHash) {
		return apperr.NotFound("tab %d not found", tabNumber)
	}
	if tab.Paired() && *tab.LoggedInUserID != userID {
		log.Infof("tab %d taken over from user %d by user %d", tabNumber, *tab.LoggedInUserID, userID)
	}

	return s.store.Pair(ctx, tabNumber, userID, s.clock.Now().UTC())
}

// Unpair logs the user out of the tab. Only the paired user may do so.
func (s *Service) Unpair(ctx context.Context, tabNumber, userID int) error {
	tab, err := s.store.Get(ctx, tabNumber)
	if err != nil {
		return err
	}
	if !tab.Paired() || *tab.LoggedInUserID != userID {
		return apperr.NotFound("tab %d is not paired with user %d", tabNumber, userID)
	}
	return s.store.Unpair(ctx, tabNumber)
}

// Station resolves the station a tab shows: station n of today's workout of the
// user paired with tab n.
func (s *Service) Station(ctx context.Context, tabNumber int) (_ *TabStation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tabs.station")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("tab.number", tabNumber))

	tab, err := s.store.Get(ctx, tabNumber)
	if err != nil {
		return nil, err
	}
	if !tab.Paired() {
		return nil, apperr.NotFound("tab %d is not paired", tabNumber)
	}
	userID := *tab.LoggedInUserID

	today, err := s.workouts.TodaysWorkout(ctx, userID)
	if err != nil {
		return nil, err
	}
	station, err := programs.StationForTab(&today.Workout, tabNumber)
	if err != nil {
		return nil, err
	}

	return &TabStation{
		TabNumber:  tabNumber,
		UserID:     userID,
		ProgramID:  today.ProgramID,
		WeekNumber: today.WeekNumber,
		WorkoutID:  today.Workout.ID,
		Workout:    today.Workout.Name,
		Station:    station.Clone(),
	}, nil
}
