package programs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/telemetry/metrics"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=programs_test

type programStore interface {
	Add(ctx context.Context, p *Program) error
	Get(ctx context.Context, id string) (*Program, error)
	GetActive(ctx context.Context) (*Program, error)
	List(ctx context.Context) ([]Program, error)
	Update(ctx context.Context, p *Program) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string) error
}

// userProgramLookup returns the program bound to a user, "" when there is none.
type userProgramLookup interface {
	ProgramIDOf(ctx context.Context, userID int) (string, error)
}

type NewProgramParams struct {
	Title     string    `json:"title"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type ProgramUpdate struct {
	Title     *string    `json:"title,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type TodaysWorkout struct {
	ProgramID  string  `json:"programId"`
	WeekNumber int     `json:"weekNumber"`
	Workout    Workout `json:"workout"`
}

type Service struct {
	store        programStore
	users        userProgramLookup
	clock        pkg.Clock
	deletePolicy DeletePolicy
	metrics      *metrics.Manager
}

func NewService(
	store programStore,
	users userProgramLookup,
	clock pkg.Clock,
	deletePolicy DeletePolicy,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		store:        store,
		users:        users,
		clock:        clock,
		deletePolicy: deletePolicy,
		metrics:      metricsManager,
	}
}

func (s *Service) Create(ctx context.Context, params NewProgramParams) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(params.Title) == "" {
		return nil, apperr.Validation("program title is required")
	}
	if params.StartDate.IsZero() || params.EndDate.IsZero() {
		return nil, apperr.Validation("program start and end dates are required")
	}
	if params.EndDate.Before(params.StartDate) {
		return nil, apperr.Validation("program ends before it starts")
	}

	p := NewProgram(params.Title, params.StartDate, params.EndDate)
	if err := s.store.Add(ctx, p); err != nil {
		return nil, fmt.Errorf("add program: %w", err)
	}
	span.SetAttributes(attribute.String("program.id", p.ID))

	log.Debugf("program created: %s [%s]", p.ID, p.Title)
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Program, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Program, error) {
	return s.store.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Debugf("program deleted: %s", id)
	return nil
}

func (s *Service) Activate(ctx context.Context, id string) error {
	if err := s.store.SetActive(ctx, id); err != nil {
		return err
	}
	log.Infof("program %s is now the active program", id)
	return nil
}

func (s *Service) UpdateMeta(ctx context.Context, id string, upd ProgramUpdate) (*Program, error) {
	return s.mutate(ctx, id, "update_program", func(p *Program) error {
		if upd.Title != nil {
			if strings.TrimSpace(*upd.Title) == "" {
				return apperr.Validation("program title is required")
			}
			p.Title = *upd.Title
		}
		if upd.StartDate != nil {
			p.StartDate = upd.StartDate.UTC()
		}
		if upd.EndDate != nil {
			p.EndDate = upd.EndDate.UTC()
		}
		if p.EndDate.Before(p.StartDate) {
			return apperr.Validation("program ends before it starts")
		}
		return nil
	})
}

func (s *Service) AppendWeek(ctx context.Context, id string) (int, error) {
	var weekNumber int
	_, err := s.mutate(ctx, id, "append_week", func(p *Program) error {
		weekNumber = p.AppendWeek()
		return nil
	})
	return weekNumber, err
}

// Validate runs the read-validate cycle on the stored program.
func (s *Service) Validate(ctx context.Context, id string) (Violations, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	violations := Validate(p)
	if violations == nil {
		violations = Violations{}
	}
	return violations, nil
}

func (s *Service) ResolveWorkout(ctx context.Context, programID, workoutID string) (_ *Workout, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("program.id", programID),
		attribute.String("workout.id", workoutID),
	)

	p, err := s.store.Get(ctx, programID)
	if err != nil {
		return nil, 0, err
	}
	return ResolveWorkout(p, workoutID)
}

// TodaysWorkout resolves the workout scheduled for the clock's current day, in the
// user's own program when one is bound, otherwise in the globally active program.
func (s *Service) TodaysWorkout(ctx context.Context, userID int) (_ *TodaysWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	programID, err := s.users.ProgramIDOf(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("program of user %d: %w", userID, err)
	}

	var p *Program
	if programID != "" {
		p, err = s.store.Get(ctx, programID)
	} else {
		p, err = s.store.GetActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	w, weekNumber, err := ScheduledWorkout(p, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &TodaysWorkout{
		ProgramID:  p.ID,
		WeekNumber: weekNumber,
		Workout:    w.Clone(),
	}, nil
}

func (s *Service) AddWorkout(ctx context.Context, programID string, weekNumber int, w Workout) (added Workout, err error) {
	_, err = s.mutate(ctx, programID, "add_workout", func(p *Program) error {
		added, err = p.AddWorkout(weekNumber, w)
		return err
	})
	return added, err
}

func (s *Service) UpdateWorkout(ctx context.Context, programID string, path WorkoutPath, upd WorkoutUpdate) (updated Workout, err error) {
	_, err = s.mutate(ctx, programID, "update_workout", func(p *Program) error {
		updated, err = p.UpdateWorkout(path, upd)
		return err
	})
	return updated, err
}

func (s *Service) DeleteWorkout(ctx context.Context, programID string, path WorkoutPath) error {
	_, err := s.mutate(ctx, programID, "delete_workout", func(p *Program) error {
		return p.DeleteWorkout(path)
	})
	return err
}

func (s *Service) AddStation(ctx context.Context, programID string, path WorkoutPath, st Station, growCount bool) (added Station, err error) {
	_, err = s.mutate(ctx, programID, "add_station", func(p *Program) error {
		added, err = p.AddStation(path, st, growCount)
		return err
	})
	return added, err
}

func (s *Service) UpdateStation(ctx context.Context, programID string, path StationPath, upd StationUpdate) (updated Station, err error) {
	_, err = s.mutate(ctx, programID, "update_station", func(p *Program) error {
		updated, err = p.UpdateStation(path, upd)
		return err
	})
	return updated, err
}

func (s *Service) DeleteStation(ctx context.Context, programID string, path StationPath) error {
	_, err := s.mutate(ctx, programID, "delete_station", func(p *Program) error {
		return p.DeleteStation(path, s.deletePolicy)
	})
	return err
}

func (s *Service) AddSet(ctx context.Context, programID string, path StationPath, set Set) (added Set, err error) {
	_, err = s.mutate(ctx, programID, "add_set", func(p *Program) error {
		added, err = p.AddSet(path, set)
		return err
	})
	return added, err
}

func (s *Service) UpdateSet(ctx context.Context, programID string, path SetPath, upd SetUpdate) (updated Set, err error) {
	_, err = s.mutate(ctx, programID, "update_set", func(p *Program) error {
		updated, err = p.UpdateSet(path, upd)
		return err
	})
	return updated, err
}

func (s *Service) DeleteSet(ctx context.Context, programID string, path SetPath) error {
	_, err := s.mutate(ctx, programID, "delete_set", func(p *Program) error {
		return p.DeleteSet(path, s.deletePolicy)
	})
	return err
}

// mutate loads the program, applies fn to a copy and writes the whole document back.
// Nothing is written when fn fails.
func (s *Service) mutate(ctx context.Context, programID, op string, fn func(p *Program) error) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.mutate."+op)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		s.countMutation(op, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID))

	stored, err := s.store.Get(ctx, programID)
	if err != nil {
		return nil, err
	}

	p := stored.Clone()
	if err := fn(p); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("persist program %s: %w", programID, err)
	}

	return p, nil
}

func (s *Service) countMutation(op string, err error) {
	if s.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = string(apperr.KindOf(err))
	}
	s.metrics.CounterProgramMutations.With(prometheus.Labels{"op": op, "result": result}).Inc()
}
