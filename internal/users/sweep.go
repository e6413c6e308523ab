package users

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/telemetry/metrics"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=sweep_mocks_test.go -package=users_test

const StreakSweepJobName = "weekly-streak-sweep"

type sweepStore interface {
	List(ctx context.Context) ([]User, error)
	CloseWeek(ctx context.Context, userID, streak, counted int) error
}

type SweepReport struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	GoalsMet  int `json:"goalsMet"`
}

// StreakSweeper closes the week for every user: the goal streak grows by one when
// workoutsInWeek reached the weekly goal, otherwise it drops to 0.
type StreakSweeper struct {
	store   sweepStore
	metrics *metrics.Manager
}

func NewStreakSweeper(store sweepStore, metricsManager *metrics.Manager) *StreakSweeper {
	return &StreakSweeper{
		store:   store,
		metrics: metricsManager,
	}
}

func (s *StreakSweeper) Name() string {
	return StreakSweepJobName
}

// NextGoalStreak is the streak a user carries into the new week. A goal below 1
// is never met.
func NextGoalStreak(u User) int {
	if u.WeeklyWorkOutGoal >= 1 && u.WorkoutsInWeek >= u.WeeklyWorkOutGoal {
		return u.Streak + 1
	}
	return 0
}

func (s *StreakSweeper) Run(ctx context.Context) error {
	_, err := s.Sweep(ctx)
	return err
}

// Sweep processes all users one by one. A failing user is logged and counted and
// the sweep moves on; the returned error combines all per-user failures.
func (s *StreakSweeper) Sweep(ctx context.Context) (_ SweepReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "users.sweep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	defer func() {
		s.metrics.HistSweepDuration.Observe(time.Since(start).Seconds())
	}()

	users, err := s.store.List(ctx)
	if err != nil {
		return SweepReport{}, fmt.Errorf("list users: %w", err)
	}

	var report SweepReport
	var sweepErr error
	for _, u := range users {
		if ctxErr := ctx.Err(); ctxErr != nil {
			sweepErr = multierr.Append(sweepErr, ctxErr)
			break
		}

		streak := NextGoalStreak(u)
		if err := s.store.CloseWeek(ctx, u.ID, streak, u.WorkoutsInWeek); err != nil {
			log.Errorf("streak sweep, close week for user %d: %s", u.ID, err)
			report.Failed++
			s.metrics.CounterSweepUsers.With(prometheus.Labels{"result": "failed"}).Inc()
			sweepErr = multierr.Append(sweepErr, fmt.Errorf("user %d: %w", u.ID, err))
			continue
		}

		report.Processed++
		result := "goal_missed"
		if streak > 0 {
			report.GoalsMet++
			result = "goal_met"
		}
		s.metrics.CounterSweepUsers.With(prometheus.Labels{"result": result}).Inc()
	}

	span.SetAttributes(
		attribute.Int("sweep.processed", report.Processed),
		attribute.Int("sweep.failed", report.Failed),
	)
	log.Infof("streak sweep done: %d processed, %d goals met, %d failed", report.Processed, report.GoalsMet, report.Failed)

	return report, sweepErr
}
