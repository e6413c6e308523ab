package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

// Job is a named batch task. The weekly streak sweep is one.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on cron expressions (UTC). Jobs can also be
// triggered on demand with RunNow, which is what tests and the admin API do.
type Scheduler struct {
	ctx  context.Context
	cron *gocron.Scheduler

	mu   sync.Mutex
	jobs map[string]Job
}

// New creates a stopped scheduler. Scheduled runs get ctx.
func New(ctx context.Context) *Scheduler {
	cron := gocron.NewScheduler(time.UTC)
	cron.SingletonModeAll()
	return &Scheduler{
		ctx:  ctx,
		cron: cron,
		jobs: make(map[string]Job),
	}
}

func (s *Scheduler) Register(cronExpr string, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := job.Name()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already registered", name)
	}

	if _, err := s.cron.Cron(cronExpr).Tag(name).Do(s.runScheduled, job); err != nil {
		return fmt.Errorf("schedule job %s [%s]: %w", name, cronExpr, err)
	}
	s.jobs[name] = job

	log.Infof("job %s scheduled: %s", name, cronExpr)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.StartAsync()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunNow runs the named job synchronously.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.Lock()
	job, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return apperr.NotFound("job %s not found", name)
	}
	return s.run(ctx, job)
}

// NextRun reports when the named job fires next. Zero before Start.
func (s *Scheduler) NextRun(name string) (time.Time, error) {
	jobs, err := s.cron.FindJobsByTag(name)
	if err != nil {
		return time.Time{}, apperr.NotFound("job %s not found", name)
	}
	return jobs[0].NextRun(), nil
}

func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

func (s *Scheduler) runScheduled(job Job) {
	if err := s.run(s.ctx, job); err != nil {
		log.Errorf("scheduled job %s: %s", job.Name(), err)
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scheduler.job."+job.Name())
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	log.Infof("job %s started", job.Name())
	if err := job.Run(ctx); err != nil {
		return err
	}
	log.Infof("job %s finished in %s", job.Name(), time.Since(start))
	return nil
}
