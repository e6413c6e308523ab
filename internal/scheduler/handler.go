package scheduler

import (
	"net/http"
	"sort"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type JobInfo struct {
	Name    string     `json:"name"`
	NextRun *time.Time `json:"nextRun,omitempty"`
}

type RunResponse struct {
	Job      string `json:"job"`
	Duration string `json:"duration"`
}

type Handler struct {
	scheduler *Scheduler
}

func NewHandler(scheduler *Scheduler) *Handler {
	return &Handler{
		scheduler: scheduler,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "schedulerHandler.list")
	defer span.End()

	names := handler.scheduler.Names()
	sort.Strings(names)

	jobs := make([]JobInfo, 0, len(names))
	for _, name := range names {
		info := JobInfo{Name: name}
		if next, err := handler.scheduler.NextRun(name); err == nil && !next.IsZero() {
			info.NextRun = &next
		}
		jobs = append(jobs, info)
	}

	pkg.WriteJSON(w, jobs, http.StatusOK)
}

// HandleRun runs the job named by the {name} route var.
func (handler *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	handler.runJob(w, r, mux.Vars(r)["name"])
}

// RunJob returns a handler that always runs the given job.
func (handler *Handler) RunJob(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.runJob(w, r, name)
	}
}

func (handler *Handler) runJob(w http.ResponseWriter, r *http.Request, name string) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "schedulerHandler.run")
	defer span.End()

	start := time.Now()
	if err := handler.scheduler.RunNow(ctx, name); err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			log.Errorf("run job %s: %s", name, err)
		}
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSON(w, RunResponse{
		Job:      name,
		Duration: time.Since(start).String(),
	}, http.StatusOK)
}
