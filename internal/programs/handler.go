package programs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/auth"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ResolvedWorkoutResponse struct {
	ProgramID  string  `json:"programId"`
	WeekNumber int     `json:"weekNumber"`
	Workout    Workout `json:"workout"`
}

type AppendWeekResponse struct {
	WeekNumber int `json:"weekNumber"`
}

type DeletedResponse struct {
	Deleted string `json:"deleted"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	list, err := handler.service.List(ctx)
	if err != nil {
		log.Errorf("list programs: %s", err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	p, err := handler.service.Get(ctx, id)
	if err != nil {
		log.Errorf("get program %s: %s", id, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.validate")
	defer span.End()

	id := mux.Vars(r)["id"]
	violations, err := handler.service.Validate(ctx, id)
	if err != nil {
		log.Errorf("validate program %s: %s", id, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, violations, http.StatusOK)
}

func (handler *Handler) HandleResolveWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.workout")
	defer span.End()

	vars := mux.Vars(r)
	programID, workoutID := vars["id"], vars["workoutId"]
	workout, weekNumber, err := handler.service.ResolveWorkout(ctx, programID, workoutID)
	if err != nil {
		log.Errorf("resolve workout %s in program %s: %s", workoutID, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, ResolvedWorkoutResponse{
		ProgramID:  programID,
		WeekNumber: weekNumber,
		Workout:    *workout,
	}, http.StatusOK)
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.today")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	today, err := handler.service.TodaysWorkout(ctx, userID)
	if err != nil {
		log.Debugf("todays workout of user %d: %s", userID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, today, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.create")
	defer span.End()

	var params NewProgramParams
	if !decodeBody(w, r, &params) {
		return
	}

	p, err := handler.service.Create(ctx, params)
	if err != nil {
		log.Errorf("create program [%s]: %s", params.Title, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusCreated)
}

func (handler *Handler) HandleUpdateMeta(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.update")
	defer span.End()

	var upd ProgramUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	id := mux.Vars(r)["id"]
	p, err := handler.service.UpdateMeta(ctx, id, upd)
	if err != nil {
		log.Errorf("update program %s: %s", id, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.service.Delete(ctx, id); err != nil {
		log.Errorf("delete program %s: %s", id, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, DeletedResponse{Deleted: id}, http.StatusOK)
}

func (handler *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.activate")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.service.Activate(ctx, id); err != nil {
		log.Errorf("activate program %s: %s", id, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "activated:"+id)
}

func (handler *Handler) HandleAppendWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.weeks.append")
	defer span.End()

	id := mux.Vars(r)["id"]
	weekNumber, err := handler.service.AppendWeek(ctx, id)
	if err != nil {
		log.Errorf("append week to program %s: %s", id, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, AppendWeekResponse{WeekNumber: weekNumber}, http.StatusCreated)
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.workouts.add")
	defer span.End()

	vars := mux.Vars(r)
	weekNumber, err := strconv.Atoi(vars["week"])
	if err != nil {
		http.Error(w, "error, week NaN", http.StatusBadRequest)
		return
	}

	var workout Workout
	if !decodeBody(w, r, &workout) {
		return
	}

	added, err := handler.service.AddWorkout(ctx, vars["id"], weekNumber, workout)
	if err != nil {
		log.Errorf("add workout to program %s week %d: %s", vars["id"], weekNumber, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.workouts.update")
	defer span.End()

	path, ok := workoutPathFromVars(w, r)
	if !ok {
		return
	}
	var upd WorkoutUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	programID := mux.Vars(r)["id"]
	updated, err := handler.service.UpdateWorkout(ctx, programID, path, upd)
	if err != nil {
		log.Errorf("update %s in program %s: %s", path, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.workouts.delete")
	defer span.End()

	path, ok := workoutPathFromVars(w, r)
	if !ok {
		return
	}

	programID := mux.Vars(r)["id"]
	if err := handler.service.DeleteWorkout(ctx, programID, path); err != nil {
		log.Errorf("delete %s in program %s: %s", path, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, DeletedResponse{Deleted: path.String()}, http.StatusOK)
}

func (handler *Handler) HandleAddStation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.stations.add")
	defer span.End()

	path, ok := workoutPathFromVars(w, r)
	if !ok {
		return
	}
	var station Station
	if !decodeBody(w, r, &station) {
		return
	}
	grow := r.URL.Query().Get("grow") == "true"

	programID := mux.Vars(r)["id"]
	added, err := handler.service.AddStation(ctx, programID, path, station, grow)
	if err != nil {
		log.Errorf("add station to %s in program %s: %s", path, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateStation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.stations.update")
	defer span.End()

	path, ok := stationPathFromVars(w, r)
	if !ok {
		return
	}
	var upd StationUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	programID := mux.Vars(r)["id"]
	updated, err := handler.service.UpdateStation(ctx, programID, path, upd)
	if err != nil {
		log.Errorf("update %s in program %s: %s", path, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDeleteStation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.stations.delete")
	defer span.End()

	path, ok := stationPathFromVars(w, r)
	if !ok {
		return
	}

	programID := mux.Vars(r)["id"]
	if err := handler.service.DeleteStation(ctx, programID, path); err != nil {
		log.Errorf("delete %s in program %s: %s", path, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, DeletedResponse{Deleted: path.String()}, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.sets.add")
	defer span.End()

	path, ok := stationPathFromVars(w, r)
	if !ok {
		return
	}
	var set Set
	if !decodeBody(w, r, &set) {
		return
	}

	programID := mux.Vars(r)["id"]
	added, err := handler.service.AddSet(ctx, programID, path, set)
	if err != nil {
		log.Errorf("add set to %s in program %s: %s", path, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.sets.update")
	defer span.End()

	path, ok := setPathFromVars(w, r)
	if !ok {
		return
	}
	var upd SetUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	programID := mux.Vars(r)["id"]
	updated, err := handler.service.UpdateSet(ctx, programID, path, upd)
	if err != nil {
		log.Errorf("update %s in program %s: %s", path, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.sets.delete")
	defer span.End()

	path, ok := setPathFromVars(w, r)
	if !ok {
		return
	}

	programID := mux.Vars(r)["id"]
	if err := handler.service.DeleteSet(ctx, programID, path); err != nil {
		log.Errorf("delete %s in program %s: %s", path, programID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, DeletedResponse{Deleted: path.String()}, http.StatusOK)
}

func workoutPathFromVars(w http.ResponseWriter, r *http.Request) (WorkoutPath, bool) {
	vars := mux.Vars(r)
	weekNumber, err := strconv.Atoi(vars["week"])
	if err != nil {
		http.Error(w, "error, week NaN", http.StatusBadRequest)
		return WorkoutPath{}, false
	}
	return WorkoutPath{WeekNumber: weekNumber, Workout: ParseRef(vars["workout"])}, true
}

func stationPathFromVars(w http.ResponseWriter, r *http.Request) (StationPath, bool) {
	workoutPath, ok := workoutPathFromVars(w, r)
	if !ok {
		return StationPath{}, false
	}
	return StationPath{WorkoutPath: workoutPath, Station: ParseRef(mux.Vars(r)["station"])}, true
}

func setPathFromVars(w http.ResponseWriter, r *http.Request) (SetPath, bool) {
	stationPath, ok := stationPathFromVars(w, r)
	if !ok {
		return SetPath{}, false
	}
	return SetPath{StationPath: stationPath, Set: ParseRef(mux.Vars(r)["set"])}, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Errorf("%s %s, unmarshal json params: %s", r.Method, r.URL.Path, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
