package completions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/auth"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type WeeklyGoalRequest struct {
	WeeklyWorkOutGoal int `json:"weeklyWorkOutGoal"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleFinishWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.finish")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req FinishWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("finish workout, unmarshal json params: %s", err)
		http.Error(w, "finish workout failed", http.StatusBadRequest)
		return
	}

	entry, err := handler.service.FinishWorkout(ctx, userID, req)
	if err != nil {
		log.Errorf("finish workout [%s] [%s] for user %d: %s", req.ProgramID, req.WorkoutID, userID, err)
		apperr.WriteHTTP(w, err)
		return
	}

	log.Debugf("user %d finished workout %s: completion %d", userID, entry.WorkoutID, entry.ID)
	pkg.WriteJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	history, err := handler.service.History(ctx, userID)
	if err != nil {
		log.Errorf("get history of user %d: %s", userID, err)
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

func (handler *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.edit")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req EditCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("edit completion, unmarshal json params: %s", err)
		http.Error(w, "edit completion failed", http.StatusBadRequest)
		return
	}

	entry, err := handler.service.EditCompletion(ctx, userID, id, req)
	if err != nil {
		log.Errorf("edit completion %d of user %d: %s", id, userID, err)
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.export")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var buf bytes.Buffer
	if err := handler.service.ExportHistory(ctx, userID, &buf); err != nil {
		log.Errorf("export history of user %d: %s", userID, err)
		apperr.WriteHTTP(w, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="history-%d.xlsx"`, userID))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.XLSX, buf.Bytes())
}

func (handler *Handler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.goal.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	progress, err := handler.service.CompletedVsGoal(ctx, userID)
	if err != nil {
		log.Errorf("get goal progress of user %d: %s", userID, err)
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.goal.set")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req WeeklyGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set weekly goal, unmarshal json params: %s", err)
		http.Error(w, "set weekly goal failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.SetWeeklyGoal(ctx, userID, req.WeeklyWorkOutGoal); err != nil {
		log.Errorf("set weekly goal of user %d: %s", userID, err)
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSON(w, req, http.StatusOK)
}
