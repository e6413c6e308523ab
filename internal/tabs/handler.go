package tabs

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

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tabs.register")
	defer span.End()

	var req NewTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("register tab, unmarshal json params: %s", err)
		http.Error(w, "register tab failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		log.Errorf("register tab %d: %s", req.TabNumber, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "added:"+strconv.Itoa(req.TabNumber), http.StatusCreated)
}

func (handler *Handler) HandlePair(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tabs.pair")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}
	tabNumber, err := strconv.Atoi(mux.Vars(r)["tab"])
	if err != nil {
		http.Error(w, "error, tab NaN", http.StatusBadRequest)
		return
	}

	var req PairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("pair tab, unmarshal json params: %s", err)
		http.Error(w, "pair tab failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.Pair(ctx, tabNumber, userID, req.Password); err != nil {
		log.Errorf("pair tab %d with user %d: %s", tabNumber, userID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "paired:"+strconv.Itoa(tabNumber))
}

func (handler *Handler) HandleUnpair(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tabs.unpair")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}
	tabNumber, err := strconv.Atoi(mux.Vars(r)["tab"])
	if err != nil {
		http.Error(w, "error, tab NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.Unpair(ctx, tabNumber, userID); err != nil {
		log.Errorf("unpair tab %d of user %d: %s", tabNumber, userID, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteTextResponseOK(w, "unpaired:"+strconv.Itoa(tabNumber))
}

func (handler *Handler) HandleStation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tabs.station")
	defer span.End()

	tabNumber, err := strconv.Atoi(mux.Vars(r)["tab"])
	if err != nil {
		http.Error(w, "error, tab NaN", http.StatusBadRequest)
		return
	}

	station, err := handler.service.Station(ctx, tabNumber)
	if err != nil {
		log.Debugf("station of tab %d: %s", tabNumber, err)
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, station, http.StatusOK)
}
