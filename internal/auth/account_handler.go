package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/internal/users"
	"github.com/2beens/gymprogress/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=account_handler_mocks_test.go -package=auth

type accountStore interface {
	Get(ctx context.Context, id int) (*users.User, error)
	List(ctx context.Context) ([]users.User, error)
	AssignProgram(ctx context.Context, userID int, programID *string) error
}

type AssignProgramRequest struct {
	// ProgramID nil moves the user back to the active program.
	ProgramID *string `json:"programId"`
}

// AccountHandler serves the logged-in user's account and the admin user views.
type AccountHandler struct {
	store accountStore
}

func NewAccountHandler(store accountStore) *AccountHandler {
	return &AccountHandler{
		store: store,
	}
}

func (handler *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "accountHandler.me")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	u, err := handler.store.Get(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			log.Errorf("get user %d: %s", userID, err)
		}
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSON(w, u, http.StatusOK)
}

func (handler *AccountHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "accountHandler.list")
	defer span.End()

	list, err := handler.store.List(ctx)
	if err != nil {
		log.Errorf("list users: %s", err)
		apperr.WriteHTTP(w, err)
		return
	}
	if list == nil {
		list = []users.User{}
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *AccountHandler) HandleAssignProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "accountHandler.assignProgram")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	userID, err := strconv.Atoi(idStr)
	if err != nil {
		apperr.WriteHTTP(w, apperr.Validation("invalid user id: %s", idStr))
		return
	}

	var req AssignProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.WriteHTTP(w, apperr.Validation("invalid request body: %s", err))
		return
	}
	if req.ProgramID != nil && *req.ProgramID == "" {
		apperr.WriteHTTP(w, apperr.Validation("programId must not be empty"))
		return
	}

	if err := handler.store.AssignProgram(ctx, userID, req.ProgramID); err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			log.Errorf("assign program to user %d: %s", userID, err)
		}
		apperr.WriteHTTP(w, err)
		return
	}

	u, err := handler.store.Get(ctx, userID)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}
	pkg.WriteJSON(w, u, http.StatusOK)
}
