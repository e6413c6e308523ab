package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	clock   pkg.Clock
}

func NewHandler(service *Service, clock pkg.Clock) *Handler {
	return &Handler{
		service: service,
		clock:   clock,
	}
}

type RegisterResponse struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
}

type LogoutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}

func decodeCredentials(r *http.Request) (Credentials, error) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return creds, apperr.Validation("invalid request body: %s", err)
	}
	return creds, nil
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.register")
	defer span.End()

	creds, err := decodeCredentials(r)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	u, err := handler.service.Register(ctx, creds)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			log.Errorf("register user: %s", err)
		}
		apperr.WriteHTTP(w, err)
		return
	}

	pkg.WriteJSON(w, RegisterResponse{UserID: u.ID, Email: u.Email}, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	creds, err := decodeCredentials(r)
	if err != nil {
		apperr.WriteHTTP(w, err)
		return
	}

	session, err := handler.service.Login(ctx, creds, handler.clock.Now())
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new login success for user %d", session.UserID)
	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	authToken := TokenFromRequest(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, LogoutResponse{LoggedOut: loggedOut}, http.StatusOK)
}
