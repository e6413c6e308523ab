package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/internal/users"
	"github.com/2beens/gymprogress/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

const (
	DefaultTTL        = 24 * 7 * time.Hour
	sessionKeyPrefix  = "gymprogress-session||"
	tokensSetKey      = "gymprogress-sessions"
	tokenLength       = 35
	minPasswordLength = 6

	sessionFieldUserID    = "user_id"
	sessionFieldCreatedAt = "created_at"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type userStore interface {
	Add(ctx context.Context, email, passwordHash string) (*users.User, error)
	GetByEmail(ctx context.Context, email string) (*users.User, error)
	TouchLastActive(ctx context.Context, userID int, at time.Time) error
}

type Service struct {
	redisClient *redis.Client
	users       userStore
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	// bcrypt is slow on purpose, tests swap in a cheaper hash
	HashPasswordFunc func(password string) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
	users userStore,
) *Service {
	return &Service{
		ttl:              ttl,
		redisClient:      redisClient,
		users:            users,
		RandStringFunc:   pkg.GenerateRandomString,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func (c Credentials) validate() error {
	if !strings.Contains(c.Email, "@") {
		return apperr.Validation("a valid email is required")
	}
	if len(c.Password) < minPasswordLength {
		return apperr.Validation("password must have at least %d characters", minPasswordLength)
	}
	return nil
}

func (as *Service) Register(ctx context.Context, creds Credentials) (_ *users.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := creds.validate(); err != nil {
		return nil, err
	}

	passwordHash, err := as.HashPasswordFunc(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := as.users.Add(ctx, creds.Email, passwordHash)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", u.ID))
	log.Infof("new user registered: %d", u.ID)
	return u, nil
}

// Login checks the credentials and opens a session. The user's lastActiveAt is
// stamped with createdAt; failing to do so does not fail the login.
func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := as.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(creds.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return nil, err
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.HSet(
		ctx, sessionKey,
		sessionFieldUserID, strconv.Itoa(u.ID),
		sessionFieldCreatedAt, strconv.FormatInt(createdAt.Unix(), 10),
	).Err(); err != nil {
		return nil, err
	}
	if err := as.redisClient.Expire(ctx, sessionKey, as.ttl).Err(); err != nil {
		return nil, err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return nil, err
	}

	if err := as.users.TouchLastActive(ctx, u.ID, createdAt); err != nil {
		log.Errorf("login, touch last active for user %d: %s", u.ID, err)
	}

	span.SetAttributes(attribute.Int("user.id", u.ID))
	return &Session{
		Token:     token,
		UserID:    u.ID,
		CreatedAt: createdAt,
	}, nil
}

// Logout removes the session and reports whether it existed.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// It returns the number of removed sessions.
func (as *Service) ScanAndClean(ctx context.Context, now time.Time) int {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return 0
	}
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean: no sessions")
		return 0
	}

	var toRemove []string
	for _, token := range sessionTokens {
		createdAtStr, err := as.redisClient.HGet(ctx, sessionKeyPrefix+token, sessionFieldCreatedAt).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// session hash already expired in redis
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("auth service, scan and clean token: %s", err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
		if err != nil {
			log.Errorf("auth service, scan and clean, parse created at: %s", err)
			continue
		}

		if now.Sub(time.Unix(createdAtUnix, 0)) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	removed := 0
	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean session: %s", err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean session from set: %s", err)
			continue
		}
		removed++
	}

	log.Infof("auth service, scan and clean: %d of %d sessions removed", removed, len(sessionTokens))
	return removed
}
