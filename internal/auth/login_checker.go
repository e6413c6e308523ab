package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	clock       pkg.Clock
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client, clock pkg.Clock) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		clock:       clock,
	}
}

func (lc *LoginChecker) UserIDForToken(ctx context.Context, token string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.loginchecker.userid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	values, err := lc.redisClient.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, ErrSessionNotFound
	}

	createdAtUnix, err := strconv.ParseInt(values[sessionFieldCreatedAt], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse session created at: %w", err)
	}
	if lc.clock.Now().Sub(time.Unix(createdAtUnix, 0)) > lc.ttl {
		return 0, ErrSessionExpired
	}

	userID, err := strconv.Atoi(values[sessionFieldUserID])
	if err != nil {
		return 0, fmt.Errorf("parse session user id: %w", err)
	}
	return userID, nil
}
