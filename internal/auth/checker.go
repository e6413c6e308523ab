package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*StaticChecker)(nil)

// Checker resolves a session token to the id of the logged-in user.
type Checker interface {
	UserIDForToken(ctx context.Context, token string) (int, error)
}

// StaticChecker serves a fixed token -> user id table, used in tests and local runs.
type StaticChecker struct {
	Sessions map[string]int
}

func NewStaticChecker() *StaticChecker {
	return &StaticChecker{
		Sessions: map[string]int{},
	}
}

func (c *StaticChecker) UserIDForToken(_ context.Context, token string) (int, error) {
	userID, ok := c.Sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}
	return userID, nil
}
