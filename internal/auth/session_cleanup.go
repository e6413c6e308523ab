package auth

import (
	"context"

	"github.com/2beens/gymprogress/pkg"
)

// SessionCleanup is a scheduled job removing expired sessions.
type SessionCleanup struct {
	service *Service
	clock   pkg.Clock
}

func NewSessionCleanup(service *Service, clock pkg.Clock) *SessionCleanup {
	return &SessionCleanup{
		service: service,
		clock:   clock,
	}
}

func (c *SessionCleanup) Name() string {
	return "sessions-cleanup"
}

func (c *SessionCleanup) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.service.ScanAndClean(ctx, c.clock.Now())
	return nil
}
