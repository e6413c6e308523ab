package tabs

import (
	"context"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, tabNumber int, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tabs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("tab.number", tabNumber))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO tab (tab_number, password_hash) VALUES ($1, $2);`,
		tabNumber, passwordHash,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return apperr.Conflict("tab %d already exists", tabNumber)
		}
		return err
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, tabNumber int) (_ *Tab, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tabs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("tab.number", tabNumber))

	tab, err := scanTab(r.db.QueryRow(
		ctx,
		`SELECT tab_number, password_hash, logged_in_user_id, paired_at FROM tab WHERE tab_number = $1;`,
		tabNumber,
	))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, apperr.NotFound("tab %d not found", tabNumber)
		}
		return nil, err
	}
	return tab, nil
}

// Pair binds the tab to userID, replacing any previous pairing.
func (r *Repo) Pair(ctx context.Context, tabNumber, userID int, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tabs.pair")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE tab SET logged_in_user_id = $1, paired_at = $2 WHERE tab_number = $3;`,
		userID, at, tabNumber,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return apperr.NotFound("user %d not found", userID)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("tab %d not found", tabNumber)
	}
	return nil
}

func (r *Repo) Unpair(ctx context.Context, tabNumber int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tabs.unpair")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE tab SET logged_in_user_id = NULL, paired_at = NULL WHERE tab_number = $1;`,
		tabNumber,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("tab %d not found", tabNumber)
	}
	return nil
}

func scanTab(row pgx.Row) (*Tab, error) {
	var tab Tab
	if err := row.Scan(
		&tab.TabNumber,
		&tab.PasswordHash,
		&tab.LoggedInUserID,
		&tab.PairedAt,
	); err != nil {
		return nil, err
	}
	return &tab, nil
}
