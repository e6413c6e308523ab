package programs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo stores each program as one row, nested weeks kept as a JSONB document.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const selectProgram = `SELECT id, title, start_date, end_date, active, weeks, created_at, updated_at FROM program`

func (r *Repo) Add(ctx context.Context, p *Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", p.ID))

	weeksJson, err := json.Marshal(p.Weeks)
	if err != nil {
		return fmt.Errorf("marshal weeks: %w", err)
	}

	now := time.Now().UTC()
	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO program
				(id, title, start_date, end_date, active, weeks, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $7);`,
		p.ID, p.Title, p.StartDate, p.EndDate, p.Active, weeksJson, now,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return apperr.Conflict("program %s already exists", p.ID)
		}
		return err
	}

	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.NotFound("program %s not found", id)
	}

	p, err := scanProgram(r.db.QueryRow(ctx, selectProgram+` WHERE id = $1;`, id))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, apperr.NotFound("program %s not found", id)
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) GetActive(ctx context.Context) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.getactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := scanProgram(r.db.QueryRow(ctx, selectProgram+` WHERE active LIMIT 1;`))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, apperr.NotFound("no active program")
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context) (_ []Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, selectProgram+` ORDER BY created_at ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []Program{}
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		programs = append(programs, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("programs.count", len(programs)))
	return programs, nil
}

// Update overwrites the whole document, last write wins. The active flag is
// only changed through SetActive.
func (r *Repo) Update(ctx context.Context, p *Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", p.ID))

	if _, err := uuid.Parse(p.ID); err != nil {
		return apperr.NotFound("program %s not found", p.ID)
	}

	weeksJson, err := json.Marshal(p.Weeks)
	if err != nil {
		return fmt.Errorf("marshal weeks: %w", err)
	}

	now := time.Now().UTC()
	tag, err := r.db.Exec(
		ctx,
		`UPDATE program SET title = $1, start_date = $2, end_date = $3, weeks = $4, updated_at = $5 WHERE id = $6;`,
		p.Title, p.StartDate, p.EndDate, weeksJson, now, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("program %s not found", p.ID)
	}

	p.UpdatedAt = now
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("program %s not found", id)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM program WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("program %s not found", id)
	}
	return nil
}

// SetActive makes id the single active program.
func (r *Repo) SetActive(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.setactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("program %s not found", id)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `UPDATE program SET active = FALSE WHERE active AND id <> $1;`, id); err != nil {
		return fmt.Errorf("deactivate programs: %w", err)
	}

	tag, err := tx.Exec(ctx, `UPDATE program SET active = TRUE WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("activate program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("program %s not found", id)
	}

	return tx.Commit(ctx)
}

func scanProgram(row pgx.Row) (*Program, error) {
	var (
		p         Program
		weeksJson []byte
	)
	if err := row.Scan(
		&p.ID, &p.Title, &p.StartDate, &p.EndDate, &p.Active, &weeksJson, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(weeksJson, &p.Weeks); err != nil {
		return nil, fmt.Errorf("unmarshal weeks of program %s: %w", p.ID, err)
	}
	p.StartDate = p.StartDate.UTC()
	p.EndDate = p.EndDate.UTC()
	return &p, nil
}
