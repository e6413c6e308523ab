package completions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/apperr"
	"github.com/2beens/gymprogress/internal/programs"
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

const selectEntry = `SELECT id, user_id, program_id, workout_id, week_number, stations, completed, completed_at, edited_at FROM completion_log`

// Add appends the entry, no duplicate detection is done.
func (r *Repo) Add(ctx context.Context, e *LogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stationsJson, err := json.Marshal(e.Stations)
	if err != nil {
		return fmt.Errorf("marshal stations: %w", err)
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO completion_log
				(user_id, program_id, workout_id, week_number, stations, completed, completed_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		e.UserID, e.ProgramID, e.WorkoutID, e.WeekNumber, stationsJson, e.Completed, e.CompletedAt,
	).Scan(&e.ID); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return apperr.NotFound("user %d not found", e.UserID)
		}
		return err
	}

	span.SetAttributes(attribute.Int64("completion.id", e.ID))
	return nil
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("completion.id", id))

	e, err := scanEntry(r.db.QueryRow(ctx, selectEntry+` WHERE id = $1;`, id))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, apperr.NotFound("completion %d not found", id)
		}
		return nil, err
	}
	return e, nil
}

// ListByUser returns the user's entries ordered by completedAt ascending.
func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.listbyuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, selectEntry+` WHERE user_id = $1 ORDER BY completed_at ASC, id ASC;`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []LogEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Edit is the only mutation an entry allows after creation.
func (r *Repo) Edit(ctx context.Context, id int64, stations []programs.Station, completed bool, editedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.edit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("completion.id", id))

	stationsJson, err := json.Marshal(stations)
	if err != nil {
		return fmt.Errorf("marshal stations: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE completion_log SET stations = $1, completed = $2, edited_at = $3 WHERE id = $4;`,
		stationsJson, completed, editedAt.UTC(), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("completion %d not found", id)
	}
	return nil
}

// CountInRange counts the user's entries with completedAt in [from, to).
func (r *Repo) CountInRange(ctx context.Context, userID int, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.countinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM completion_log WHERE user_id = $1 AND completed_at >= $2 AND completed_at < $3;`,
		userID, from, to,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanEntry(row pgx.Row) (*LogEntry, error) {
	var (
		e            LogEntry
		stationsJson []byte
	)
	if err := row.Scan(
		&e.ID, &e.UserID, &e.ProgramID, &e.WorkoutID, &e.WeekNumber,
		&stationsJson, &e.Completed, &e.CompletedAt, &e.EditedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stationsJson, &e.Stations); err != nil {
		return nil, fmt.Errorf("unmarshal stations of completion %d: %w", e.ID, err)
	}
	e.CompletedAt = e.CompletedAt.UTC()
	return &e, nil
}
