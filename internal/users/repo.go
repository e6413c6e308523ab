package users

import (
	"context"
	"fmt"
	"strings"
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

const selectUser = `SELECT id, email, password_hash, program_id, weekly_goal, total_workouts, workouts_in_week, streak, last_active_at, created_at FROM gym_user`

func (r *Repo) Add(ctx context.Context, email, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.db.QueryRow(
		ctx,
		`INSERT INTO gym_user (email, password_hash, weekly_goal, created_at)
				VALUES ($1, $2, $3, $4)
			RETURNING id, email, password_hash, program_id, weekly_goal, total_workouts, workouts_in_week, streak, last_active_at, created_at;`,
		email, passwordHash, DefaultWeeklyGoal, time.Now().UTC(),
	))
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, apperr.Conflict("user %s already exists", email)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", u.ID))
	return u, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	u, err := scanUser(r.db.QueryRow(ctx, selectUser+` WHERE id = $1;`, id))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, apperr.NotFound("user %d not found", id)
		}
		return nil, err
	}
	return u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.db.QueryRow(ctx, selectUser+` WHERE email = $1;`, email))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, apperr.NotFound("user %s not found", email)
		}
		return nil, err
	}
	return u, nil
}

// List returns all users ordered by id.
func (r *Repo) List(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, selectUser+` ORDER BY id ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, nil
}

func (r *Repo) ProgramIDOf(ctx context.Context, userID int) (string, error) {
	u, err := r.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.ProgramID == nil {
		return "", nil
	}
	return *u.ProgramID, nil
}

// AssignProgram binds the user to a program, nil unbinds.
func (r *Repo) AssignProgram(ctx context.Context, userID int, programID *string) error {
	tag, err := r.db.Exec(ctx, `UPDATE gym_user SET program_id = $1 WHERE id = $2;`, programID, userID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return apperr.NotFound("program %s not found", *programID)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user %d not found", userID)
	}
	return nil
}

func (r *Repo) UpdateWeeklyGoal(ctx context.Context, userID, goal int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updategoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("goal", goal))

	return r.execForUser(ctx, userID, `UPDATE gym_user SET weekly_goal = $1 WHERE id = $2;`, goal, userID)
}

// IncrementWorkouts bumps both the lifetime and the current week counters.
func (r *Repo) IncrementWorkouts(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.incrementworkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return r.execForUser(
		ctx, userID,
		`UPDATE gym_user SET total_workouts = total_workouts + 1, workouts_in_week = workouts_in_week + 1 WHERE id = $1;`,
		userID,
	)
}

// CloseWeek stores the new goal streak and takes the counted workouts off the
// week counter. Workouts finished after they were counted stay in the new week.
func (r *Repo) CloseWeek(ctx context.Context, userID, streak, counted int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.closeweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("streak", streak),
		attribute.Int("workouts.counted", counted),
	)

	return r.execForUser(
		ctx, userID,
		`UPDATE gym_user SET streak = $1, workouts_in_week = GREATEST(workouts_in_week - $2, 0) WHERE id = $3;`,
		streak, counted, userID,
	)
}

func (r *Repo) TouchLastActive(ctx context.Context, userID int, at time.Time) error {
	return r.execForUser(ctx, userID, `UPDATE gym_user SET last_active_at = $1 WHERE id = $2;`, at.UTC(), userID)
}

func (r *Repo) execForUser(ctx context.Context, userID int, sql string, args ...any) error {
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user %d not found", userID)
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.ProgramID,
		&u.WeeklyWorkOutGoal, &u.TotalWorkouts, &u.WorkoutsInWeek, &u.Streak,
		&u.LastActiveAt, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
