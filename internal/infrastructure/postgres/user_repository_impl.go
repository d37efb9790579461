package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/oksasatya/go-auth-signup/internal/domain/entity"
	"github.com/oksasatya/go-auth-signup/internal/domain/repository"
)

// dbPool is the subset of *pgxpool.Pool the repository uses.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const selectUser = `
		SELECT id, username, name, email, birth_date, password, COALESCE(access_token, ''), created_at, updated_at
		FROM users
	`

type UserRepository struct {
	pool dbPool
}

func NewUserRepository(pool dbPool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Add(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, name, email, birth_date, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Name, u.Email, u.BirthDate, u.Password)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			field := duplicateField(pgErr.ConstraintName)
			return oops.Code("USER_DUPLICATE").
				With("field", field).
				Wrap(&repository.DuplicateError{Field: field})
		}
		return oops.Code("USER_CREATE_FAILED").
			With("username", u.Username).
			Wrap(err)
	}
	return nil
}

func (r *UserRepository) LoadByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := r.scanOne(ctx, selectUser+`WHERE username = $1`, username)
	if err != nil {
		return nil, oops.Code("USER_LOAD_FAILED").
			With("username", username).
			Wrap(err)
	}
	return u, nil
}

func (r *UserRepository) LoadByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := r.scanOne(ctx, selectUser+`WHERE id = $1`, id)
	if err != nil {
		return nil, oops.Code("USER_LOAD_FAILED").
			With("user_id", id).
			Wrap(err)
	}
	return u, nil
}

// UpdateAccessToken stores token as the user's active token; an empty token
// clears it.
func (r *UserRepository) UpdateAccessToken(ctx context.Context, id, token string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET access_token = NULLIF($2, ''), updated_at = now()
		WHERE id = $1
	`, id, token)
	if err != nil {
		return oops.Code("USER_TOKEN_UPDATE_FAILED").
			With("user_id", id).
			Wrap(err)
	}
	if res.RowsAffected() == 0 {
		return oops.Code("USER_TOKEN_UPDATE_FAILED").
			With("user_id", id).
			Wrap(repository.ErrNotFound)
	}
	return nil
}

// scanOne returns nil, nil when the query matches no row.
func (r *UserRepository) scanOne(ctx context.Context, sql string, arg any) (*entity.User, error) {
	u := &entity.User{}
	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&u.ID, &u.Username, &u.Name, &u.Email, &u.BirthDate,
		&u.Password, &u.AccessToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// duplicateField maps a unique constraint name (users_username_key) to the
// column it guards.
func duplicateField(constraint string) string {
	switch {
	case strings.Contains(constraint, "username"):
		return "username"
	case strings.Contains(constraint, "email"):
		return "email"
	default:
		return constraint
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
