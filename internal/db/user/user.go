package user

import (
	c "authsvc/internal/core/domain/common"
	e "authsvc/internal/core/domain/errors"
	"authsvc/internal/core/domain/user"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxUserRepository struct {
	db DBTX
}

func NewPgxRepository(db DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, session_token, reset_token, reset_token_expiry, created_at`

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		input.Name,
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err = u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE id = $1`,
		int64(id),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	if err = u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	if err = u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) SetSessionToken(
	ctx context.Context,
	id user.ID,
	token user.SessionToken,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET session_token = $2 WHERE id = $1`,
		int64(id),
		string(token),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id user.ID,
	token user.ResetToken,
	expiresAt time.Time,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET reset_token = $2, reset_token_expiry = $3 WHERE id = $1`,
		int64(id),
		string(token),
		expiresAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

// CompletePasswordReset clears the token and its expiry and sets the new
// hash in one conditional update. The WHERE clause on reset_token makes the
// first of two racing completions win; the second affects zero rows.
func (r *PgxUserRepository) CompletePasswordReset(
	ctx context.Context,
	id user.ID,
	token user.ResetToken,
	newHash user.PasswordHash,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_hash = $3, reset_token = NULL, reset_token_expiry = NULL
		 WHERE id = $1 AND reset_token = $2`,
		int64(id),
		string(token),
		string(newHash),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrInvalidOrExpiredResetToken
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var sessionToken sql.NullString
	var resetToken sql.NullString
	var resetTokenExpiry sql.NullTime
	err = row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&sessionToken,
		&resetToken,
		&resetTokenExpiry,
		&u.CreatedAt,
	)
	if err != nil {
		return u, err
	}
	u.SessionToken = c.NewOptional(user.SessionToken(sessionToken.String), sessionToken.Valid)
	u.ResetToken = c.NewOptional(user.ResetToken(resetToken.String), resetToken.Valid)
	u.ResetTokenExpiry = c.NewOptional(resetTokenExpiry.Time, resetTokenExpiry.Valid)
	return u, nil
}
