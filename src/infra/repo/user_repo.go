package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"contactbook/src/core/domain"
	"contactbook/src/core/ports"
	"contactbook/src/core/schema"
	"contactbook/src/infra/db"
)

const userColumns = `id, username, email, password, confirmed, avatar, created_at`

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	scope
	log *slog.Logger
	q   userQueries
}

type userQueries struct {
	byEmail, byID, confirm, avatar string
}

func newUserQueries(d db.Dialect) userQueries {
	return userQueries{
		byEmail: d.Rebind(`SELECT ` + userColumns + ` FROM users WHERE email = ?`),
		byID:    d.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`),
		confirm: d.Rebind(`UPDATE users SET confirmed = ? WHERE email = ?`),
		avatar:  d.Rebind(`UPDATE users SET avatar = ? WHERE email = ?`),
	}
}

// NewUserRepository constructs a user repository on store.
func NewUserRepository(store *db.Store, log *slog.Logger) *UserRepository {
	return &UserRepository{
		scope: scope{store: store},
		log:   log,
		q:     newUserQueries(store.Dialect),
	}
}

// WithTx returns a copy bound to a caller-owned transaction.
func (r *UserRepository) WithTx(tx *sql.Tx) *UserRepository {
	cp := *r
	cp.tx = tx
	return &cp
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, r.reader(), r.q.byEmail, email)
}

func (r *UserRepository) Create(ctx context.Context, in schema.UserSchema) (*domain.User, error) {
	cols := []string{"username", "email", "password"}
	args := []any{in.Username, in.Email, in.Password}
	if in.Avatar != nil {
		cols = append(cols, "avatar")
		args = append(args, *in.Avatar)
	}

	insert := r.rebind(fmt.Sprintf(
		"INSERT INTO users (%s) VALUES (%s) RETURNING id",
		strings.Join(cols, ", "), placeholders(len(cols)),
	))

	var created *domain.User
	err := r.write(ctx, func(q db.Querier) error {
		var id int64
		if err := q.QueryRowContext(ctx, insert, args...).Scan(&id); err != nil {
			return err
		}
		u, err := r.getBy(ctx, q, r.q.byID, id)
		created = u
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, conflictError(err, "users")
		}
		return nil, err
	}

	r.log.Debug("user created", "user_id", created.ID)
	return created, nil
}

func (r *UserRepository) ConfirmEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.updateByEmail(ctx, r.q.confirm, true, email)
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, email, url string) (*domain.User, error) {
	return r.updateByEmail(ctx, r.q.avatar, url, email)
}

// updateByEmail sets one column and returns the refreshed user, or nil when
// no account has that email.
func (r *UserRepository) updateByEmail(ctx context.Context, query string, value any, email string) (*domain.User, error) {
	var updated *domain.User
	err := r.write(ctx, func(q db.Querier) error {
		res, err := q.ExecContext(ctx, query, value, email)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil || n == 0 {
			return err
		}
		updated, err = r.getBy(ctx, q, r.q.byEmail, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) getBy(ctx context.Context, q db.Querier, query string, arg any) (*domain.User, error) {
	u, err := scanUser(q.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u      domain.User
		avatar sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Confirmed, &avatar, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Avatar = nullString(avatar)
	return &u, nil
}
