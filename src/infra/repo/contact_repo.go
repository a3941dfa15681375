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

const contactColumns = `id, first_name, last_name, email, phone_number, birthday, additional_data, created_at, updated_at`

var _ ports.ContactRepository = (*ContactRepository)(nil)

// ContactRepository implements ports.ContactRepository.
type ContactRepository struct {
	scope
	log *slog.Logger
	q   contactQueries
}

type contactQueries struct {
	list, get, update, delete string
}

func newContactQueries(d db.Dialect) contactQueries {
	return contactQueries{
		list: d.Rebind(`
			SELECT ` + contactColumns + `
			FROM contacts
			ORDER BY id
			LIMIT ? OFFSET ?`),
		get: d.Rebind(`
			SELECT ` + contactColumns + `
			FROM contacts
			WHERE id = ?`),
		update: d.Rebind(`
			UPDATE contacts
			SET first_name = ?, last_name = ?, email = ?, phone_number = ?,
			    birthday = ?, additional_data = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`),
		delete: d.Rebind(`DELETE FROM contacts WHERE id = ?`),
	}
}

// NewContactRepository constructs a contact repository on store.
func NewContactRepository(store *db.Store, log *slog.Logger) *ContactRepository {
	return &ContactRepository{
		scope: scope{store: store},
		log:   log,
		q:     newContactQueries(store.Dialect),
	}
}

// WithTx returns a copy that runs every call inside tx. The caller keeps
// ownership of tx and decides when to commit or roll back.
func (r *ContactRepository) WithTx(tx *sql.Tx) *ContactRepository {
	cp := *r
	cp.tx = tx
	return &cp
}

func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]domain.Contact, error) {
	rows, err := r.reader().QueryContext(ctx, r.q.list, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	return r.get(ctx, r.reader(), id)
}

func (r *ContactRepository) Create(ctx context.Context, in schema.ContactSchema) (*domain.Contact, error) {
	cols := []string{"first_name", "last_name", "email", "phone_number"}
	args := []any{in.FirstName, in.LastName, in.Email, in.PhoneNumber}

	// Unset optional fields are left out so the column default applies.
	if in.Birthday != nil {
		cols = append(cols, "birthday")
		args = append(args, *in.Birthday.TimePtr())
	}
	if in.AdditionalData != nil {
		cols = append(cols, "additional_data")
		args = append(args, *in.AdditionalData.TimePtr())
	}

	insert := r.rebind(fmt.Sprintf(
		"INSERT INTO contacts (%s) VALUES (%s) RETURNING id",
		strings.Join(cols, ", "), placeholders(len(cols)),
	))

	var created *domain.Contact
	err := r.write(ctx, func(q db.Querier) error {
		var id int64
		if err := q.QueryRowContext(ctx, insert, args...).Scan(&id); err != nil {
			return err
		}
		c, err := r.get(ctx, q, id)
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Debug("contact created", "contact_id", created.ID)
	return created, nil
}

func (r *ContactRepository) Update(ctx context.Context, id int64, in schema.ContactUpdateSchema) (*domain.Contact, error) {
	var updated *domain.Contact
	err := r.write(ctx, func(q db.Querier) error {
		res, err := q.ExecContext(ctx, r.q.update,
			in.FirstName, in.LastName, in.Email, in.PhoneNumber,
			in.Birthday.TimePtr(), in.AdditionalData.TimePtr(),
			id,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		updated, err = r.get(ctx, q, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	if updated != nil {
		r.log.Debug("contact updated", "contact_id", id)
	}
	return updated, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) (*domain.Contact, error) {
	var deleted *domain.Contact
	err := r.write(ctx, func(q db.Querier) error {
		existing, err := r.get(ctx, q, id)
		if err != nil || existing == nil {
			return err
		}
		if _, err := q.ExecContext(ctx, r.q.delete, id); err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	if deleted != nil {
		r.log.Debug("contact deleted", "contact_id", id)
	}
	return deleted, nil
}

func (r *ContactRepository) get(ctx context.Context, q db.Querier, id int64) (*domain.Contact, error) {
	c, err := scanContact(q.QueryRowContext(ctx, r.q.get, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var (
		c          domain.Contact
		birthday   sql.NullTime
		additional sql.NullTime
	)
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber,
		&birthday, &additional, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Birthday = nullTime(birthday)
	c.AdditionalData = nullTime(additional)
	return &c, nil
}
