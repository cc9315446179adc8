package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Greg-CLD/tcof/internal/model"
)

// CreateOrganisation creates a new organisation.
func (r *Repository) CreateOrganisation(ctx context.Context, o model.Organisation) (*model.Organisation, error) {
	if o.ID == "" {
		o.ID = ulid.Make().String()
	}
	o.CreatedAt = time.Now().UTC()

	query := `INSERT INTO organisations (id, name, plan, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, o.ID, o.Name, o.Plan, o.CreatedAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("organisation already exists: %w", model.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("could not insert organisation: %w", err)
	}

	r.logger.Debugf("Created organisation in repository: %s", o.ID)

	o.CreatedAt = timeFromUnix(o.CreatedAt.Unix())
	return &o, nil
}

// GetOrganisation retrieves an organisation by id.
func (r *Repository) GetOrganisation(ctx context.Context, id string) (*model.Organisation, error) {
	query := `SELECT id, name, plan, created_at FROM organisations WHERE id = $1`

	org, err := r.scanOrganisation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("organisation %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query organisation: %w", err)
	}

	return &org, nil
}

// ListOrganisations returns every organisation ordered by name.
func (r *Repository) ListOrganisations(ctx context.Context) ([]model.Organisation, error) {
	query := `SELECT id, name, plan, created_at FROM organisations ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query organisations: %w", err)
	}
	defer rows.Close()

	orgs := []model.Organisation{}
	for rows.Next() {
		org, err := r.scanOrganisation(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		orgs = append(orgs, org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return orgs, nil
}

// UpdateOrganisationPlan changes the billing plan of an organisation.
func (r *Repository) UpdateOrganisationPlan(ctx context.Context, id string, plan model.Plan) error {
	result, err := r.db.ExecContext(ctx, `UPDATE organisations SET plan = $1 WHERE id = $2`, plan, id)
	if err != nil {
		return fmt.Errorf("could not update organisation: %w", err)
	}

	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("organisation %s: %w", id, model.ErrNotFound)
	}

	r.logger.Debugf("Updated organisation plan: %s -> %s", id, plan)
	return nil
}

// CreateUser creates a new user.
func (r *Repository) CreateUser(ctx context.Context, u model.User) (*model.User, error) {
	if u.ID == "" {
		u.ID = ulid.Make().String()
	}
	u.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO users (id, org_id, email, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query, u.ID, u.OrgID, u.Email, u.Name, u.Role, u.PasswordHash, u.CreatedAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user already exists: %w", model.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("could not insert user: %w", err)
	}

	r.logger.Debugf("Created user in repository: %s", u.ID)

	u.CreatedAt = timeFromUnix(u.CreatedAt.Unix())
	return &u, nil
}

// GetUser retrieves a user by id.
func (r *Repository) GetUser(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, org_id, email, name, role, password_hash, created_at FROM users WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, org_id, email, name, role, password_hash, created_at FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query user: %w", err)
	}

	return &user, nil
}

// CreateSession stores a new session.
func (r *Repository) CreateSession(ctx context.Context, s model.Session) error {
	query := `INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, s.Token, s.UserID, s.CreatedAt.Unix(), s.ExpiresAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("session: %w", model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by token.
func (r *Repository) GetSession(ctx context.Context, token string) (*model.Session, error) {
	query := `SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = $1`

	var session model.Session
	var createdAt, expiresAt int64
	err := r.db.QueryRowContext(ctx, query, token).Scan(&session.Token, &session.UserID, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query session: %w", err)
	}

	session.CreatedAt = timeFromUnix(createdAt)
	session.ExpiresAt = timeFromUnix(expiresAt)

	return &session, nil
}

// DeleteSession deletes a session by token.
func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("session: %w", model.ErrNotFound)
	}

	return nil
}

func (r *Repository) scanOrganisation(s scanner) (model.Organisation, error) {
	var org model.Organisation
	var createdAt int64

	err := s.Scan(&org.ID, &org.Name, &org.Plan, &createdAt)
	if err != nil {
		return model.Organisation{}, err
	}

	org.CreatedAt = timeFromUnix(createdAt)
	return org, nil
}

func (r *Repository) scanUser(s scanner) (model.User, error) {
	var user model.User
	var createdAt int64

	err := s.Scan(&user.ID, &user.OrgID, &user.Email, &user.Name, &user.Role, &user.PasswordHash, &createdAt)
	if err != nil {
		return model.User{}, err
	}

	user.CreatedAt = timeFromUnix(createdAt)
	return user, nil
}
