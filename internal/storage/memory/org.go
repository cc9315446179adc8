package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/oklog/ulid/v2"

	"github.com/Greg-CLD/tcof/internal/model"
)

// CreateOrganisation creates a new organisation.
func (r *Repository) CreateOrganisation(ctx context.Context, o model.Organisation) (*model.Organisation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		o.ID = ulid.Make().String()
	}

	if _, ok := r.orgs[o.ID]; ok {
		return nil, fmt.Errorf("organisation with id %s: %w", o.ID, model.ErrAlreadyExists)
	}
	for _, existing := range r.orgs {
		if existing.Name == o.Name {
			return nil, fmt.Errorf("organisation with name %s: %w", o.Name, model.ErrAlreadyExists)
		}
	}

	o.CreatedAt = now()
	r.orgs[o.ID] = o

	r.logger.Debugf("Created organisation in repository: %s", o.ID)

	orgCopy := o
	return &orgCopy, nil
}

// GetOrganisation retrieves an organisation by id.
func (r *Repository) GetOrganisation(ctx context.Context, id string) (*model.Organisation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org, ok := r.orgs[id]
	if !ok {
		return nil, fmt.Errorf("organisation %s: %w", id, model.ErrNotFound)
	}

	orgCopy := org
	return &orgCopy, nil
}

// ListOrganisations returns every organisation.
func (r *Repository) ListOrganisations(ctx context.Context) ([]model.Organisation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orgs := make([]model.Organisation, 0, len(r.orgs))
	for _, o := range r.orgs {
		orgs = append(orgs, o)
	}

	sort.Slice(orgs, func(i, j int) bool { return orgs[i].Name < orgs[j].Name })

	return orgs, nil
}

// UpdateOrganisationPlan changes the billing plan of an organisation.
func (r *Repository) UpdateOrganisationPlan(ctx context.Context, id string, plan model.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	org, ok := r.orgs[id]
	if !ok {
		return fmt.Errorf("organisation %s: %w", id, model.ErrNotFound)
	}

	org.Plan = plan
	r.orgs[id] = org

	r.logger.Debugf("Updated organisation plan: %s -> %s", id, plan)

	return nil
}

// CreateUser creates a new user.
func (r *Repository) CreateUser(ctx context.Context, u model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		u.ID = ulid.Make().String()
	}

	if _, ok := r.users[u.ID]; ok {
		return nil, fmt.Errorf("user with id %s: %w", u.ID, model.ErrAlreadyExists)
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, fmt.Errorf("user with email %s: %w", u.Email, model.ErrAlreadyExists)
		}
	}

	u.CreatedAt = now()
	r.users[u.ID] = u

	r.logger.Debugf("Created user in repository: %s", u.ID)

	userCopy := u
	return &userCopy, nil
}

// GetUser retrieves a user by id.
func (r *Repository) GetUser(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, model.ErrNotFound)
	}

	userCopy := user
	return &userCopy, nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			userCopy := u
			return &userCopy, nil
		}
	}

	return nil, fmt.Errorf("user with email %s: %w", email, model.ErrNotFound)
}

// CreateSession stores a new session.
func (r *Repository) CreateSession(ctx context.Context, s model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.Token]; ok {
		return fmt.Errorf("session: %w", model.ErrAlreadyExists)
	}

	r.sessions[s.Token] = s
	return nil
}

// GetSession retrieves a session by token.
func (r *Repository) GetSession(ctx context.Context, token string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return nil, fmt.Errorf("session: %w", model.ErrNotFound)
	}

	sessionCopy := session
	return &sessionCopy, nil
}

// DeleteSession deletes a session by token.
func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[token]; !ok {
		return fmt.Errorf("session: %w", model.ErrNotFound)
	}

	delete(r.sessions, token)
	return nil
}
