package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Greg-CLD/tcof/internal/model"
)

// Login opens a session with the credentials and returns it together with
// the authenticated user. The client does not store the token, callers
// configure it on a new client.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, *model.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Token     string     `json:"token"`
		ExpiresAt time.Time  `json:"expiresAt"`
		User      model.User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, c.baseURL+"/api/auth/login", body, &resp)
	if err != nil {
		return nil, nil, err
	}

	session := model.Session{
		Token:     resp.Token,
		UserID:    resp.User.ID,
		ExpiresAt: resp.ExpiresAt,
	}
	user := resp.User

	return &session, &user, nil
}

// CreateProject creates a project in the caller's organisation.
func (c *Client) CreateProject(ctx context.Context, name, description string) (*model.Project, error) {
	body := struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}{Name: name, Description: description}

	var resp struct {
		Project model.Project `json:"project"`
	}
	err := c.do(ctx, http.MethodPost, c.baseURL+"/api/projects", body, &resp)
	if err != nil {
		return nil, err
	}

	project := resp.Project
	return &project, nil
}

// ListProjects returns the projects of the caller's organisation.
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := c.do(ctx, http.MethodGet, c.baseURL+"/api/projects", nil, &projects)
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Summary returns the dashboard aggregate of a project.
func (c *Client) Summary(ctx context.Context, projectID string) (*model.ProjectSummary, error) {
	var sum model.ProjectSummary
	u := fmt.Sprintf("%s/api/projects/%s/summary", c.baseURL, url.PathEscape(projectID))
	err := c.do(ctx, http.MethodGet, u, nil, &sum)
	if err != nil {
		return nil, err
	}

	return &sum, nil
}

// ExportCSV streams the checklist CSV of a project into w. The server
// enforces the plan gate, free organisations get ErrPlanLimit.
func (c *Client) ExportCSV(ctx context.Context, projectID string, w io.Writer) error {
	u := fmt.Sprintf("%s/api/projects/%s/export", c.baseURL, url.PathEscape(projectID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("could not read export: %w", err)
	}

	return nil
}
