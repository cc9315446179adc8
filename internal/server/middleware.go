package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
)

const userContextKey = "tcof-user"

func (s *Server) logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.WithValues(log.Kv{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debugf("Request handled")
	}
}

// authMiddleware resolves the bearer token into a user and stores it on the
// request context.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		user, err := s.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			s.abortWithError(c, err)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// adminMiddleware requires the authenticated user to be an admin.
func (s *Server) adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}

		c.Next()
	}
}

func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}

	user, ok := v.(*model.User)
	if !ok {
		return nil
	}

	return user
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}

	return ""
}

// projectForUser loads a project and checks it belongs to the user's
// organisation. Foreign projects surface as not found so ids don't leak
// across tenants.
func (s *Server) projectForUser(c *gin.Context, projectID string) (*model.Project, error) {
	user := currentUser(c)
	if user == nil {
		return nil, fmt.Errorf("no authenticated user: %w", model.ErrUnauthenticated)
	}

	project, err := s.repo.GetProject(c.Request.Context(), projectID)
	if err != nil {
		return nil, err
	}

	if project.OrgID != user.OrgID {
		return nil, fmt.Errorf("unknown project %q: %w", projectID, model.ErrNotFound)
	}

	return project, nil
}
