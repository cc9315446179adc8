package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Greg-CLD/tcof/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid login payload: %w", model.ErrNotValid))
		return
	}

	session, user, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
		"user":      user,
	})
}

type createUserRequest struct {
	OrgID    string `json:"orgId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid user payload: %w", model.ErrNotValid))
		return
	}

	var role model.Role
	if req.Role != "" {
		parsed, err := model.ParseRole(req.Role)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		role = parsed
	}

	// Admins create users in their own organisation unless they name another.
	orgID := req.OrgID
	if orgID == "" {
		orgID = currentUser(c).OrgID
	}

	user, err := s.auth.CreateUser(c.Request.Context(), model.User{
		OrgID: orgID,
		Email: req.Email,
		Name:  req.Name,
		Role:  role,
	}, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}
