package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Greg-CLD/tcof/internal/model"
)

// abortWithError maps domain errors to HTTP status codes and writes the
// common error envelope.
func (s *Server) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, model.ErrNotValid):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, model.ErrPlanLimit):
		status = http.StatusPaymentRequired
	}

	if status == http.StatusInternalServerError {
		s.logger.Errorf("request failed: %s", err)
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
