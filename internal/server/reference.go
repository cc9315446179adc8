package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/model"
)

func (s *Server) handleGetCatalog(c *gin.Context) {
	factors, err := s.catalog.Factors(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog.EncodeFactors(factors))
}

func (s *Server) handleSaveFactor(c *gin.Context) {
	var dto catalog.FactorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid factor payload: %w", model.ErrNotValid))
		return
	}

	// The path names the factor, the body cannot rename it.
	dto.ID = c.Param("factorID")

	factor, err := dto.Decode()
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.repo.SaveFactor(c.Request.Context(), factor); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog.EncodeFactors([]model.SuccessFactor{factor})[0])
}

func (s *Server) handleDeleteFactor(c *gin.Context) {
	if err := s.repo.DeleteFactor(c.Request.Context(), c.Param("factorID")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type saveHeuristicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleSaveHeuristic(c *gin.Context) {
	var req saveHeuristicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid heuristic payload: %w", model.ErrNotValid))
		return
	}

	heuristic := model.Heuristic{
		ID:          c.Param("heuristicID"),
		Title:       req.Title,
		Description: req.Description,
	}
	if err := heuristic.Validate(); err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.repo.SaveHeuristic(c.Request.Context(), heuristic); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, heuristic)
}

func (s *Server) handleDeleteHeuristic(c *gin.Context) {
	if err := s.repo.DeleteHeuristic(c.Request.Context(), c.Param("heuristicID")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
