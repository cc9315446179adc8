package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Greg-CLD/tcof/internal/model"
)

type createOrgRequest struct {
	Name string `json:"name"`
	Plan string `json:"plan"`
}

func (s *Server) handleCreateOrg(c *gin.Context) {
	var req createOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid organisation payload: %w", model.ErrNotValid))
		return
	}

	org := model.Organisation{Name: req.Name}
	if req.Plan != "" {
		plan, err := model.ParsePlan(req.Plan)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		org.Plan = plan
	}

	org.Normalize()
	if err := org.Validate(); err != nil {
		s.abortWithError(c, err)
		return
	}

	created, err := s.repo.CreateOrganisation(c.Request.Context(), org)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"organisation": created})
}

func (s *Server) handleListOrgs(c *gin.Context) {
	orgs, err := s.repo.ListOrganisations(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

func (s *Server) handleGetOrg(c *gin.Context) {
	org, err := s.repo.GetOrganisation(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

type updatePlanRequest struct {
	Plan string `json:"plan"`
}

func (s *Server) handleUpdateOrgPlan(c *gin.Context) {
	var req updatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid plan payload: %w", model.ErrNotValid))
		return
	}

	plan, err := model.ParsePlan(req.Plan)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	orgID := c.Param("orgID")
	if err := s.repo.UpdateOrganisationPlan(c.Request.Context(), orgID, plan); err != nil {
		s.abortWithError(c, err)
		return
	}

	org, err := s.repo.GetOrganisation(c.Request.Context(), orgID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}
