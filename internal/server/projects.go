package server

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Greg-CLD/tcof/internal/app/summary"
	"github.com/Greg-CLD/tcof/internal/checklist"
	"github.com/Greg-CLD/tcof/internal/export"
	"github.com/Greg-CLD/tcof/internal/model"
)

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid project payload: %w", model.ErrNotValid))
		return
	}

	user := currentUser(c)
	org, err := s.repo.GetOrganisation(c.Request.Context(), user.OrgID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	count, err := s.repo.CountProjects(c.Request.Context(), user.OrgID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	if !org.CanAddProject(count) {
		s.abortWithError(c, fmt.Errorf("free plan allows %d projects: %w", model.FreePlanMaxProjects, model.ErrPlanLimit))
		return
	}

	project := model.Project{
		OrgID:       user.OrgID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := project.Validate(); err != nil {
		s.abortWithError(c, err)
		return
	}

	created, err := s.repo.CreateProject(c.Request.Context(), project)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": created})
}

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.repo.ListProjects(c.Request.Context(), currentUser(c).OrgID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (s *Server) handleGetProject(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.repo.DeleteProjectTasks(c.Request.Context(), project.ID); err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.repo.DeleteProject(c.Request.Context(), project.ID); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleChecklist(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	cl, err := s.reconcile(c, project.ID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cl)
}

// reconcile runs a one-shot reconciliation for a project against the shared
// repository and catalog.
func (s *Server) reconcile(c *gin.Context, projectID string) (model.Checklist, error) {
	engine, err := checklist.NewEngine(checklist.EngineConfig{
		Tasks:   s.tasks,
		Catalog: s.catalog,
		Project: model.ProjectContext{ProjectID: projectID},
		Logger:  s.logger,
	})
	if err != nil {
		return model.EmptyChecklist(), err
	}

	return engine.Reconcile(c.Request.Context())
}

func (s *Server) handleSummary(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	sum, err := s.summary.Run(c.Request.Context(), summary.Request{ProjectID: project.ID})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sum)
}

func (s *Server) handleListRatings(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	ratings, err := s.repo.ListProjectRatings(c.Request.Context(), project.ID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

type upsertRatingRequest struct {
	Score int    `json:"score"`
	Note  string `json:"note"`
}

func (s *Server) handleUpsertRating(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var req upsertRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid rating payload: %w", model.ErrNotValid))
		return
	}

	rating := model.FactorRating{
		ProjectID: project.ID,
		FactorID:  c.Param("factorID"),
		Score:     req.Score,
		Note:      req.Note,
		UpdatedAt: time.Now().UTC(),
	}
	if err := rating.Validate(); err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.repo.UpsertRating(c.Request.Context(), rating); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (s *Server) handleExport(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	org, err := s.repo.GetOrganisation(c.Request.Context(), project.OrgID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	if !org.CanExport() {
		s.abortWithError(c, fmt.Errorf("CSV export needs the pro plan: %w", model.ErrPlanLimit))
		return
	}

	cl, err := s.reconcile(c, project.ID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.CSV(&buf, cl); err != nil {
		s.abortWithError(c, err)
		return
	}

	filename := export.Filename(project.Name, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
