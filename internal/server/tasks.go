package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Greg-CLD/tcof/internal/app/taskimport"
	"github.com/Greg-CLD/tcof/internal/model"
)

// maxImportSize caps the CSV body size for task imports.
const maxImportSize = 1 << 20

func (s *Server) handleListTasks(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	tasks, err := s.tasks.ListTasks(c.Request.Context(), project.ID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var task model.ProjectTask
	if err := c.ShouldBindJSON(&task); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid task payload: %w", model.ErrNotValid))
		return
	}

	// The repository assigns the id, the path decides the project.
	task.ID = ""
	task.ProjectID = project.ID

	created, err := s.tasks.CreateTask(c.Request.Context(), task)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": created})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var update model.TaskUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		s.abortWithError(c, fmt.Errorf("invalid task update payload: %w", model.ErrNotValid))
		return
	}

	if update.IsZero() {
		s.abortWithError(c, fmt.Errorf("update has no fields: %w", model.ErrNotValid))
		return
	}

	updated, err := s.tasks.UpdateTask(c.Request.Context(), project.ID, c.Param("taskID"), update)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": updated})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	if err := s.tasks.DeleteTask(c.Request.Context(), project.ID, c.Param("taskID")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleImportTasks(c *gin.Context) {
	project, err := s.projectForUser(c, c.Param("projectID"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var origin model.Origin
	if v := c.Query("origin"); v != "" {
		parsed, err := model.ParseOrigin(v)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		origin = parsed
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)
	result, err := s.importer.Run(c.Request.Context(), taskimport.Request{
		ProjectID: project.ID,
		Origin:    origin,
		Reader:    body,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
