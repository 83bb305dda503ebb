package handlers

import (
	"net/http"

	"reelkit-api/models"
	"reelkit-api/repository"
	"reelkit-api/types"

	"github.com/gin-gonic/gin"
)

const listLimit = 50

type ProjectsHandler struct {
	projects *repository.ProjectsRepository
}

func NewProjectsHandler(projects *repository.ProjectsRepository) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

func validAspectRatio(ar string) bool {
	switch ar {
	case "16:9", "9:16", "1:1":
		return true
	}
	return false
}

func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	title := c.PostForm("title")
	userID := c.PostForm("user_id")
	aspectRatio := c.DefaultPostForm("aspect_ratio", "16:9")

	if title == "" || userID == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "title and user_id are required"))
		return
	}
	if !validAspectRatio(aspectRatio) {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "invalid aspect_ratio"))
		return
	}

	projectID, err := h.projects.CreateProject(c.Request.Context(), models.Project{
		UserID:      userID,
		Title:       title,
		AspectRatio: aspectRatio,
		Timeline:    models.NewTimeline(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project_id": projectID})
}

func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "user_id is required"))
		return
	}
	docs, err := h.projects.ListByUser(c.Request.Context(), userID, listLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": itemsOrEmpty(docs)})
}

// itemsOrEmpty keeps list responses as JSON arrays even when a query matched
// nothing.
func itemsOrEmpty(docs []repository.Document) []repository.Document {
	if docs == nil {
		return []repository.Document{}
	}
	return docs
}
