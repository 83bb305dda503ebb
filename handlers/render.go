package handlers

import (
	"net/http"

	"reelkit-api/models"
	"reelkit-api/pkg/events"
	"reelkit-api/pkg/notify"
	"reelkit-api/repository"
	"reelkit-api/types"

	"github.com/gin-gonic/gin"
)

type RenderHandler struct {
	jobs     *repository.JobsRepository
	notifier notify.Notifier
}

func NewRenderHandler(jobs *repository.JobsRepository) *RenderHandler {
	return &RenderHandler{jobs: jobs}
}

// WithNotifier attaches a preview notifier so queued renders show up live in
// the project's editing session.
func (h *RenderHandler) WithNotifier(n notify.Notifier) *RenderHandler {
	h.notifier = n
	return h
}

func validResolution(res string) bool {
	switch res {
	case "720p", "1080p", "4K":
		return true
	}
	return false
}

// QueueRender records a queued render job. No renderer exists; the job is a
// stand-in that stays queued forever.
func (h *RenderHandler) QueueRender(c *gin.Context) {
	projectID := c.Query("project_id")
	userID := c.Query("user_id")
	resolution := c.DefaultQuery("resolution", "1080p")
	aspectRatio := c.DefaultQuery("aspect_ratio", "16:9")

	if projectID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "project_id and user_id are required"))
		return
	}
	if !validResolution(resolution) || !validAspectRatio(aspectRatio) {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "invalid resolution or aspect_ratio"))
		return
	}

	jobID, err := h.jobs.CreateJob(c.Request.Context(), models.RenderJob{
		UserID:      userID,
		ProjectID:   projectID,
		Status:      models.JobStatusQueued,
		Resolution:  resolution,
		AspectRatio: aspectRatio,
		Logs:        []string{},
		Params:      map[string]interface{}{},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	if h.notifier != nil {
		h.notifier.NotifyProject(projectID, events.RenderQueued{
			Type:      "render.queued",
			JobID:     jobID,
			ProjectID: projectID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"job_id": jobID})
}

func (h *RenderHandler) ListJobs(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "user_id is required"))
		return
	}
	docs, err := h.jobs.ListByUser(c.Request.Context(), userID, listLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": itemsOrEmpty(docs)})
}
