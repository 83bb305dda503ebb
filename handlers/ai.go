package handlers

import (
	"net/http"

	"reelkit-api/models"
	"reelkit-api/repository"
	"reelkit-api/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AIHandler serves the simulated AI endpoints. Responses are canned or
// randomly generated; no inference runs anywhere.
type AIHandler struct {
	jobs *repository.JobsRepository
}

func NewAIHandler(jobs *repository.JobsRepository) *AIHandler {
	return &AIHandler{jobs: jobs}
}

// Generate queues a text-to-video job record. The job never leaves "queued".
func (h *AIHandler) Generate(c *gin.Context) {
	var req struct {
		Prompt      string `json:"prompt" binding:"required"`
		Language    string `json:"language"`
		Voice       string `json:"voice"`
		Style       string `json:"style"`
		DurationS   int    `json:"duration_s"`
		AspectRatio string `json:"aspect_ratio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if req.AspectRatio == "" {
		req.AspectRatio = "16:9"
	}

	jobID, err := h.jobs.CreateJob(c.Request.Context(), models.RenderJob{
		UserID:      "system",
		Status:      models.JobStatusQueued,
		Resolution:  "1080p",
		AspectRatio: req.AspectRatio,
		Logs:        []string{},
		Params:      map[string]interface{}{"prompt": req.Prompt, "mode": "text2video"},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job_id": jobID, "message": "Job queued"})
}

// Transcribe returns a canned transcript for any media URL.
func (h *AIHandler) Transcribe(c *gin.Context) {
	var req struct {
		URL      string `json:"url" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"segments": []gin.H{
			{"start_ms": 0, "end_ms": 1500, "text": "Hello everyone"},
			{"start_ms": 1600, "end_ms": 3200, "text": "welcome to the AI editor"},
		},
	})
}

// TTS returns a freshly invented audio URL. Nothing is synthesized.
func (h *AIHandler) TTS(c *gin.Context) {
	var req struct {
		Text     string `json:"text" binding:"required"`
		Voice    string `json:"voice"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": "/tts/" + uuid.NewString() + ".wav"})
}

// EnhanceAudio acknowledges the request and echoes the chosen strength.
func (h *AIHandler) EnhanceAudio(c *gin.Context) {
	var req struct {
		URL      string `json:"url" binding:"required"`
		Strength string `json:"strength"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	switch req.Strength {
	case "":
		req.Strength = "medium"
	case "low", "medium", "high":
	default:
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "strength must be low, medium, or high"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "strength": req.Strength})
}
