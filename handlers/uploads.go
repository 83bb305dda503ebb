package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"reelkit-api/initializers"
	"reelkit-api/models"
	"reelkit-api/repository"
	"reelkit-api/storage"
	"reelkit-api/types"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

type UploadsHandler struct {
	media *repository.MediaRepository
	blobs storage.BlobStore
}

func NewUploadsHandler(media *repository.MediaRepository, blobs storage.BlobStore) *UploadsHandler {
	return &UploadsHandler{media: media, blobs: blobs}
}

// UploadFile accepts a multipart upload, sniffs the real content type from
// the bytes, stores the blob, and records a media asset document.
func (h *UploadsHandler) UploadFile(c *gin.Context) {
	userID := c.PostForm("user_id")
	kind := c.PostForm("kind")
	if userID == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "user_id is required"))
		return
	}
	if !models.ValidAssetKind(kind) {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "kind must be video, audio, or image"))
		return
	}

	// Limit request body size before reading multipart data
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, initializers.Conf.MaxSize)

	file, err := c.FormFile("file")
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "request body too large") {
			c.JSON(http.StatusRequestEntityTooLarge, types.NewErrorResponse(types.ErrorCodeValidation, "file size exceeds the limit"))
			return
		}
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "file is required"))
		return
	}

	// Detect real MIME type from content, not from the client header
	sniff, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "cannot open uploaded file"))
		return
	}
	mt, detectErr := mimetype.DetectReader(sniff)
	_ = sniff.Close()
	if detectErr != nil || mt == nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "failed to detect file type"))
		return
	}
	contentType := strings.Split(mt.String(), ";")[0]

	if err := initializers.CheckFileAllowed(file.Size, contentType); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "cannot open uploaded file"))
		return
	}
	defer src.Close()

	url, err := h.blobs.Store(c.Request.Context(), src, file.Size, file.Filename, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	assetID, err := h.media.CreateAsset(c.Request.Context(), models.MediaAsset{
		UserID:   userID,
		Kind:     kind,
		Filename: file.Filename,
		URL:      url,
		Meta:     map[string]interface{}{"content_type": contentType, "size": file.Size},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset_id": assetID, "url": url})
}

// GetUpload streams a stored blob back verbatim. Content is served as an
// opaque octet stream regardless of what was uploaded.
func (h *UploadsHandler) GetUpload(c *gin.Context) {
	name := c.Param("name")
	rc, err := h.blobs.Retrieve(c.Request.Context(), name)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	defer rc.Close()

	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
