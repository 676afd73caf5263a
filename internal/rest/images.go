package rest

import (
	"io"
	"net/http"
	"time"

	"github.com/dfryer1193/shoebox/api"
	"github.com/dfryer1193/shoebox/gallery/domain"
	"github.com/gin-gonic/gin"
)

// Uploads beyond this are rejected before buffering the payload
const maxImageBytes = 32 << 20

func (h *Handler) UploadImage(c *gin.Context) {
	groupID, ok := pathID(c, "groupId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "file is required"})
		return
	}

	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: "file too large"})
		return
	}

	// An explicit name field wins over the uploaded filename
	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}
	if !domain.ValidName(name) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name cannot be blank"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "could not read upload"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "could not read upload"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id, err := h.library.AddImage(c.Request.Context(), groupID, name, content, contentType)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.CreatedResponse{ID: id})
}

func (h *Handler) GetGroupImages(c *gin.Context) {
	groupID, ok := pathID(c, "groupId")
	if !ok {
		return
	}

	images, err := h.library.GetImagesByGroup(c.Request.Context(), groupID)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	out := make([]api.ImageMeta, 0, len(images))
	for _, img := range images {
		out = append(out, api.ImageMeta{
			ID:          img.ID,
			GroupID:     img.GroupID,
			Name:        img.Name,
			ContentType: img.ContentType,
			Size:        len(img.Content),
			CreatedAt:   img.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, out)
}

// DownloadImage serves the stored payload with its original content type
func (h *Handler) DownloadImage(c *gin.Context) {
	id, ok := pathID(c, "imageId")
	if !ok {
		return
	}

	img, err := h.library.GetImage(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	if img == nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "image not found"})
		return
	}

	c.Data(http.StatusOK, img.ContentType, img.Content)
}

func (h *Handler) RenameImage(c *gin.Context) {
	id, ok := pathID(c, "imageId")
	if !ok {
		return
	}

	var req api.RenameProto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name is required"})
		return
	}

	if !domain.ValidName(req.Name) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name cannot be blank"})
		return
	}

	if err := h.library.RenameImage(c.Request.Context(), id, req.Name); err != nil {
		writeStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteImage(c *gin.Context) {
	id, ok := pathID(c, "imageId")
	if !ok {
		return
	}

	if err := h.library.DeleteImage(c.Request.Context(), id); err != nil {
		writeStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
