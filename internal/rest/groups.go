package rest

import (
	"net/http"
	"time"

	"github.com/dfryer1193/shoebox/api"
	"github.com/dfryer1193/shoebox/gallery/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateGroup(c *gin.Context) {
	var req api.GroupProto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name is required"})
		return
	}

	if !domain.ValidName(req.Name) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name cannot be blank"})
		return
	}

	id, err := h.library.CreateGroup(c.Request.Context(), req.Name)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.CreatedResponse{ID: id})
}

func (h *Handler) GetGroups(c *gin.Context) {
	groups, err := h.library.GetAllGroups(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}

	out := make([]api.Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, toApiGroup(g))
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetGroup(c *gin.Context) {
	id, ok := pathID(c, "groupId")
	if !ok {
		return
	}

	group, err := h.library.GetGroup(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	if group == nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "group not found"})
		return
	}

	c.JSON(http.StatusOK, toApiGroup(group))
}

func (h *Handler) RenameGroup(c *gin.Context) {
	id, ok := pathID(c, "groupId")
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

	if err := h.library.RenameGroup(c.Request.Context(), id, req.Name); err != nil {
		writeStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteGroup deletes the group and all of its images
func (h *Handler) DeleteGroup(c *gin.Context) {
	id, ok := pathID(c, "groupId")
	if !ok {
		return
	}

	if err := h.library.DeleteGroupCascade(c.Request.Context(), id); err != nil {
		writeStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toApiGroup(g *domain.Group) api.Group {
	return api.Group{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
		UpdatedAt: g.UpdatedAt.Format(time.RFC3339),
	}
}
