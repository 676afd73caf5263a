package rest

import (
	"github.com/dfryer1193/shoebox/gallery/application"
	"github.com/gin-gonic/gin"
)

func NewApi(router *gin.Engine, library *application.LibraryService) {
	h := &Handler{library: library}

	groupsV1 := router.Group("groups/v1")
	{
		groupsV1.POST("/", h.CreateGroup)
		groupsV1.GET("/", h.GetGroups)
		groupsV1.GET("/:groupId", h.GetGroup)
		groupsV1.PATCH("/:groupId", h.RenameGroup)
		groupsV1.DELETE("/:groupId", h.DeleteGroup)
		groupsV1.POST("/:groupId/images", h.UploadImage)
		groupsV1.GET("/:groupId/images", h.GetGroupImages)
	}

	imagesV1 := router.Group("images/v1")
	{
		imagesV1.GET("/:imageId", h.DownloadImage)
		imagesV1.PATCH("/:imageId", h.RenameImage)
		imagesV1.DELETE("/:imageId", h.DeleteImage)
	}
}

// Handler carries the wired service into the route functions
type Handler struct {
	library *application.LibraryService
}
