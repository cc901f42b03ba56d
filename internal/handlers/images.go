package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mechgenz/backend/internal/service"
)

func (h HandlerSet) ListWebsiteImages(c *gin.Context) {
	images, err := h.registry.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

func (h HandlerSet) ImageCategories(c *gin.Context) {
	categories, err := h.registry.Categories(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h HandlerSet) UploadWebsiteImage(c *gin.Context) {
	_, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	newURL, err := h.registry.Upload(c.Request.Context(), c.Param("id"), header)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image uploaded successfully",
		"new_url": newURL,
	})
}

type imageUpdateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h HandlerSet) UpdateWebsiteImage(c *gin.Context) {
	var req imageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registry.UpdateMetadata(c.Request.Context(), c.Param("id"), req.Name, req.Description); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image updated successfully"})
}

func (h HandlerSet) ResetWebsiteImage(c *gin.Context) {
	defaultURL, err := h.registry.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Image reset to default",
		"default_url": defaultURL,
	})
}

func (h HandlerSet) DeleteWebsiteImage(c *gin.Context) {
	mode := c.DefaultQuery("delete_type", service.DeleteImageOnly)

	result, err := h.registry.Delete(c.Request.Context(), c.Param("id"), mode)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{
		"success": true,
		"message": result.Message,
		"action":  result.Action,
	}
	if result.DefaultURL != "" {
		resp["default_url"] = result.DefaultURL
	}

	c.JSON(http.StatusOK, resp)
}
