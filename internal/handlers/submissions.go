package handlers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mechgenz/backend/internal/models"
)

func (h HandlerSet) ListSubmissions(c *gin.Context) {
	limit := int64(50)
	skip := int64(0)

	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.ParseInt(c.Query("skip"), 10, 64); err == nil && v >= 0 {
		skip = v
	}

	submissions, err := h.submissions.List(c.Request.Context(), limit, skip)
	if err != nil {
		h.fail(c, err)
		return
	}

	total, err := h.submissions.Count(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	if submissions == nil {
		submissions = []models.Submission{}
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       total,
		"limit":       limit,
		"skip":        skip,
	})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h HandlerSet) UpdateSubmissionStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.submissions.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, time.Now().UTC()); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated successfully"})
}

func (h HandlerSet) DeleteSubmission(c *gin.Context) {
	id := c.Param("id")

	submission, err := h.submissions.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	for _, file := range submission.UploadedFiles {
		if err := h.disk.RemoveAttachment(file.SavedName); err != nil {
			h.log.Warn().Err(err).Str("file", file.SavedName).Msg("could not delete attachment")
		}
	}

	if err := h.submissions.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Submission deleted successfully"})
}

func (h HandlerSet) DownloadSubmissionFile(c *gin.Context) {
	filename := c.Param("filename")
	path := h.disk.AttachmentPath(filename)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.FileAttachment(path, filename)
}

func (h HandlerSet) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.submissions.Count(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	breakdown, err := h.submissions.StatusBreakdown(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	daily, err := h.submissions.DailyCounts(ctx, time.Now().UTC().AddDate(0, 0, -30))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_submissions": total,
			"status_breakdown":  breakdown,
			"daily_submissions": daily,
		},
	})
}
