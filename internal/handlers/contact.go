package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"mechgenz/backend/internal/mail"
	"mechgenz/backend/internal/service"
)

func (h HandlerSet) SubmitContact(c *gin.Context) {
	name := c.PostForm("name")
	phone := c.PostForm("phone")
	email := c.PostForm("email")
	message := c.PostForm("message")
	if name == "" || phone == "" || email == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone, email and message are required"})
		return
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["files"]
	}

	result, err := h.contact.Submit(c.Request.Context(), service.ContactInput{
		Name:      name,
		Phone:     phone,
		Email:     email,
		Message:   message,
		Files:     files,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("contact submission failed")
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Contact form submitted successfully",
		"submission_id":  result.SubmissionID,
		"files_uploaded": result.FilesUploaded,
	})
}

type replyRequest struct {
	ToEmail         string `json:"to_email" binding:"required,email"`
	ToName          string `json:"to_name" binding:"required"`
	ReplyMessage    string `json:"reply_message" binding:"required"`
	OriginalMessage string `json:"original_message"`
}

func (h HandlerSet) SendReply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emailID, err := h.mailer.SendReply(c.Request.Context(), mail.ReplyInput{
		ToEmail:         req.ToEmail,
		ToName:          req.ToName,
		ReplyMessage:    req.ReplyMessage,
		OriginalMessage: req.OriginalMessage,
	})
	if err != nil {
		h.log.Error().Err(err).Str("to", req.ToEmail).Msg("reply send failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Reply sent successfully",
		"email_id": emailID,
	})
}
