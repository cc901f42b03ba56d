package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.admins.GetByCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Wrong email and wrong password are indistinguishable.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"admin":   admin,
	})
}

func (h HandlerSet) AdminProfile(c *gin.Context) {
	admin, err := h.admins.GetByEmail(c.Request.Context(), h.cfg.Admin.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

type profileRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
}

func (h HandlerSet) UpdateAdminProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	admin, err := h.admins.GetByEmail(ctx, h.cfg.Admin.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	var newPassword *string
	if req.Password != "" && req.CurrentPassword != "" {
		if admin.Password != req.CurrentPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
			return
		}
		newPassword = &req.Password
	}

	if err := h.admins.UpdateProfile(ctx, h.cfg.Admin.Email, req.Name, req.Email, newPassword); err != nil {
		h.fail(c, err)
		return
	}

	updated, err := h.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"admin":   updated,
	})
}
