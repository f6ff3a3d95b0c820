package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"buslink/internal/domain"
	"buslink/internal/domain/models"
	"buslink/internal/http/middleware"
	"buslink/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications
// Admins may read any recipient's feed via query params; everyone else
// gets their own.
func GetNotifications(c *gin.Context) {
	recipientType := middleware.GetUserRole(c)
	recipientID := middleware.GetUserID(c)

	if recipientType == models.RoleAdmin {
		if t := strings.TrimSpace(c.Query("recipientType")); t != "" {
			recipientType = t
		}
		if id, err := strconv.ParseInt(strings.TrimSpace(c.Query("recipientId")), 10, 64); err == nil && id > 0 {
			recipientID = id
		}
	}
	if !models.ValidRecipientType(recipientType) {
		RespondDomainError(c, domain.ValidationError{Field: "recipientType", Msg: "unknown recipient type"})
		return
	}

	list, err := repositories.NotificationRepository{}.ListByRecipient(recipientType, recipientID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

type notificationPayload struct {
	RecipientType string `json:"recipientType" binding:"required"`
	RecipientID   int64  `json:"recipientId" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body"`
}

// POST /api/notifications
func CreateNotification(c *gin.Context) {
	var req notificationPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if !models.ValidRecipientType(req.RecipientType) {
		RespondDomainError(c, domain.ValidationError{Field: "recipientType", Msg: "unknown recipient type"})
		return
	}

	n, err := repositories.NotificationRepository{}.Create(models.Notification{
		RecipientType: req.RecipientType,
		RecipientID:   req.RecipientID,
		Title:         req.Title,
		Body:          req.Body,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// PUT /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.NotificationRepository{}).MarkRead(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
}
