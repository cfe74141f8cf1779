package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

type DeviceHandler struct {
	devices domain.DeviceStore
}

func NewDeviceHandler(devices domain.DeviceStore) *DeviceHandler {
	return &DeviceHandler{devices: devices}
}

type devicePayload struct {
	DeviceID string `json:"device_id" binding:"required"`
	FCMToken string `json:"fcm_token" binding:"required"`
	Platform string `json:"platform" binding:"required"`
	Timezone string `json:"timezone"`
	Language string `json:"language"`
	Country  string `json:"country" binding:"required,len=3"`
}

// HandleRegister registers or refreshes a device. Calling it again
// with the same device_id replaces the stored token and locale.
func (h *DeviceHandler) HandleRegister(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var payload devicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device := &domain.Device{
		DeviceID: payload.DeviceID,
		UserID:   userID,
		FCMToken: payload.FCMToken,
		Platform: payload.Platform,
		Timezone: payload.Timezone,
		Language: payload.Language,
		Country:  payload.Country,
		Active:   true,
	}
	if err := h.devices.Upsert(c.Request.Context(), device); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": device.ID})
}
