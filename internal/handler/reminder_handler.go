package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/service/medicine"
)

const userIDHeader = "X-User-ID"

type ReminderHandler struct {
	service *medicine.Service
	store   domain.ReminderStore
}

func NewReminderHandler(service *medicine.Service, store domain.ReminderStore) *ReminderHandler {
	return &ReminderHandler{
		service: service,
		store:   store,
	}
}

type specificTimePayload struct {
	Time         string `json:"time" binding:"required"`
	Frequency    int    `json:"frequency" binding:"required"`
	OffsetBefore int    `json:"offset_before"`
	OffsetAfter1 int    `json:"offset_after_1"`
	OffsetAfter2 int    `json:"offset_after_2"`
}

type intervalPayload struct {
	Hours     int    `json:"hours" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type reminderPayload struct {
	Name     string               `json:"name" binding:"required"`
	Kind     string               `json:"kind" binding:"required"`
	Specific *specificTimePayload `json:"specific_time,omitempty"`
	Interval *intervalPayload     `json:"interval,omitempty"`
	Enabled  *bool                `json:"enabled,omitempty"`
	Notes    string               `json:"notes,omitempty"`
}

type reminderResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Kind        string               `json:"kind"`
	Specific    *specificTimePayload `json:"specific_time,omitempty"`
	Interval    *intervalPayload     `json:"interval,omitempty"`
	Enabled     bool                 `json:"enabled"`
	NextFireAt  *time.Time           `json:"next_fire_at,omitempty"`
	LastFiredAt *time.Time           `json:"last_fired_at,omitempty"`
	Notes       string               `json:"notes,omitempty"`
}

func (h *ReminderHandler) HandleCreate(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var payload reminderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder := payload.toDomain(userID)
	if err := h.service.Create(c.Request.Context(), reminder); err != nil {
		respondReminderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(reminder))
}

func (h *ReminderHandler) HandleGet(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	reminder, err := h.store.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondReminderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(reminder))
}

func (h *ReminderHandler) HandleList(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	activeOnly := c.Query("active") == "true"
	reminders, err := h.store.ListByUser(c.Request.Context(), userID, activeOnly)
	if err != nil {
		respondReminderError(c, err)
		return
	}

	out := make([]reminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, toResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"reminders": out})
}

func (h *ReminderHandler) HandleUpdate(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var payload reminderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder := payload.toDomain(userID)
	reminder.ID = c.Param("id")
	if err := h.service.Update(c.Request.Context(), reminder); err != nil {
		respondReminderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(reminder))
}

func (h *ReminderHandler) HandleDelete(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondReminderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleNextFire returns the reminder's next fire instant, computing
// and persisting it when the stored value is absent or stale.
func (h *ReminderHandler) HandleNextFire(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	reminder, err := h.store.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondReminderError(c, err)
		return
	}

	next, err := h.service.GetOrCreateNextFireTime(c.Request.Context(), reminder)
	if err != nil {
		respondReminderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           reminder.ID,
		"next_fire_at": next.Format(time.RFC3339),
	})
}

func respondReminderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrReminderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
	case errors.Is(err, domain.ErrInvalidSpec),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidTimeFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (p *reminderPayload) toDomain(userID string) *domain.MedicineReminder {
	reminder := &domain.MedicineReminder{
		UserID:  userID,
		Name:    p.Name,
		Kind:    domain.ReminderKind(p.Kind),
		Enabled: true,
		Notes:   p.Notes,
	}
	if p.Enabled != nil {
		reminder.Enabled = *p.Enabled
	}
	if p.Specific != nil {
		reminder.Specific = &domain.SpecificTime{
			Time:         p.Specific.Time,
			Frequency:    p.Specific.Frequency,
			OffsetBefore: p.Specific.OffsetBefore,
			OffsetAfter1: p.Specific.OffsetAfter1,
			OffsetAfter2: p.Specific.OffsetAfter2,
		}
	}
	if p.Interval != nil {
		start := p.Interval.StartTime
		if start == "" {
			start = domain.DefaultIntervalStart
		}
		end := p.Interval.EndTime
		if end == "" {
			end = domain.DefaultIntervalEnd
		}
		reminder.Interval = &domain.Interval{
			Hours:     p.Interval.Hours,
			StartTime: start,
			EndTime:   end,
		}
	}
	return reminder
}

func toResponse(r *domain.MedicineReminder) reminderResponse {
	resp := reminderResponse{
		ID:          r.ID,
		Name:        r.Name,
		Kind:        r.Kind.String(),
		Enabled:     r.Enabled,
		NextFireAt:  r.NextFireAt,
		LastFiredAt: r.LastFiredAt,
		Notes:       r.Notes,
	}
	if r.Specific != nil {
		resp.Specific = &specificTimePayload{
			Time:         r.Specific.Time,
			Frequency:    r.Specific.Frequency,
			OffsetBefore: r.Specific.OffsetBefore,
			OffsetAfter1: r.Specific.OffsetAfter1,
			OffsetAfter2: r.Specific.OffsetAfter2,
		}
	}
	if r.Interval != nil {
		resp.Interval = &intervalPayload{
			Hours:     r.Interval.Hours,
			StartTime: r.Interval.StartTime,
			EndTime:   r.Interval.EndTime,
		}
	}
	return resp
}
