package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/4imn/Sadeqi-backend/internal/service/medicine"
	"github.com/4imn/Sadeqi-backend/internal/service/prayer"
)

// SchedulerHandler exposes the scheduler's jobs for manual runs:
// backfilling after an incident, or verifying a deploy without
// waiting for the next cron tick.
type SchedulerHandler struct {
	recomputer     *prayer.Recomputer
	prayerPoller   *prayer.Poller
	medicinePoller *medicine.Poller
}

func NewSchedulerHandler(
	recomputer *prayer.Recomputer,
	prayerPoller *prayer.Poller,
	medicinePoller *medicine.Poller,
) *SchedulerHandler {
	return &SchedulerHandler{
		recomputer:     recomputer,
		prayerPoller:   prayerPoller,
		medicinePoller: medicinePoller,
	}
}

func (h *SchedulerHandler) HandleRecompute(c *gin.Context) {
	result, err := h.recomputer.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	failures := make([]gin.H, 0, len(result.Failures))
	for _, f := range result.Failures {
		failures = append(failures, gin.H{"scope": f.Scope, "error": f.Err.Error()})
	}
	c.JSON(http.StatusOK, gin.H{
		"day":       result.Day,
		"total":     result.Total,
		"succeeded": result.Succeeded,
		"failures":  failures,
	})
}

// HandlePoll runs one tick of both pollers. An optional RFC3339 `at`
// query overrides the tick instant so a window can be replayed.
func (h *SchedulerHandler) HandlePoll(c *gin.Context) {
	now := time.Now()
	if atStr := c.Query("at"); atStr != "" {
		parsed, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at time format, expected RFC3339"})
			return
		}
		now = parsed
	}

	ctx := c.Request.Context()

	prayerFired, err := h.prayerPoller.Poll(ctx, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	medicineFired, err := h.medicinePoller.Poll(ctx, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prayer_fired":   len(prayerFired),
		"medicine_fired": len(medicineFired),
	})
}
