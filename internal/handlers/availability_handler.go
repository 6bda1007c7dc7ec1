package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	busyDays  *ucAvailability.GetBusyDays
	freeSlots *ucAvailability.GetFreeSlots
	loc       *time.Location
}

func NewAvailabilityHandler(
	busyDays *ucAvailability.GetBusyDays,
	freeSlots *ucAvailability.GetFreeSlots,
	loc *time.Location,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		busyDays:  busyDays,
		freeSlots: freeSlots,
		loc:       loc,
	}
}

// ======================================================
// BUSY DAYS
// ======================================================

func (h *AvailabilityHandler) BusyDays(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || year < 1 || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "year and month are required (month 1-12).")
		return
	}

	days, err := h.busyDays.Execute(c.Request.Context(), year, time.Month(month))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"busy": days})
}

// ======================================================
// FREE SLOTS
// ======================================================

func (h *AvailabilityHandler) FreeSlots(c *gin.Context) {
	date, err := timezone.ParseDate(c.Query("date"), h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	times, err := h.freeSlots.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"times": times})
}
