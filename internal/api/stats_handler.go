package api

import (
	"arena45/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
	errs         *ErrorWriter
}

func NewStatsHandler(statsService service.StatsService, errs *ErrorWriter) *StatsHandler {
	return &StatsHandler{statsService: statsService, errs: errs}
}

// Overview godoc
// @Summary Dashboard totals
// @Tags Stats
// @Produce json
// @Success 200 {object} Response
// @Failure 500 {object} Response "Failed to fetch statistics"
// @Router /api/stats [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch statistics")
		return
	}
	respondOK(c, "", stats)
}

// BookingStats godoc
// @Summary Booking activity over a trailing window
// @Tags Stats
// @Produce json
// @Param period query string false "week, month or year" default(month)
// @Success 200 {object} Response
// @Failure 500 {object} Response "Failed to fetch booking statistics"
// @Router /api/stats/bookings [get]
func (h *StatsHandler) BookingStats(c *gin.Context) {
	stats, err := h.statsService.Bookings(c.Request.Context(), c.Query("period"))
	if err != nil {
		h.errs.Write(c, err, "Failed to fetch booking statistics")
		return
	}
	respondOK(c, "", stats)
}
