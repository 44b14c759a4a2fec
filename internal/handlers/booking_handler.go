package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	"github.com/Lis-Kacper/BeautySaloon/internal/httperr"
	"github.com/Lis-Kacper/BeautySaloon/internal/httpresp"
	ucAppointment "github.com/Lis-Kacper/BeautySaloon/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler serves the public endpoints: free slots for a day and
// walk-in appointment creation.
type BookingHandler struct {
	cfg          *config.Config
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
}

func NewBookingHandler(
	cfg *config.Config,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
) *BookingHandler {
	return &BookingHandler{
		cfg:          cfg,
		availability: availability,
		create:       create,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`

	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	day, err := parseDate(h.cfg, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), day)
	if err != nil {
		log.Error().Err(err).Str("date", dateStr).Msg("availability failed")
		httperr.Internal(c, "internal_error", "Failed to get availability.")
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.StartTime == "" || req.EndTime == "" {
		httperr.BadRequest(c, "missing_fields", "All fields are required.")
		return
	}

	start, err := parseTimestamp(h.cfg, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "startTime must be an ISO-8601 timestamp.")
		return
	}

	end, err := parseTimestamp(h.cfg, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "endTime must be an ISO-8601 timestamp.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   req.Service,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "missing_fields", "All fields are required.")
	case httperr.IsBusiness(err, "invalid_service"):
		httperr.BadRequest(c, "invalid_service", "Unknown service.")
	case httperr.IsBusiness(err, "invalid_time_range"):
		httperr.BadRequest(c, "invalid_time_range", "endTime must be after startTime.")
	case httperr.IsBusiness(err, "slot_unavailable"):
		httperr.BadRequest(c, "slot_unavailable", "Time slot is not available.")
	default:
		log.Error().Err(err).Msg("failed to create appointment")
		httperr.Internal(c, "internal_error", "Failed to create appointment.")
	}
}
