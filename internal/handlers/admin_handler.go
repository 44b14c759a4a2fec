package handlers

import (
	"strconv"

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

// AdminHandler serves the authenticated dashboard: list, edit and
// cancel (delete) appointments.
type AdminHandler struct {
	cfg    *config.Config
	list   *ucAppointment.ListAppointments
	update *ucAppointment.UpdateAppointment
	del    *ucAppointment.DeleteAppointment
}

func NewAdminHandler(
	cfg *config.Config,
	list *ucAppointment.ListAppointments,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
) *AdminHandler {
	return &AdminHandler{
		cfg:    cfg,
		list:   list,
		update: update,
		del:    del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// UpdateAppointmentRequest is a partial edit; absent fields keep their
// stored values.
type UpdateAppointmentRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Service *string `json:"service"`

	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// ======================================================
// LIST
// ======================================================

func (h *AdminHandler) List(c *gin.Context) {
	apps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list appointments")
		httperr.Internal(c, "internal_error", "Failed to get appointments.")
		return
	}

	httpresp.OK(c, apps)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AdminHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
	}

	if req.StartTime != nil {
		start, err := parseTimestamp(h.cfg, *req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "startTime must be an ISO-8601 timestamp.")
			return
		}
		in.StartTime = &start
	}

	if req.EndTime != nil {
		end, err := parseTimestamp(h.cfg, *req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "endTime must be an ISO-8601 timestamp.")
			return
		}
		in.EndTime = &end
	}

	ap, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		mapAdminError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.del.Execute(c.Request.Context(), id); err != nil {
		mapAdminError(c, err)
		return
	}

	httpresp.Success(c)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func mapAdminError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "invalid_service"):
		httperr.BadRequest(c, "invalid_service", "Unknown service.")
	case httperr.IsBusiness(err, "invalid_time_range"):
		httperr.BadRequest(c, "invalid_time_range", "endTime must be after startTime.")
	case httperr.IsBusiness(err, "slot_unavailable"):
		httperr.BadRequest(c, "slot_unavailable", "Time slot is not available.")
	default:
		log.Error().Err(err).Msg("admin appointment operation failed")
		httperr.Internal(c, "internal_error", "Failed to update appointment.")
	}
}
