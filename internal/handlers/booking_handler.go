package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/dto"
	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
	"github.com/BruksfildServices01/calendar-booking/internal/httpresp"
	"github.com/BruksfildServices01/calendar-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/calendar-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/validators"
)

const msgCalendarUnavailable = "Error contacting the Calendar service"

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	days      *ucBooking.GetBookableDays
	timeslots *ucBooking.GetAvailableTimeslots
	book      *ucBooking.BookAppointment
	log       *zap.Logger
}

func NewBookingHandler(
	days *ucBooking.GetBookableDays,
	timeslots *ucBooking.GetAvailableTimeslots,
	book *ucBooking.BookAppointment,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		days:      days,
		timeslots: timeslots,
		book:      book,
		log:       log,
	}
}

// ======================================================
// GET /days?year=&month=
// ======================================================

func (h *BookingHandler) Days(c *gin.Context) {
	f, err := validators.ParseFields(c.Request.URL.Query(), booking.KindDays)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	days, err := h.days.Execute(c.Request.Context(), middleware.AuthFrom(c), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.DaysResponse{Success: true, Days: days})
}

// ======================================================
// GET /timeslots?year=&month=&day=
// ======================================================

func (h *BookingHandler) Timeslots(c *gin.Context) {
	f, err := validators.ParseFields(c.Request.URL.Query(), booking.KindTimeslots)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	slots, err := h.timeslots.Execute(c.Request.Context(), middleware.AuthFrom(c), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewTimeslotsResponse(slots))
}

// ======================================================
// POST /book?year=&month=&day=&hour=&minute=
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	f, err := validators.ParseFields(c.Request.URL.Query(), booking.KindBooking)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	res, err := h.book.Execute(c.Request.Context(), middleware.AuthFrom(c), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.BookResponse{
		Success:   true,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
	})
}

// ======================================================
// ERRORS
// ======================================================

// writeError maps use case errors to the failure envelope. Calendar errors
// are logged but their text never reaches the client.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.Business(c, be)
		return
	}

	var te *booking.TransportError
	if errors.As(err, &te) {
		log.Error("calendar call failed",
			zap.String("op", te.Op),
			zap.Error(te.Err),
			zap.String("request_id", c.GetString(middleware.ContextRequestID)),
		)
		_ = c.Error(err)
		httperr.BadGateway(c, "calendar_unavailable", msgCalendarUnavailable)
		return
	}

	log.Error("unexpected error", zap.Error(err))
	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Internal error")
}
