package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucBooking.CreateBooking
	cancel *ucBooking.CancelBooking
	get    *ucBooking.GetBooking
	list   *ucBooking.ListBookings
	sync   *ucBooking.SyncBooking
	loc    *time.Location

	emailDomain *validators.EmailDomainChecker
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBooking,
	get *ucBooking.GetBooking,
	list *ucBooking.ListBookings,
	sync *ucBooking.SyncBooking,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		cancel: cancel,
		get:    get,
		list:   list,
		sync:   sync,
		loc:    loc,
	}
}

// WithEmailDomainCheck rejects client emails whose domain does not resolve.
func (h *BookingHandler) WithEmailDomainCheck(v *validators.EmailDomainChecker) *BookingHandler {
	h.emailDomain = v
	return h
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID         uint   `json:"service_id" binding:"required"`
	StartDatetime     string `json:"start_datetime" binding:"required"`
	EndDatetime       string `json:"end_datetime" binding:"required"`
	ClientName        string `json:"client_name" binding:"required,max=200"`
	ClientEmail       string `json:"client_email" binding:"required,email"`
	ClientPhone       string `json:"client_phone" binding:"required,max=64"`
	ClientNotes       string `json:"client_notes"`
	PreferredLanguage string `json:"preferred_language" binding:"omitempty,oneof=fr en"`
}

type CreateVoucherBookingRequest struct {
	CreateBookingRequest
	VoucherCode string `json:"voucher_code" binding:"required,max=20"`
}

func (h *BookingHandler) toNewBooking(req CreateBookingRequest, source domain.Source) (domain.NewBooking, bool) {
	start, err := timezone.ParseDateTime(req.StartDatetime, h.loc)
	if err != nil {
		return domain.NewBooking{}, false
	}
	end, err := timezone.ParseDateTime(req.EndDatetime, h.loc)
	if err != nil || !end.After(start) {
		return domain.NewBooking{}, false
	}

	return domain.NewBooking{
		ServiceID:         req.ServiceID,
		Start:             start,
		End:               end,
		Source:            source,
		ClientName:        strings.TrimSpace(req.ClientName),
		ClientEmail:       strings.TrimSpace(req.ClientEmail),
		ClientPhone:       strings.TrimSpace(req.ClientPhone),
		ClientNotes:       req.ClientNotes,
		PreferredLanguage: req.PreferredLanguage,
	}, true
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	h.createWithSource(c, domain.SourceOnline)
}

func (h *BookingHandler) CreateManual(c *gin.Context) {
	h.createWithSource(c, domain.SourceManual)
}

func (h *BookingHandler) createWithSource(c *gin.Context, source domain.Source) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	in, ok := h.toNewBooking(req, source)
	if !ok {
		httperr.BadRequest(c, "invalid_datetime", "start_datetime and end_datetime must be valid and ordered.")
		return
	}

	h.respondCreated(c, in)
}

func (h *BookingHandler) CreateVoucher(c *gin.Context) {
	var req CreateVoucherBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	in, ok := h.toNewBooking(req.CreateBookingRequest, domain.SourceVoucher)
	if !ok {
		httperr.BadRequest(c, "invalid_datetime", "start_datetime and end_datetime must be valid and ordered.")
		return
	}
	in.VoucherCode = strings.TrimSpace(req.VoucherCode)

	h.respondCreated(c, in)
}

func (h *BookingHandler) respondCreated(c *gin.Context, in domain.NewBooking) {
	if h.emailDomain != nil && !h.emailDomain.Valid(c.Request.Context(), in.ClientEmail) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not accept mail.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.FromBooking(b, h.loc))
}

// ======================================================
// LOOKUP / CANCEL
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b, h.loc))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	if _, err := h.cancel.Execute(c.Request.Context(), c.Param("code")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Booking cancelled successfully"})
}

// ======================================================
// ADMIN
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.AdminBookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.FromBookingAdmin(&bookings[i], h.loc))
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) Sync(c *gin.Context) {
	b, err := h.sync.Execute(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FromBookingAdmin(b, h.loc))
}
