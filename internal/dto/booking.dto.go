package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceDTO struct {
	ID              uint            `json:"id"`
	TitleEn         string          `json:"title_en"`
	TitleFr         string          `json:"title_fr"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
}

// BookingDTO is the client-facing booking. It never carries the row id or
// the calendar event id.
type BookingDTO struct {
	ConfirmationCode  string     `json:"confirmation_code"`
	Service           ServiceDTO `json:"service"`
	StartDatetime     time.Time  `json:"start_datetime"`
	EndDatetime       time.Time  `json:"end_datetime"`
	Status            string     `json:"status"`
	Source            string     `json:"source"`
	ClientName        string     `json:"client_name"`
	ClientEmail       string     `json:"client_email"`
	ClientPhone       string     `json:"client_phone"`
	ClientNotes       string     `json:"client_notes"`
	PreferredLanguage string     `json:"preferred_language"`
	VoucherCode       string     `json:"voucher_code,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// AdminBookingDTO adds the reconciliation fields staff need.
type AdminBookingDTO struct {
	BookingDTO
	CalendarSynced bool      `json:"calendar_synced"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromBooking(b *models.Booking, loc *time.Location) BookingDTO {
	if loc == nil {
		loc = time.UTC
	}
	return BookingDTO{
		ConfirmationCode: b.ConfirmationCode,
		Service: ServiceDTO{
			ID:              b.Service.ID,
			TitleEn:         b.Service.TitleEn,
			TitleFr:         b.Service.TitleFr,
			DurationMinutes: b.Service.DurationMinutes,
			Price:           b.Service.Price,
		},
		StartDatetime:     b.StartDatetime.In(loc),
		EndDatetime:       b.EndDatetime.In(loc),
		Status:            b.Status,
		Source:            b.Source,
		ClientName:        b.ClientName,
		ClientEmail:       b.ClientEmail,
		ClientPhone:       b.ClientPhone,
		ClientNotes:       b.ClientNotes,
		PreferredLanguage: b.PreferredLanguage,
		VoucherCode:       b.VoucherCode,
		CreatedAt:         b.CreatedAt,
	}
}

func FromBookingAdmin(b *models.Booking, loc *time.Location) AdminBookingDTO {
	return AdminBookingDTO{
		BookingDTO:     FromBooking(b, loc),
		CalendarSynced: b.CalendarEventID != "",
		UpdatedAt:      b.UpdatedAt,
	}
}
