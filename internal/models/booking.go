package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"-"`

	ConfirmationCode string `gorm:"size:12;uniqueIndex;not null" json:"confirmation_code"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	StartDatetime time.Time `gorm:"not null;index" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"not null" json:"end_datetime"`

	Status string `gorm:"size:16;not null;default:'pending';index" json:"status"`
	Source string `gorm:"size:16;not null;default:'online';index" json:"source"`

	ClientName        string `gorm:"size:200;not null" json:"client_name"`
	ClientEmail       string `gorm:"size:254;not null;index" json:"client_email"`
	ClientPhone       string `gorm:"size:64;not null" json:"client_phone"`
	ClientNotes       string `gorm:"type:text" json:"client_notes"`
	PreferredLanguage string `gorm:"size:2;default:'fr'" json:"preferred_language"`

	VoucherCode     string `gorm:"size:20;index" json:"voucher_code"`
	CalendarEventID string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
