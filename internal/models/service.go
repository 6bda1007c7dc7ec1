package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is owned by the CMS; bookings only read it.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TitleEn         string          `gorm:"size:200;not null" json:"title_en"`
	TitleFr         string          `gorm:"size:200;not null" json:"title_fr"`
	DurationMinutes int             `gorm:"default:60" json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:numeric(7,2);default:0" json:"price"`
	IsAvailable     bool            `gorm:"default:true;index" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
