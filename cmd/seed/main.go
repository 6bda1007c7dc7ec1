package main

import (
	"flag"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var catalog = []models.Service{
	{TitleEn: "Relaxing Massage", TitleFr: "Massage relaxant", DurationMinutes: 60, Price: decimal.RequireFromString("80.00")},
	{TitleEn: "Hot Stone Massage", TitleFr: "Massage aux pierres chaudes", DurationMinutes: 90, Price: decimal.RequireFromString("115.00")},
	{TitleEn: "Classic Facial", TitleFr: "Soin du visage classique", DurationMinutes: 45, Price: decimal.RequireFromString("65.00")},
	{TitleEn: "Manicure", TitleFr: "Manucure", DurationMinutes: 30, Price: decimal.RequireFromString("35.00")},
	{TitleEn: "Pedicure", TitleFr: "Pédicure", DurationMinutes: 45, Price: decimal.RequireFromString("45.00")},
}

func main() {
	bookings := flag.Int("bookings", 20, "number of demo bookings to create")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	log.Info("seed starting")

	db := dbpkg.NewDB(cfg, log)
	faker := gofakeit.New(0)

	services, err := seedServices(db)
	if err != nil {
		log.WithError(err).Fatal("seed services")
	}

	if err := seedBookings(db, faker, services, *bookings, cfg.Location(), log); err != nil {
		log.WithError(err).Fatal("seed bookings")
	}

	log.Info("seed complete")
}

func seedServices(db *gorm.DB) ([]models.Service, error) {
	out := make([]models.Service, 0, len(catalog))

	for _, s := range catalog {
		svc := s
		svc.IsAvailable = true
		if err := db.Where(models.Service{TitleEn: s.TitleEn}).
			Attrs(svc).
			FirstOrCreate(&svc).Error; err != nil {
			return nil, err
		}
		out = append(out, svc)
	}

	return out, nil
}

func seedBookings(
	db *gorm.DB,
	faker *gofakeit.Faker,
	services []models.Service,
	count int,
	loc *time.Location,
	log *logrus.Logger,
) error {

	sources := []domain.Source{domain.SourceOnline, domain.SourceVoucher, domain.SourceManual}
	// Demo rows never reach the calendar, so none are confirmed.
	statuses := []domain.Status{domain.StatusPending, domain.StatusPending, domain.StatusCancelled}

	today := time.Now().In(loc)

	return db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < count; i++ {
			svc := services[faker.Number(0, len(services)-1)]
			source := sources[faker.Number(0, len(sources)-1)]
			status := statuses[faker.Number(0, len(statuses)-1)]

			day := today.AddDate(0, 0, faker.Number(1, 30))
			start := time.Date(day.Year(), day.Month(), day.Day(), faker.Number(9, 17), 30*faker.Number(0, 1), 0, 0, loc)

			code, err := domain.GenerateConfirmationCode()
			if err != nil {
				return err
			}

			b := models.Booking{
				ConfirmationCode:  code,
				ServiceID:         svc.ID,
				StartDatetime:     start,
				EndDatetime:       start.Add(time.Duration(svc.DurationMinutes) * time.Minute),
				Status:            string(status),
				Source:            string(source),
				ClientName:        faker.Name(),
				ClientEmail:       faker.Email(),
				ClientPhone:       faker.Phone(),
				PreferredLanguage: []string{"fr", "en"}[faker.Number(0, 1)],
			}
			if source == domain.SourceVoucher {
				b.VoucherCode = "GIFT-" + faker.DigitN(6)
			}

			if err := tx.Omit("Service").Create(&b).Error; err != nil {
				return err
			}
		}

		log.WithField("count", count).Info("bookings seeded")
		return nil
	})
}
