package store

import (
	"context"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
	"03.00 PM - 03.30 PM",
	"03.30 PM - 04.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
}

// DefaultOptions is the catalog written by Seed on an empty database.
func DefaultOptions() []models.AppointmentOption {
	treatments := []struct {
		name  string
		price float64
	}{
		{"Teeth Orthodontics", 120},
		{"Cosmetic Dentistry", 150},
		{"Teeth Cleaning", 60},
		{"Cavity Protection", 80},
		{"Pediatric Dental", 70},
		{"Oral Surgery", 200},
	}
	out := make([]models.AppointmentOption, 0, len(treatments))
	for _, t := range treatments {
		slots := make([]string, len(defaultSlots))
		copy(slots, defaultSlots)
		out = append(out, models.AppointmentOption{Name: t.name, Price: t.price, Slots: slots})
	}
	return out
}

// Seed inserts DefaultOptions when the catalog is empty and reports how many
// options were written.
func (s *Store) Seed(ctx context.Context) (int, error) {
	n, err := s.Options.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	return s.Options.InsertMany(ctx, DefaultOptions())
}
