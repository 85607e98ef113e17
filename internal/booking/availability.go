// Package booking holds the slot availability projection and the duplicate
// booking guard.
package booking

import "github.com/harentsoaR/doctors-portal-api/internal/models"

// ComputeAvailability returns a copy of options in which every option keeps
// only the slots not claimed by a booking for that option's treatment.
// bookingsOnDate must already be restricted to a single date. Neither input
// is modified and surviving slots keep their template order.
func ComputeAvailability(options []models.AppointmentOption, bookingsOnDate []models.Booking) []models.AppointmentOption {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookingsOnDate {
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.AppointmentOption, len(options))
	for i, opt := range options {
		out[i] = opt
		taken := booked[opt.Name]
		remaining := make([]string, 0, len(opt.Slots))
		for _, slot := range opt.Slots {
			if _, ok := taken[slot]; !ok {
				remaining = append(remaining, slot)
			}
		}
		out[i].Slots = remaining
	}
	return out
}
