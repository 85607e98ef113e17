package booking

import (
	"testing"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cavity() []models.AppointmentOption {
	return []models.AppointmentOption{{Name: "Cavity", Price: 80, Slots: []string{"9AM", "10AM"}}}
}

func TestComputeAvailability_RemovesBookedSlot(t *testing.T) {
	bookings := []models.Booking{{Treatment: "Cavity", Slot: "9AM", AppointmentDate: "Jan 1"}}

	got := ComputeAvailability(cavity(), bookings)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"10AM"}, got[0].Slots)
	assert.Equal(t, 80.0, got[0].Price)
}

func TestComputeAvailability_OtherDateMatchesNothing(t *testing.T) {
	// the store only returns bookings for the queried date, so "Jan 2" sees none
	got := ComputeAvailability(cavity(), nil)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"9AM", "10AM"}, got[0].Slots)
}

func TestComputeAvailability_FullyBookedKeepsOption(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cavity", Slot: "10AM"},
		{Treatment: "Cavity", Slot: "9AM"},
	}

	got := ComputeAvailability(cavity(), bookings)

	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Slots)
	assert.Empty(t, got[0].Slots)
}

func TestComputeAvailability_IgnoresOtherTreatments(t *testing.T) {
	opts := []models.AppointmentOption{
		{Name: "Cavity", Slots: []string{"9AM", "10AM", "11AM"}},
		{Name: "Cleaning", Slots: []string{"9AM", "10AM", "11AM"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "10AM"},
		{Treatment: "Cavity", Slot: "11AM"},
		{Treatment: "Surgery", Slot: "9AM"},
	}

	got := ComputeAvailability(opts, bookings)

	assert.Equal(t, []string{"9AM", "10AM"}, got[0].Slots)
	assert.Equal(t, []string{"9AM", "11AM"}, got[1].Slots)
}

func TestComputeAvailability_PreservesTemplateOrderAndInput(t *testing.T) {
	opts := []models.AppointmentOption{{Name: "X", Slots: []string{"d", "a", "c", "b"}}}
	bookings := []models.Booking{{Treatment: "X", Slot: "c"}}

	got := ComputeAvailability(opts, bookings)

	assert.Equal(t, []string{"d", "a", "b"}, got[0].Slots)
	assert.Equal(t, []string{"d", "a", "c", "b"}, opts[0].Slots, "input must not be mutated")
}

func TestComputeAvailability_SetDifferenceProperty(t *testing.T) {
	template := []string{"1", "2", "3", "4", "5", "6"}
	cases := []struct {
		name   string
		booked []string
	}{
		{"none", nil},
		{"one", []string{"3"}},
		{"several", []string{"1", "6", "4"}},
		{"duplicates", []string{"2", "2"}},
		{"unknown slot", []string{"99"}},
		{"all", template},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := []models.AppointmentOption{{Name: "T", Slots: template}}
			var bookings []models.Booking
			claimed := map[string]bool{}
			for _, s := range tc.booked {
				bookings = append(bookings, models.Booking{Treatment: "T", Slot: s})
				claimed[s] = true
			}

			want := []string{}
			for _, s := range template {
				if !claimed[s] {
					want = append(want, s)
				}
			}

			first := ComputeAvailability(opts, bookings)
			second := ComputeAvailability(opts, bookings)
			assert.Equal(t, want, first[0].Slots)
			assert.Equal(t, first, second)
		})
	}
}

func TestComputeAvailability_EmptyCatalog(t *testing.T) {
	got := ComputeAvailability(nil, []models.Booking{{Treatment: "X", Slot: "1"}})
	assert.Empty(t, got)
}
