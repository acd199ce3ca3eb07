package domain

// BookingDraft is the in-progress booking owned by one wizard session.
// Exactly one of Pickup/Dropoff is locked to AirportName depending on
// PickupContext; the wizard enforces that and the count floors.
type BookingDraft struct {
	TripType        TripType
	PickupContext   PickupContext
	Pickup          string
	Dropoff         string
	Date            string
	Time            string
	ReturnDate      string
	PassengerCounts PassengerCounts
	Bags            int
	VehicleType     string
	Email           string
	AddOns          []SelectedAddOn
}

// NewBookingDraft returns the wizard's initial draft: one-way airport pickup
// with a single adult, mirroring the booking form defaults.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		TripType:        TripOneWay,
		PickupContext:   PickupAirport,
		Pickup:          AirportName,
		PassengerCounts: PassengerCounts{Adults: 1},
		VehicleType:     "sedan",
	}
}

// AddOnQuantity returns the selected quantity for id, zero when absent.
func (d *BookingDraft) AddOnQuantity(id string) int {
	for _, a := range d.AddOns {
		if a.ID == id {
			return a.Quantity
		}
	}
	return 0
}
