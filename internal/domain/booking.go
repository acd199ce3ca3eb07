package domain

import "time"

type TripType string

const (
	TripOneWay TripType = "oneway"
	TripReturn TripType = "return"
)

type PickupContext string

const (
	PickupAirport PickupContext = "airport"
	PickupHotel   PickupContext = "hotel"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending/Quote"
)

// AirportName is the fixed pickup/dropoff location the wizard locks to
// depending on the pickup context.
const AirportName = "Fua'amotu International Airport (TBU)"

type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// SelectedAddOn pairs a catalog add-on with a quantity. A selection with
// quantity zero is never stored; removing the last unit deletes the entry.
type SelectedAddOn struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// BookingRecord is an immutable persisted booking. It is written once when a
// payment (or quote request) completes, listed by the admin dashboard and
// deleted explicitly; it is never updated in place.
type BookingRecord struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"createdAt"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PaymentIntentID string          `json:"paymentIntentId,omitempty"`
	Subject         string          `json:"subject,omitempty"`
	TripType        TripType        `json:"tripType,omitempty"`
	PickupContext   PickupContext   `json:"pickupContext,omitempty"`
	Pickup          string          `json:"pickup,omitempty"`
	Dropoff         string          `json:"dropoff,omitempty"`
	Date            string          `json:"date,omitempty"`
	Time            string          `json:"time,omitempty"`
	ReturnDate      string          `json:"returnDate,omitempty"`
	Passengers      int             `json:"passengers,omitempty"`
	PassengerCounts PassengerCounts `json:"passengerCounts,omitzero"`
	Bags            int             `json:"bags,omitempty"`
	VehicleType     string          `json:"vehicleType,omitempty"`
	Email           string          `json:"email,omitempty"`
	AddOns          []SelectedAddOn `json:"addOns,omitempty"`
	TotalCents      int64           `json:"totalCents,omitempty"`
}
