package booking

import "tongavip/internal/domain"

// SubmitRequest is the body of POST /api/send-email: the formatted message
// plus the flattened booking fields the submitting form collected. Only the
// message text is required; the quote form sends little else.
type SubmitRequest struct {
	Subject         string                 `json:"subject"`
	Text            string                 `json:"text" binding:"required"`
	HTML            string                 `json:"html"`
	PaymentIntentID string                 `json:"paymentIntentId"`
	TripType        domain.TripType        `json:"tripType"`
	PickupContext   domain.PickupContext   `json:"pickupContext"`
	Pickup          string                 `json:"pickup"`
	Dropoff         string                 `json:"dropoff"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`
	ReturnDate      string                 `json:"returnDate"`
	Passengers      int                    `json:"passengers"`
	PassengerCounts domain.PassengerCounts `json:"passengerCounts"`
	Bags            int                    `json:"bags"`
	VehicleType     string                 `json:"vehicleType"`
	Email           string                 `json:"email"`
	AddOns          []domain.SelectedAddOn `json:"addOns"`
	TotalCents      int64                  `json:"totalCents"`
}
