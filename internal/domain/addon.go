package domain

// AddOn is a static catalog entry for an optional booking line item.
// Prices are held in currency minor units.
type AddOn struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Image       string `json:"image"`
}
