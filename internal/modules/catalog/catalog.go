package catalog

import (
	"fmt"

	"tongavip/internal/domain"
)

// BaseFareCents is the fixed transfer base fare added to every booking total.
const BaseFareCents int64 = 5000

// Catalog is the immutable add-on price list. It is built once at startup and
// injected wherever totals are computed; entries are never mutated.
type Catalog struct {
	baseFareCents int64
	addOns        []domain.AddOn
	byID          map[string]domain.AddOn
}

func New(baseFareCents int64, addOns []domain.AddOn) *Catalog {
	byID := make(map[string]domain.AddOn, len(addOns))
	for _, a := range addOns {
		byID[a.ID] = a
	}
	return &Catalog{
		baseFareCents: baseFareCents,
		addOns:        addOns,
		byID:          byID,
	}
}

// Default returns the built-in production catalog.
func Default() *Catalog {
	return New(BaseFareCents, []domain.AddOn{
		{
			ID:          "lei",
			Name:        "Fresh Flower Lei Greeting",
			Description: "Traditional Tongan lei presented on arrival",
			PriceCents:  4280,
			Image:       "/images/addons/lei.jpg",
		},
		{
			ID:          "car-seat",
			Name:        "Child Car Seat",
			Description: "Forward-facing seat fitted before pickup",
			PriceCents:  3100,
			Image:       "/images/addons/car-seat.jpg",
		},
		{
			ID:          "champagne",
			Name:        "Champagne On Board",
			Description: "Chilled bottle and glasses for the ride",
			PriceCents:  6500,
			Image:       "/images/addons/champagne.jpg",
		},
		{
			ID:          "tour-stop",
			Name:        "Island Tour Stop",
			Description: "One-hour scenic stop en route",
			PriceCents:  8900,
			Image:       "/images/addons/tour-stop.jpg",
		},
	})
}

// AddOns returns the catalog entries in their display order.
func (c *Catalog) AddOns() []domain.AddOn {
	out := make([]domain.AddOn, len(c.addOns))
	copy(out, c.addOns)
	return out
}

func (c *Catalog) Get(id string) (domain.AddOn, bool) {
	a, ok := c.byID[id]
	return a, ok
}

func (c *Catalog) BaseFare() int64 {
	return c.baseFareCents
}

// Total computes base fare plus the sum over selections of price times
// quantity. Selections referencing unknown ids contribute nothing; the wizard
// never produces them.
func (c *Catalog) Total(selected []domain.SelectedAddOn) int64 {
	total := c.baseFareCents
	for _, s := range selected {
		if a, ok := c.byID[s.ID]; ok {
			total += a.PriceCents * int64(s.Quantity)
		}
	}
	return total
}

// FormatCents renders a minor-unit amount as a dollar string, e.g. "$154.80".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
