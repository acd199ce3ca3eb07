package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tongavip/internal/domain"
)

func TestCatalog_Total_BaseFareOnly(t *testing.T) {
	c := Default()

	assert.Equal(t, int64(5000), c.Total(nil))
	assert.Equal(t, int64(5000), c.Total([]domain.SelectedAddOn{}))
}

func TestCatalog_Total_WithAddOns(t *testing.T) {
	c := Default()

	// $50.00 + $42.80 + 2 x $31.00 = $154.80
	total := c.Total([]domain.SelectedAddOn{
		{ID: "lei", Quantity: 1},
		{ID: "car-seat", Quantity: 2},
	})

	assert.Equal(t, int64(15480), total)
}

func TestCatalog_Total_IgnoresUnknownIDs(t *testing.T) {
	c := Default()

	total := c.Total([]domain.SelectedAddOn{
		{ID: "jetpack", Quantity: 3},
		{ID: "lei", Quantity: 1},
	})

	assert.Equal(t, int64(5000+4280), total)
}

func TestCatalog_Get(t *testing.T) {
	c := Default()

	a, ok := c.Get("car-seat")
	assert.True(t, ok)
	assert.Equal(t, int64(3100), a.PriceCents)

	_, ok = c.Get("jetpack")
	assert.False(t, ok)
}

func TestCatalog_AddOnsReturnsCopy(t *testing.T) {
	c := Default()

	list := c.AddOns()
	list[0].PriceCents = 1

	assert.NotEqual(t, int64(1), c.AddOns()[0].PriceCents)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$154.80", FormatCents(15480))
	assert.Equal(t, "$50.00", FormatCents(5000))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "-$1.25", FormatCents(-125))
}
