package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContainsKnownSlots(t *testing.T) {
	cat := Default()

	slot, ok := cat.Get("logo")
	require.True(t, ok)
	assert.Equal(t, "Company Logo", slot.Name)
	assert.Equal(t, "/mechgenz-logo.jpg", slot.DefaultURL)
	assert.Equal(t, "branding", slot.Category)

	for _, id := range []string{
		"hero_slide_1", "hero_slide_2", "hero_slide_3",
		"about_main",
		"mechanical_suppliers", "electrical_suppliers",
		"plumbing_suppliers", "fire_fighting_suppliers",
		"portfolio_civil_1", "portfolio_civil_2",
		"portfolio_road_1", "portfolio_road_2",
		"portfolio_fitout_1", "portfolio_fitout_2",
		"portfolio_special_1", "portfolio_special_2",
	} {
		assert.True(t, cat.Has(id), "missing slot %s", id)
	}
	assert.Equal(t, 17, cat.Len())
}

func TestGetUnknownSlot(t *testing.T) {
	cat := Default()

	slot, ok := cat.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, slot.ID)
}

func TestGetCopiesLocations(t *testing.T) {
	cat := Default()

	slot, ok := cat.Get("logo")
	require.True(t, ok)
	require.NotEmpty(t, slot.Locations)
	slot.Locations[0] = "tampered"

	again, _ := cat.Get("logo")
	assert.NotEqual(t, "tampered", again.Locations[0])
}

func TestIDsAreSorted(t *testing.T) {
	cat := Default()

	ids := cat.IDs()
	assert.Len(t, ids, cat.Len())
	assert.True(t, sort.StringsAreSorted(ids))
}
