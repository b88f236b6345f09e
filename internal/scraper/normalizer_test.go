// internal/scraper/normalizer_test.go
package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	raw := []RawField{
		{Key: "technology", Value: "GSM / LTE / 5G"},
		{Key: "network: technology", Value: "GSM / LTE / 5G"},
		{Key: "dimensions", Value: "160 x 75 x 8 mm"},
		{Key: "body: dimensions", Value: "160 x 75 x 8 mm"},
		{Key: "type", Value: "AMOLED"},
		{Key: "display: type", Value: "AMOLED"},
		{Key: "type", Value: "Li-Po 4800 mAh"},
		{Key: "battery: type", Value: "Li-Po 4800 mAh"},
	}

	n := Normalize(raw)

	assert.Equal(t, "GSM / LTE / 5G", n.Fields.NetworkTechnology)
	assert.Equal(t, "160 x 75 x 8 mm", n.Fields.BodyDimensions)
	assert.Equal(t, "AMOLED", n.Fields.DisplayType)
	assert.Equal(t, "Li-Po 4800 mAh", n.Fields.BatteryType)
	assert.Empty(t, n.Extras)
}

func TestNormalizeLastRowWins(t *testing.T) {
	// Several source labels feed one column; the last row on the page is
	// authoritative.
	raw := []RawField{
		{Key: "positioning", Value: "GPS, GLONASS"},
		{Key: "comms: positioning", Value: "GPS, GLONASS"},
		{Key: "gps", Value: "Yes, with A-GPS"},
		{Key: "comms: gps", Value: "Yes, with A-GPS"},
	}

	n := Normalize(raw)
	assert.Equal(t, "Yes, with A-GPS", n.Fields.CommsPositioning)
}

func TestNormalizeUnmappedGoesToExtras(t *testing.T) {
	raw := []RawField{
		{Key: "sar", Value: "1.17 W/kg"},
		{Key: "misc: sar", Value: "1.17 W/kg"},
		{Key: "sar eu", Value: "1.08 W/kg"},
		{Key: "misc: sar eu", Value: "1.08 W/kg"},
		{Key: "colors", Value: "Black, Silver"},
		{Key: "misc: colors", Value: "Black, Silver"},
	}

	n := Normalize(raw)

	assert.Equal(t, "Black, Silver", n.Fields.MiscColors)
	assert.Equal(t, map[string]string{
		"misc: sar":    "1.17 W/kg",
		"misc: sar eu": "1.08 W/kg",
	}, n.Extras)
}

func TestNormalizeMappedRowsStayOutOfExtras(t *testing.T) {
	// A row whose bare form matched must not also surface as an extra via
	// its unmapped composite form.
	raw := []RawField{
		{Key: "gps", Value: "Yes"},
		{Key: "comms: gps", Value: "Yes"},
	}

	n := Normalize(raw)
	assert.Equal(t, "Yes", n.Fields.CommsPositioning)
	assert.Empty(t, n.Extras)
}

func TestNormalizeEmpty(t *testing.T) {
	n := Normalize(nil)
	assert.Empty(t, n.Extras)
	assert.Equal(t, Normalize([]RawField{}).Fields, n.Fields)
}

func TestNormalizeDeterministic(t *testing.T) {
	raw := []RawField{
		{Key: "internal", Value: "256GB 12GB RAM"},
		{Key: "memory: internal", Value: "256GB 12GB RAM"},
		{Key: "os", Value: "Android 15"},
		{Key: "platform: os", Value: "Android 15"},
	}

	first := Normalize(raw)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first.Fields, Normalize(raw).Fields)
	}
}
