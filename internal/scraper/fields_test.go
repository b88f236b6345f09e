// internal/scraper/fields_test.go
package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/troveworks/trove-backend/internal/models"
)

func TestCanonicalField(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"technology", "network_technology"},
		{"Technology", "network_technology"},
		{"  Dimensions  ", "body_dimensions"},
		{"battery: type", "battery_type"},
		{"display: type", "display_type"},
		{"chipset", "platform_chipset"},
		{"triple camera", "main_camera"},
		{"main camera: quad", "main_camera"},
		{"selfie camera: single", "selfie_camera"},
		{"3.5mm jack", "sound_3_5mm_jack"},
		{"gps", "comms_positioning"},
		{"misc: price", "misc_price"},

		// A bare "type" is ambiguous between display and battery, so it
		// resolves only in composite form.
		{"type", ""},
		{"unheard-of label", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CanonicalField(tt.label), "label %q", tt.label)
	}
}

func TestFieldMapTargetsAreCanonical(t *testing.T) {
	// Every mapper target must exist in the spec vocabulary, otherwise
	// normalized values would silently vanish.
	var probe models.SpecFields
	for label, target := range fieldMap {
		assert.NotNil(t, probe.FieldRef(target), "label %q maps to unknown column %q", label, target)
	}
}
