// internal/scraper/fields.go
package scraper

import "strings"

// fieldMap translates source spec labels to canonical column names. Keys are
// lowercased; unambiguous labels appear bare, labels that only identify a
// column together with their table heading ("Type" under both Display and
// Battery) appear only in "{category}: {label}" composite form.
//
// Multiple labels mapping to one column is intentional: whichever row the
// page lists last wins. Labels with no entry here are not persisted as spec
// columns; extend this table rather than working around it.
var fieldMap = map[string]string{
	"technology":         "network_technology",
	"network technology": "network_technology",
	"network: technology": "network_technology",

	"announced":         "launch_announced",
	"launch: announced": "launch_announced",
	"launch: status":    "launch_status",

	"dimensions":        "body_dimensions",
	"body: dimensions":  "body_dimensions",
	"weight":            "body_weight",
	"body: weight":      "body_weight",
	"build":             "body_build",
	"body: build":       "body_build",
	"sim":               "body_sim",
	"body: sim":         "body_sim",

	"display: type":       "display_type",
	"size":                "display_size",
	"display: size":       "display_size",
	"resolution":          "display_resolution",
	"display: resolution": "display_resolution",
	"protection":          "display_protection",
	"display: protection": "display_protection",

	"os":                 "platform_os",
	"platform: os":       "platform_os",
	"chipset":            "platform_chipset",
	"platform: chipset":  "platform_chipset",
	"cpu":                "platform_cpu",
	"platform: cpu":      "platform_cpu",
	"gpu":                "platform_gpu",
	"platform: gpu":      "platform_gpu",

	"internal":         "memory_internal",
	"memory: internal": "memory_internal",

	"single camera":        "main_camera",
	"dual camera":          "main_camera",
	"triple camera":        "main_camera",
	"quad camera":          "main_camera",
	"main camera: single":  "main_camera",
	"main camera: dual":    "main_camera",
	"main camera: triple":  "main_camera",
	"main camera: quad":    "main_camera",
	"main camera: features": "main_camera_features",
	"main camera: video":    "main_camera_video",

	"selfie camera: single": "selfie_camera",
	"selfie camera: dual":   "selfie_camera",
	"selfie camera: video":  "selfie_camera_video",

	"loudspeaker":        "sound_loudspeaker",
	"sound: loudspeaker": "sound_loudspeaker",
	"3.5mm jack":         "sound_3_5mm_jack",
	"sound: 3.5mm jack":  "sound_3_5mm_jack",

	"wlan":               "comms_wlan",
	"comms: wlan":        "comms_wlan",
	"bluetooth":          "comms_bluetooth",
	"comms: bluetooth":   "comms_bluetooth",
	"positioning":        "comms_positioning",
	"gps":                "comms_positioning",
	"comms: positioning": "comms_positioning",
	"nfc":                "comms_nfc",
	"comms: nfc":         "comms_nfc",
	"radio":              "comms_radio",
	"comms: radio":       "comms_radio",
	"usb":                "comms_usb",
	"comms: usb":         "comms_usb",

	"sensors":           "features_sensors",
	"features: sensors": "features_sensors",

	"battery type":      "battery_type",
	"battery: type":     "battery_type",
	"charging":          "battery_charging",
	"battery: charging": "battery_charging",

	"colors":        "misc_colors",
	"misc: colors":  "misc_colors",
	"models":        "misc_models",
	"misc: models":  "misc_models",
	"price":         "misc_price",
	"misc: price":   "misc_price",
}

// CanonicalField resolves a raw label to its canonical column name. The
// lookup is case-insensitive; returns "" when the label is unknown.
func CanonicalField(label string) string {
	return fieldMap[strings.ToLower(strings.TrimSpace(label))]
}
