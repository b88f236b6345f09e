// internal/models/spec_fields.go
package models

// SpecFields is the fixed vocabulary every submission and catalog entry
// normalizes into. Both tables share these columns; nothing outside this set
// is ever persisted as a spec column.
type SpecFields struct {
	NetworkTechnology string `json:"network_technology,omitempty" gorm:"type:text"`

	LaunchAnnounced string `json:"launch_announced,omitempty" gorm:"type:text"`
	LaunchStatus    string `json:"launch_status,omitempty" gorm:"type:text"`

	BodyDimensions string `json:"body_dimensions,omitempty" gorm:"type:text"`
	BodyWeight     string `json:"body_weight,omitempty" gorm:"type:text"`
	BodyBuild      string `json:"body_build,omitempty" gorm:"type:text"`
	BodySim        string `json:"body_sim,omitempty" gorm:"type:text"`

	DisplayType       string `json:"display_type,omitempty" gorm:"type:text"`
	DisplaySize       string `json:"display_size,omitempty" gorm:"type:text"`
	DisplayResolution string `json:"display_resolution,omitempty" gorm:"type:text"`
	DisplayProtection string `json:"display_protection,omitempty" gorm:"type:text"`

	PlatformOS      string `json:"platform_os,omitempty" gorm:"type:text"`
	PlatformChipset string `json:"platform_chipset,omitempty" gorm:"type:text"`
	PlatformCPU     string `json:"platform_cpu,omitempty" gorm:"column:platform_cpu;type:text"`
	PlatformGPU     string `json:"platform_gpu,omitempty" gorm:"column:platform_gpu;type:text"`

	MemoryInternal string `json:"memory_internal,omitempty" gorm:"type:text"`

	MainCamera         string `json:"main_camera,omitempty" gorm:"type:text"`
	MainCameraFeatures string `json:"main_camera_features,omitempty" gorm:"type:text"`
	MainCameraVideo    string `json:"main_camera_video,omitempty" gorm:"type:text"`
	SelfieCamera       string `json:"selfie_camera,omitempty" gorm:"type:text"`
	SelfieCameraVideo  string `json:"selfie_camera_video,omitempty" gorm:"type:text"`

	SoundLoudspeaker string `json:"sound_loudspeaker,omitempty" gorm:"type:text"`
	Sound35mmJack    string `json:"sound_3_5mm_jack,omitempty" gorm:"column:sound_3_5mm_jack;type:text"`

	CommsWLAN        string `json:"comms_wlan,omitempty" gorm:"column:comms_wlan;type:text"`
	CommsBluetooth   string `json:"comms_bluetooth,omitempty" gorm:"type:text"`
	CommsPositioning string `json:"comms_positioning,omitempty" gorm:"type:text"`
	CommsNFC         string `json:"comms_nfc,omitempty" gorm:"column:comms_nfc;type:text"`
	CommsRadio       string `json:"comms_radio,omitempty" gorm:"type:text"`
	CommsUSB         string `json:"comms_usb,omitempty" gorm:"column:comms_usb;type:text"`

	FeaturesSensors string `json:"features_sensors,omitempty" gorm:"type:text"`

	BatteryType     string `json:"battery_type,omitempty" gorm:"type:text"`
	BatteryCharging string `json:"battery_charging,omitempty" gorm:"type:text"`

	MiscColors string `json:"misc_colors,omitempty" gorm:"type:text"`
	MiscModels string `json:"misc_models,omitempty" gorm:"type:text"`
	MiscPrice  string `json:"misc_price,omitempty" gorm:"type:text"`
}

// CanonicalFieldNames lists every spec column name, in schema order.
func CanonicalFieldNames() []string {
	return []string{
		"network_technology",
		"launch_announced",
		"launch_status",
		"body_dimensions",
		"body_weight",
		"body_build",
		"body_sim",
		"display_type",
		"display_size",
		"display_resolution",
		"display_protection",
		"platform_os",
		"platform_chipset",
		"platform_cpu",
		"platform_gpu",
		"memory_internal",
		"main_camera",
		"main_camera_features",
		"main_camera_video",
		"selfie_camera",
		"selfie_camera_video",
		"sound_loudspeaker",
		"sound_3_5mm_jack",
		"comms_wlan",
		"comms_bluetooth",
		"comms_positioning",
		"comms_nfc",
		"comms_radio",
		"comms_usb",
		"features_sensors",
		"battery_type",
		"battery_charging",
		"misc_colors",
		"misc_models",
		"misc_price",
	}
}

// FieldRef returns a pointer to the struct member backing the given canonical
// column name, or nil if the name is not part of the vocabulary.
func (s *SpecFields) FieldRef(name string) *string {
	switch name {
	case "network_technology":
		return &s.NetworkTechnology
	case "launch_announced":
		return &s.LaunchAnnounced
	case "launch_status":
		return &s.LaunchStatus
	case "body_dimensions":
		return &s.BodyDimensions
	case "body_weight":
		return &s.BodyWeight
	case "body_build":
		return &s.BodyBuild
	case "body_sim":
		return &s.BodySim
	case "display_type":
		return &s.DisplayType
	case "display_size":
		return &s.DisplaySize
	case "display_resolution":
		return &s.DisplayResolution
	case "display_protection":
		return &s.DisplayProtection
	case "platform_os":
		return &s.PlatformOS
	case "platform_chipset":
		return &s.PlatformChipset
	case "platform_cpu":
		return &s.PlatformCPU
	case "platform_gpu":
		return &s.PlatformGPU
	case "memory_internal":
		return &s.MemoryInternal
	case "main_camera":
		return &s.MainCamera
	case "main_camera_features":
		return &s.MainCameraFeatures
	case "main_camera_video":
		return &s.MainCameraVideo
	case "selfie_camera":
		return &s.SelfieCamera
	case "selfie_camera_video":
		return &s.SelfieCameraVideo
	case "sound_loudspeaker":
		return &s.SoundLoudspeaker
	case "sound_3_5mm_jack":
		return &s.Sound35mmJack
	case "comms_wlan":
		return &s.CommsWLAN
	case "comms_bluetooth":
		return &s.CommsBluetooth
	case "comms_positioning":
		return &s.CommsPositioning
	case "comms_nfc":
		return &s.CommsNFC
	case "comms_radio":
		return &s.CommsRadio
	case "comms_usb":
		return &s.CommsUSB
	case "features_sensors":
		return &s.FeaturesSensors
	case "battery_type":
		return &s.BatteryType
	case "battery_charging":
		return &s.BatteryCharging
	case "misc_colors":
		return &s.MiscColors
	case "misc_models":
		return &s.MiscModels
	case "misc_price":
		return &s.MiscPrice
	}
	return nil
}

// Get reads a spec column by canonical name. Unknown names return "".
func (s *SpecFields) Get(name string) string {
	if ref := s.FieldRef(name); ref != nil {
		return *ref
	}
	return ""
}

// Set writes a spec column by canonical name. Returns false for names outside
// the vocabulary; the value is discarded in that case.
func (s *SpecFields) Set(name, value string) bool {
	ref := s.FieldRef(name)
	if ref == nil {
		return false
	}
	*ref = value
	return true
}
