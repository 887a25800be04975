package models

// DeviceInfo is the payload of GET /camera/info. It is a point-in-time read
// of the device and is never cached by the client.
type DeviceInfo struct {
	Active       int     `json:"active"`    // index into the camera list
	FocusMode    int     `json:"focusMode"` // see client.AutoFocusModes
	MaxZoom      float64 `json:"maxZoom"`
	CurrZoom     float64 `json:"currZoom"`
	CurrExposure float64 `json:"currExposure"`
	MaxExposure  float64 `json:"maxExposure"`
	WBMode       int     `json:"wbMode"` // see client.WhiteBalanceModes
	ExposureLock int     `json:"exposure_lock"`
	LEDAvailable bool    `json:"led_available"`
	LEDEnabled   *int    `json:"led_enabled,omitempty"` // not reported by every device
	MuteSound    int     `json:"mute_sound"`
}

// ExposureLocked reports whether auto exposure is currently locked.
func (i *DeviceInfo) ExposureLocked() bool {
	return i.ExposureLock != 0
}

// FlashEnabled reports whether the LED is lit. A device that omits
// led_enabled is treated as off.
func (i *DeviceInfo) FlashEnabled() bool {
	return i.LEDEnabled != nil && *i.LEDEnabled != 0
}

func (i *DeviceInfo) Muted() bool {
	return i.MuteSound != 0
}
