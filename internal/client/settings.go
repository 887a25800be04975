package client

import "context"

// SetZoom sets the zoom level. Only the upper bound (maxZoom from a fresh
// snapshot) is checked.
func (c *DeviceClient) SetZoom(ctx context.Context, level float64) bool {
	return c.runCommand("set_zoom", func() (bool, error) {
		info, err := c.GetInfo(ctx)
		if err != nil {
			return false, err
		}
		if level > info.MaxZoom {
			return false, &OutOfRangeError{Setting: "zoom level", Level: level, Max: info.MaxZoom}
		}
		return c.transport.Put(ctx, c.endpoint("/camera/zoom_level/%s", formatLevel(level)))
	})
}

// SetExposureValue sets the exposure compensation, bounded above by
// maxExposure.
func (c *DeviceClient) SetExposureValue(ctx context.Context, level float64) bool {
	return c.runCommand("set_exposure_value", func() (bool, error) {
		info, err := c.GetInfo(ctx)
		if err != nil {
			return false, err
		}
		if level > info.MaxExposure {
			return false, &OutOfRangeError{Setting: "EV", Level: level, Max: info.MaxExposure}
		}
		return c.transport.Put(ctx, c.endpoint("/camera/ev_level/%s", formatLevel(level)))
	})
}

func (c *DeviceClient) SetWhiteBalance(ctx context.Context, mode string) bool {
	return c.runCommand("set_white_balance", func() (bool, error) {
		code, ok := whiteBalanceModes[mode]
		if !ok {
			return false, &InvalidModeError{Kind: "white balance", Mode: mode}
		}
		return c.transport.Put(ctx, c.endpoint("/camera/wb_mode/%d", code))
	})
}

func (c *DeviceClient) SetAutoFocus(ctx context.Context, mode string) bool {
	return c.runCommand("set_autofocus", func() (bool, error) {
		code, ok := autoFocusModes[mode]
		if !ok {
			return false, &InvalidModeError{Kind: "autofocus", Mode: mode}
		}
		return c.transport.Put(ctx, c.endpoint("/camera/autofocus_mode/%d", code))
	})
}
