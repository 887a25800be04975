package client

import "context"

// The device only exposes flip endpoints for the flash and exposure lock,
// so both commands read the current state first and write only when it
// differs from what was asked for. Nothing stops another client from
// flipping the setting between the read and the write.

// SetFlash turns the LED on or off. It fails without writing when the
// device reports no LED.
func (c *DeviceClient) SetFlash(ctx context.Context, on bool) bool {
	return c.runCommand("set_flash", func() (bool, error) {
		info, err := c.GetInfo(ctx)
		if err != nil {
			return false, err
		}
		if !info.LEDAvailable {
			return false, &UnsupportedError{Capability: "LED"}
		}
		return c.toggle(ctx, info.FlashEnabled(), on, func(bool) string {
			return c.endpoint("/camera/torch_toggle")
		})
	})
}

// SetExposureLock locks or unlocks auto exposure.
func (c *DeviceClient) SetExposureLock(ctx context.Context, on bool) bool {
	return c.runCommand("set_exposure_lock", func() (bool, error) {
		info, err := c.GetInfo(ctx)
		if err != nil {
			return false, err
		}
		return c.toggle(ctx, info.ExposureLocked(), on, func(current bool) string {
			// The endpoint takes the new state: on(1) -> 0, off(0) -> 1.
			return c.endpoint("/camera/exposure_lock/%s", lockPayload(!current))
		})
	})
}

// toggle issues at most one write, and none when current already matches
// desired.
func (c *DeviceClient) toggle(ctx context.Context, current, desired bool, url func(current bool) string) (bool, error) {
	if current == desired {
		return true, nil
	}
	return c.transport.Put(ctx, url(current))
}

func lockPayload(on bool) string {
	if on {
		return "1"
	}
	return "0"
}
