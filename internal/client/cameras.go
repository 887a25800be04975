package client

import (
	"context"
	"strings"
)

// GetCameraList returns the device's cameras in the order the device
// reports them. Positions in this list are what SetCamera selects by.
func (c *DeviceClient) GetCameraList(ctx context.Context) ([]string, error) {
	body, err := c.transport.GetText(ctx, c.endpoint("/camera/camera_list"))
	if err != nil {
		return nil, err
	}
	return splitCameraList(body), nil
}

// splitCameraList cuts the newline-delimited body at the first empty
// segment, which is where a trailing newline lands.
func splitCameraList(body string) []string {
	names := strings.Split(body, "\n")
	for i, name := range names {
		if name == "" {
			return names[:i]
		}
	}
	return names
}

// SetCamera activates the camera called name.
func (c *DeviceClient) SetCamera(ctx context.Context, name string) bool {
	return c.runCommand("set_camera", func() (bool, error) {
		cameras, err := c.GetCameraList(ctx)
		if err != nil {
			return false, err
		}
		for i, cam := range cameras {
			if cam == name {
				return c.transport.Put(ctx, c.endpoint("/camera/active/%d", i))
			}
		}
		return false, &NotFoundError{Camera: name}
	})
}
