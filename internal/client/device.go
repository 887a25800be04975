package client

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"droidcam-cli/pkg/models"
)

// GetInfo fetches a fresh snapshot from /camera/info.
func (c *DeviceClient) GetInfo(ctx context.Context) (*models.DeviceInfo, error) {
	body, err := c.transport.GetText(ctx, c.endpoint("/camera/info"))
	if err != nil {
		return nil, err
	}

	var info models.DeviceInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		return nil, &ProtocolError{Err: err}
	}
	return &info, nil
}

// GetBatteryLevel returns the phone battery percentage. The body is not
// validated: an empty body reads as 0 and anything non-numeric as NaN.
func (c *DeviceClient) GetBatteryLevel(ctx context.Context) (float64, error) {
	body, err := c.transport.GetText(ctx, c.endpoint("/phone/battery_level"))
	if err != nil {
		return 0, err
	}
	return parseNumber(body), nil
}

func (c *DeviceClient) GetName(ctx context.Context) (string, error) {
	return c.transport.GetText(ctx, c.endpoint("/phone/name"))
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
