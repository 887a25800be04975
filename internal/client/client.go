package client

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultDevicePort is the port the phone app listens on out of the box.
const DefaultDevicePort = 4747

// DeviceClient talks to a single device. Its address is fixed at
// construction; there is no reconnection logic.
//
// No method takes a lock. Two toggles racing against the same device each
// read, decide and write on their own, so one may act on a stale snapshot.
type DeviceClient struct {
	address   string
	port      int
	url       string
	transport Transport
	logger    *slog.Logger
}

type ClientConfig struct {
	Address string
	Port    int

	// Fallbacks consulted only when Address / Port are empty, normally
	// filled from the environment or the config file.
	DefaultAddress string
	DefaultPort    int

	Transport Transport     // defaults to a resty transport
	Timeout   time.Duration // used only by the default transport
	Logger    *slog.Logger
}

func New(cfg ClientConfig) (*DeviceClient, error) {
	address := cfg.Address
	if address == "" {
		address = cfg.DefaultAddress
	}
	if address == "" {
		return nil, ErrNoAddress
	}

	port := cfg.Port
	if port == 0 {
		port = cfg.DefaultPort
	}
	if port == 0 {
		port = DefaultDevicePort
	}

	transport := cfg.Transport
	if transport == nil {
		transport = NewRestyTransport(nil, cfg.Timeout)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &DeviceClient{
		address:   address,
		port:      port,
		url:       fmt.Sprintf("http://%s:%d/v1", address, port),
		transport: transport,
		logger:    logger,
	}, nil
}

// URL returns the base URL, e.g. http://192.168.1.44:4747/v1.
func (c *DeviceClient) URL() string { return c.url }

func (c *DeviceClient) Address() string { return c.address }

func (c *DeviceClient) Port() int { return c.port }

func (c *DeviceClient) endpoint(format string, args ...any) string {
	return c.url + fmt.Sprintf(format, args...)
}

// runCommand is the single error boundary for every mutating command:
// failures are logged and reported to the caller as false.
func (c *DeviceClient) runCommand(op string, fn func() (bool, error)) bool {
	ok, err := fn()
	if err != nil {
		c.logger.Error("device command failed",
			slog.String("op", op),
			slog.String("device", c.url),
			slog.Any("error", err),
		)
		return false
	}
	if !ok {
		c.logger.Warn("device rejected command",
			slog.String("op", op),
			slog.String("device", c.url),
		)
	}
	return ok
}
