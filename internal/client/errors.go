package client

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNoAddress is returned by New when neither the caller nor the
	// configured defaults provide a device address.
	ErrNoAddress = errors.New("address not found")

	ErrConnectivity = errors.New("can't connect to camera, check address / port")
	ErrNotFound     = errors.New("no such camera")
	ErrUnsupported  = errors.New("capability not supported by device")
	ErrOutOfRange   = errors.New("level out of range")
	ErrInvalidMode  = errors.New("invalid mode")
)

// ConnectivityError wraps a network failure or a non-2xx response.
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrConnectivity, e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

func (e *ConnectivityError) Is(target error) bool { return target == ErrConnectivity }

// ProtocolError means /camera/info answered with something that isn't JSON,
// usually because the app is running but the camera isn't started.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("malformed JSON response, is the camera connected to the app? %v", e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func (e *ProtocolError) Is(target error) bool { return target == ErrConnectivity }

type NotFoundError struct {
	Camera string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNotFound, e.Camera)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type UnsupportedError struct {
	Capability string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no %s on device", e.Capability)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// OutOfRangeError carries the rejected level and the bound read from the
// device snapshot.
type OutOfRangeError struct {
	Setting string
	Level   float64
	Max     float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %s above maximum of %s",
		e.Setting, formatLevel(e.Level), formatLevel(e.Max))
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

type InvalidModeError struct {
	Kind string
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("%q is not a valid %s mode", e.Mode, e.Kind)
}

func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

func formatLevel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
