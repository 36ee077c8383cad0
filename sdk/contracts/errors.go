package contracts

import (
	"errors"
	"fmt"
)

// Error definitions shared by every layer of the SDK. Callers match them with errors.Is.
var (
	// ErrDeviceUnavailable is returned when the tone device cannot be opened for writing:
	// missing node, no PC speaker, insufficient permission or an unsupported host.
	ErrDeviceUnavailable = errors.New("tone device unavailable")

	// ErrSessionActive is returned by Open while another session holds the device.
	ErrSessionActive = fmt.Errorf("%w: a session is already open in this process", ErrDeviceUnavailable)

	// ErrWriteFailure is returned when a tone event was not written in full.
	ErrWriteFailure = errors.New("tone device write failed")

	// ErrSessionClosed is returned by operations on a closed session.
	ErrSessionClosed = errors.New("session closed")

	// ErrUnknownPitch is returned for a pitch name outside the pitch table.
	ErrUnknownPitch = errors.New("unknown pitch name")

	// ErrInvalidDuration is returned for negative or non-finite durations.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidFrequency is returned for negative, non-finite or out of range frequencies.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrUnsupportedOS is returned when no tone device backend exists for the host.
	ErrUnsupportedOS = errors.New("unsupported operating system")
)
