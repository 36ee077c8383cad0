// Package beep plays notes and rests on the Linux PC speaker.
//
// A Session owns the speaker's evdev node for its whole lifetime:
//
//	s, err := beep.Open()
//	if err != nil {
//		return err // wraps contracts.ErrDeviceUnavailable
//	}
//	defer s.Close()
//
//	if err := s.PlayNamedNote(contracts.A, 4, 500); err != nil {
//		return err
//	}
//	return s.Rest(250)
//
// Every operation blocks for its duration. Close writes a final silence event
// and must run on every exit path; deferring it right after Open does that.
package beep

import (
	"io"

	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

// Open acquires the tone device and returns a ready session.
//
// opts ...contracts.Option: A variadic list of option functions to customize the session configuration.
//
// Returns:
//   - *Session: the open session. The caller must Close it.
//   - error: ErrDeviceUnavailable (or ErrSessionActive) when the device cannot be acquired,
//     ErrInvalidFrequency for a bad base frequency. Nothing is written in either case.
func Open(opts ...contracts.Option) (*Session, error) {
	options, ownedLogger, err := applyDefaultOptions(opts...)
	if err != nil {
		options.Logger.Error("invalid session options", options.Logger.Field().Error("error", err))
		closeLogger(ownedLogger)
		return nil, err
	}

	device, err := openDevice(&options)
	if err != nil {
		options.Logger.Error("cannot open PC speaker, do you have one?",
			options.Logger.Field().String("path", options.DevicePath),
			options.Logger.Field().Error("error", err))
		closeLogger(ownedLogger)
		return nil, err
	}

	options.Logger.Info("tone session opened",
		options.Logger.Field().String("path", options.DevicePath),
		options.Logger.Field().Float64("base_hz", options.BaseFrequency))
	s := newSession(device, &options)
	s.ownedLogger = ownedLogger
	return s, nil
}

func closeLogger(c io.Closer) error {
	if c == nil {
		return nil
	}
	return c.Close()
}
