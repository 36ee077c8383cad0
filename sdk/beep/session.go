package beep

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/leandrodaf/pcspkr/sdk/contracts"
	"go.uber.org/multierr"
)

var _ contracts.Player = (*Session)(nil)

// Session drives one open tone device. It is not safe for concurrent use:
// the speaker produces a single frequency at a time.
type Session struct {
	logger      contracts.Logger
	ownedLogger io.Closer // Logger built by Open; closed last by Close.
	device      contracts.Device
	path        string
	base        float64
	sleep       func(time.Duration)

	event  contracts.ToneEvent // Reused for every write.
	failed error               // First write failure; sticky.
	closed bool
}

func newSession(device contracts.Device, options *contracts.SessionOptions) *Session {
	return &Session{
		logger: options.Logger,
		device: device,
		path:   options.DevicePath,
		base:   options.BaseFrequency,
		sleep:  options.Sleep,
		event:  contracts.NewToneEvent(0),
	}
}

// BaseFrequency returns the reference pitch used by PlayNamedNote.
func (s *Session) BaseFrequency() float64 {
	return s.base
}

// Pitch returns the frequency of name in octave for this session's base frequency.
func (s *Session) Pitch(name contracts.PitchName, octave int) (float64, error) {
	return PitchAt(s.base, name, octave)
}

// PlayNote emits frequencyHz, blocks for durationMs, then emits silence.
// The frequency is rounded to whole hertz.
func (s *Session) PlayNote(frequencyHz, durationMs float64) error {
	hz, err := toneValue(frequencyHz)
	if err != nil {
		return s.reject(err)
	}
	d, err := toDuration(durationMs)
	if err != nil {
		return s.reject(err)
	}

	if err := s.emit(hz); err != nil {
		return err
	}
	s.pause(d)
	return s.emit(0)
}

// PlayNamedNote plays the pitch of name in octave for durationMs.
func (s *Session) PlayNamedNote(name contracts.PitchName, octave int, durationMs float64) error {
	hz, err := s.Pitch(name, octave)
	if err != nil {
		return s.reject(err)
	}
	return s.PlayNote(hz, durationMs)
}

// Rest silences the device, even if it already is, then blocks for durationMs.
func (s *Session) Rest(durationMs float64) error {
	d, err := toDuration(durationMs)
	if err != nil {
		return s.reject(err)
	}
	if err := s.emit(0); err != nil {
		return err
	}
	s.pause(d)
	return nil
}

// Close writes a silence event and releases the device. The handle is
// released even when the silence write fails, including after an earlier
// write failure. A logger built by Open is flushed and closed last.
// Calls after the first return nil.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	defer releaseDevice()

	var err error
	s.event.Value = 0
	if werr := s.device.Write(s.event); werr != nil {
		err = multierr.Append(err, asWriteFailure(werr))
	}
	err = multierr.Append(err, s.device.Close())

	if err != nil {
		s.logger.Error("tone session closed with errors",
			s.logger.Field().String("path", s.path),
			s.logger.Field().Error("error", err))
	} else {
		s.logger.Info("tone session closed", s.logger.Field().String("path", s.path))
	}
	return multierr.Append(err, closeLogger(s.ownedLogger))
}

// emit writes one tone event. After the first failure the session refuses further writes.
func (s *Session) emit(value int32) error {
	if s.closed {
		return contracts.ErrSessionClosed
	}
	if s.failed != nil {
		return s.failed
	}

	s.event.Value = value
	if err := s.device.Write(s.event); err != nil {
		s.failed = asWriteFailure(err)
		s.logger.Error("tone write failed",
			s.logger.Field().String("path", s.path),
			s.logger.Field().Int32("value", value),
			s.logger.Field().Error("error", s.failed))
		return s.failed
	}
	s.logger.Debug("tone event written",
		s.logger.Field().Uint16("type", s.event.Type),
		s.logger.Field().Uint16("code", s.event.Code),
		s.logger.Field().Int32("value", value))
	return nil
}

func (s *Session) pause(d time.Duration) {
	s.logger.Debug("sleeping", s.logger.Field().Duration("duration", d))
	s.sleep(d)
}

// reject logs an argument error. Nothing has been written to the device.
func (s *Session) reject(err error) error {
	if s.closed {
		return contracts.ErrSessionClosed
	}
	s.logger.Error("tone request rejected", s.logger.Field().Error("error", err))
	return err
}

func asWriteFailure(err error) error {
	if errors.Is(err, contracts.ErrWriteFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", contracts.ErrWriteFailure, err)
}

// toneValue converts hertz to the event's int32 value.
func toneValue(hz float64) (int32, error) {
	if hz < 0 || math.IsNaN(hz) || math.IsInf(hz, 0) || math.Round(hz) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v Hz", contracts.ErrInvalidFrequency, hz)
	}
	return int32(math.Round(hz)), nil
}

// maxMicros bounds the microsecond count so that scaling to nanoseconds cannot
// overflow. The float64 conversion may round up, hence the >= comparison.
const maxMicros = float64(math.MaxInt64 / int64(time.Microsecond))

// toDuration converts milliseconds to whole microseconds; sub-microsecond parts are dropped.
func toDuration(ms float64) (time.Duration, error) {
	if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, fmt.Errorf("%w: %v ms", contracts.ErrInvalidDuration, ms)
	}
	us := ms * 1000
	if us >= maxMicros {
		return 0, fmt.Errorf("%w: %v ms", contracts.ErrInvalidDuration, ms)
	}
	return time.Duration(us) * time.Microsecond, nil
}
