package contracts

import "time"

// DefaultDevicePath is the evdev node exposed by the pcspkr driver.
const DefaultDevicePath = "/dev/input/by-path/platform-pcspkr-event-spkr"

// DefaultBaseFrequency is the reference pitch in hertz.
const DefaultBaseFrequency = 440.0

// DeviceOpener opens the tone device described by the options.
type DeviceOpener func(opts *SessionOptions) (Device, error)

// SessionOptions defines the configuration options for a tone session.
type SessionOptions struct {
	Logger        Logger              // Logger for session events and errors.
	LogLevel      LogLevel            // Level of logging to use.
	LogFilePath   string              // When set, logs are written to this file instead of stderr.
	DevicePath    string              // Path of the tone device node.
	BaseFrequency float64             // Reference pitch used by PlayNamedNote.
	Sleep         func(time.Duration) // Blocks between tone on and off.
	DeviceOpener  DeviceOpener        // Overrides the platform device backend.
}

// Option is a function that modifies SessionOptions.
type Option func(*SessionOptions)

// WithLogger sets the logger for the session.
func WithLogger(l Logger) Option {
	return func(opts *SessionOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the session.
func WithLogLevel(level LogLevel) Option {
	return func(opts *SessionOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile directs session logs to the given file.
func WithLogFile(path string) Option {
	return func(opts *SessionOptions) {
		opts.LogFilePath = path
	}
}

// WithDevicePath overrides DefaultDevicePath.
func WithDevicePath(path string) Option {
	return func(opts *SessionOptions) {
		opts.DevicePath = path
	}
}

// WithBaseFrequency overrides DefaultBaseFrequency.
func WithBaseFrequency(hz float64) Option {
	return func(opts *SessionOptions) {
		opts.BaseFrequency = hz
	}
}

// WithSleeper replaces time.Sleep, e.g. with a virtual clock in tests.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(opts *SessionOptions) {
		opts.Sleep = sleep
	}
}

// WithDeviceOpener replaces the platform device backend.
func WithDeviceOpener(open DeviceOpener) Option {
	return func(opts *SessionOptions) {
		opts.DeviceOpener = open
	}
}
