//go:build linux
// +build linux

package pcspkrlinux

import (
	"fmt"

	"github.com/leandrodaf/pcspkr/internal/inputevent"
	"github.com/leandrodaf/pcspkr/sdk/contracts"
	"golang.org/x/sys/unix"
)

// Device writes tone events to an evdev node.
type Device struct {
	logger contracts.Logger
	path   string
	fd     int
	buf    [inputevent.Size]byte
}

// OpenDevice opens options.DevicePath write-only.
func OpenDevice(options *contracts.SessionOptions) (contracts.Device, error) {
	fd, err := unix.Open(options.DevicePath, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", contracts.ErrDeviceUnavailable, options.DevicePath, err)
	}
	options.Logger.Debug("tone device opened",
		options.Logger.Field().String("path", options.DevicePath),
		options.Logger.Field().Int("fd", fd))

	return &Device{
		logger: options.Logger,
		path:   options.DevicePath,
		fd:     fd,
	}, nil
}

// Write encodes ev and writes it with a single write(2) call.
// A short write is reported, never resumed.
func (d *Device) Write(ev contracts.ToneEvent) error {
	if d.fd < 0 {
		return fmt.Errorf("%w: %s: %w", contracts.ErrWriteFailure, d.path, unix.EBADF)
	}
	inputevent.Put(d.buf[:], ev)

	var (
		n   int
		err error
	)
	for {
		n, err = unix.Write(d.fd, d.buf[:])
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", contracts.ErrWriteFailure, d.path, err)
	}
	if n != len(d.buf) {
		return fmt.Errorf("%w: %s: short write of %d/%d bytes", contracts.ErrWriteFailure, d.path, n, len(d.buf))
	}
	return nil
}

// Close releases the file descriptor. Later calls are no-ops.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	fd := d.fd
	d.fd = -1
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("closing %s: %w", d.path, err)
	}
	d.logger.Debug("tone device closed", d.logger.Field().String("path", d.path))
	return nil
}
