//go:build !linux
// +build !linux

package pcspkrlinux

import (
	"fmt"
	"runtime"

	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

// OpenDevice always fails: the PC speaker evdev node only exists on Linux.
func OpenDevice(options *contracts.SessionOptions) (contracts.Device, error) {
	options.Logger.Warn("PC speaker device requested on non-Linux system",
		options.Logger.Field().String("os", runtime.GOOS))
	return nil, fmt.Errorf("%w: %w: %s", contracts.ErrDeviceUnavailable, contracts.ErrUnsupportedOS, runtime.GOOS)
}
