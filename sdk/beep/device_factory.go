package beep

import (
	"sync/atomic"

	"github.com/leandrodaf/pcspkr/internal/pcspkr/pcspkrlinux"
	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

// defaultDeviceOpener opens the PC speaker evdev node. On non-Linux hosts it
// fails with ErrDeviceUnavailable wrapping ErrUnsupportedOS.
var defaultDeviceOpener contracts.DeviceOpener = pcspkrlinux.OpenDevice

// held is set while a session owns the device; at most one session exists per process.
var held atomic.Bool

// openDevice claims the process-wide slot and opens the device. The claim is
// dropped again if the open fails.
func openDevice(options *contracts.SessionOptions) (contracts.Device, error) {
	if !held.CompareAndSwap(false, true) {
		return nil, contracts.ErrSessionActive
	}
	device, err := options.DeviceOpener(options)
	if err != nil {
		held.Store(false)
		return nil, err
	}
	return device, nil
}

func releaseDevice() {
	held.Store(false)
}
