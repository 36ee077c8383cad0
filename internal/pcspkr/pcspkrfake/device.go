// Package pcspkrfake provides an in-memory tone device with a virtual clock.
package pcspkrfake

import (
	"fmt"
	"os"
	"time"

	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

// Device records every event written to it and the virtual time at which it was written.
type Device struct {
	Path    string                // Path passed to Open.
	Events  []contracts.ToneEvent // Events in write order.
	Stamps  []time.Duration       // Stamps[i] is Elapsed when Events[i] was written.
	Elapsed time.Duration         // Sum of all Sleep calls.
	Opens   int
	Closes  int

	// FailAt makes the n-th write (1-based) fail with ErrWriteFailure. Zero never fails.
	FailAt int

	writes int
	open   bool
}

// New returns a closed fake device.
func New() *Device {
	return &Device{}
}

// Open is a contracts.DeviceOpener.
func (d *Device) Open(options *contracts.SessionOptions) (contracts.Device, error) {
	d.Path = options.DevicePath
	d.Opens++
	d.open = true
	return d, nil
}

// Write implements contracts.Device.
func (d *Device) Write(ev contracts.ToneEvent) error {
	if !d.open {
		return fmt.Errorf("%w: %s: %w", contracts.ErrWriteFailure, d.Path, os.ErrClosed)
	}
	d.writes++
	if d.FailAt > 0 && d.writes == d.FailAt {
		return fmt.Errorf("%w: %s: fake write %d rejected", contracts.ErrWriteFailure, d.Path, d.writes)
	}
	d.Events = append(d.Events, ev)
	d.Stamps = append(d.Stamps, d.Elapsed)
	return nil
}

// Close implements contracts.Device.
func (d *Device) Close() error {
	d.Closes++
	d.open = false
	return nil
}

// Sleep advances the virtual clock. Pass it to contracts.WithSleeper.
func (d *Device) Sleep(dur time.Duration) {
	d.Elapsed += dur
}

// IsOpen reports whether the handle is still held.
func (d *Device) IsOpen() bool {
	return d.open
}

// Values returns the Value field of every recorded event.
func (d *Device) Values() []int32 {
	values := make([]int32, len(d.Events))
	for i, ev := range d.Events {
		values[i] = ev.Value
	}
	return values
}
