//go:build linux
// +build linux

package pcspkrlinux

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leandrodaf/pcspkr/internal/inputevent"
	"github.com/leandrodaf/pcspkr/internal/logger"
	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

func testOptions(path string) *contracts.SessionOptions {
	return &contracts.SessionOptions{Logger: logger.NewNopLogger(), DevicePath: path}
}

func TestOpenMissingDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-event")
	_, err := OpenDevice(testOptions(path))
	if !errors.Is(err, contracts.ErrDeviceUnavailable) {
		t.Fatalf("got %v, want ErrDeviceUnavailable", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want the ENOENT cause preserved", err)
	}
}

func TestWriteProducesFullRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event-spkr")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	dev, err := OpenDevice(testOptions(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []int32{440, 0} {
		if err := dev.Write(contracts.NewToneEvent(v)); err != nil {
			t.Fatal(err)
		}
	}
	if err := dev.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 2*inputevent.Size {
		t.Fatalf("wrote %d bytes, want %d", len(data), 2*inputevent.Size)
	}
	events, err := inputevent.DecodeAll(data)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []int32{440, 0} {
		ev := events[i]
		if ev.Type != contracts.EventSound || ev.Code != contracts.SoundTone || ev.Value != want {
			t.Errorf("event %d = %+v, want tone %d", i, ev, want)
		}
	}
}

func TestWriteAfterCloseFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event-spkr")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	dev, err := OpenDevice(testOptions(path))
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Close(); err != nil {
		t.Fatal(err)
	}
	if err := dev.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
	if err := dev.Write(contracts.NewToneEvent(440)); !errors.Is(err, contracts.ErrWriteFailure) {
		t.Errorf("got %v, want ErrWriteFailure", err)
	}
}

func TestWriteToFullDeviceFails(t *testing.T) {
	// /dev/full accepts open(O_WRONLY) but every write fails with ENOSPC.
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	dev, err := OpenDevice(testOptions("/dev/full"))
	if err != nil {
		t.Skipf("cannot open /dev/full: %v", err)
	}
	defer dev.Close()

	if err := dev.Write(contracts.NewToneEvent(440)); !errors.Is(err, contracts.ErrWriteFailure) {
		t.Errorf("got %v, want ErrWriteFailure", err)
	}
}
