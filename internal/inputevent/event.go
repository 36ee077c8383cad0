// Package inputevent encodes tone events in the layout of the kernel's struct input_event.
//
//	struct input_event {
//		struct timeval time; // two longs: seconds, microseconds
//		__u16 type;
//		__u16 code;
//		__s32 value;
//	};
//
// Fields use host byte order. The timestamp is ignored by the kernel on write and is left zero.
package inputevent

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

// timevalSize is sizeof(struct timeval) as seen by the kernel input ABI.
const timevalSize = 2 * bits.UintSize / 8

// Size is the number of bytes of one encoded event: 24 on 64-bit hosts, 16 on 32-bit hosts.
const Size = timevalSize + 8

const (
	typeOffset  = timevalSize
	codeOffset  = timevalSize + 2
	valueOffset = timevalSize + 4
)

// Put encodes ev into buf, which must be at least Size bytes long.
func Put(buf []byte, ev contracts.ToneEvent) {
	_ = buf[Size-1]
	clear(buf[:timevalSize])
	binary.NativeEndian.PutUint16(buf[typeOffset:], ev.Type)
	binary.NativeEndian.PutUint16(buf[codeOffset:], ev.Code)
	binary.NativeEndian.PutUint32(buf[valueOffset:], uint32(ev.Value))
}

// Encode returns a freshly allocated record for ev.
func Encode(ev contracts.ToneEvent) []byte {
	buf := make([]byte, Size)
	Put(buf, ev)
	return buf
}

// Decode reads one record from the start of buf.
func Decode(buf []byte) (contracts.ToneEvent, error) {
	if len(buf) < Size {
		return contracts.ToneEvent{}, fmt.Errorf("input event needs %d bytes, got %d", Size, len(buf))
	}
	return contracts.ToneEvent{
		Type:  binary.NativeEndian.Uint16(buf[typeOffset:]),
		Code:  binary.NativeEndian.Uint16(buf[codeOffset:]),
		Value: int32(binary.NativeEndian.Uint32(buf[valueOffset:])),
	}, nil
}

// DecodeAll splits buf into records. A trailing partial record is an error.
func DecodeAll(buf []byte) ([]contracts.ToneEvent, error) {
	if len(buf)%Size != 0 {
		return nil, fmt.Errorf("input event stream of %d bytes is not a multiple of %d", len(buf), Size)
	}
	events := make([]contracts.ToneEvent, 0, len(buf)/Size)
	for i := 0; i+Size <= len(buf); i += Size {
		ev, err := Decode(buf[i:])
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
