package beep

import (
	"fmt"
	"math"

	"github.com/leandrodaf/pcspkr/sdk/contracts"
)

// ReferenceOctave is the octave in which a pitch sounds at base * scale * ratio.
const ReferenceOctave = 5

// scale is the D# ratio of the table, applied to every pitch. It puts C5 near
// 523.25 Hz and A4 within 0.001 Hz below the base frequency (439.999 at 440),
// which becomes the base exactly once rounded to whole hertz.
const scale = 1.1892

// pitchTable holds equal-tempered ratios relative to C.
var pitchTable = map[contracts.PitchName]float64{
	contracts.C:      1.0000,
	contracts.CSharp: 1.0595,
	contracts.D:      1.1225,
	contracts.DSharp: 1.1892,
	contracts.E:      1.2599,
	contracts.F:      1.3348,
	contracts.FSharp: 1.4142,
	contracts.G:      1.4983,
	contracts.GSharp: 1.5874,
	contracts.A:      1.6818,
	contracts.ASharp: 1.7818,
	contracts.B:      1.8877,
}

var enharmonics = map[contracts.PitchName]contracts.PitchName{
	contracts.DFlat: contracts.CSharp,
	contracts.EFlat: contracts.DSharp,
	contracts.GFlat: contracts.FSharp,
	contracts.AFlat: contracts.GSharp,
	contracts.BFlat: contracts.ASharp,
}

// Ratio returns the table ratio of name relative to C. Flat aliases resolve to their sharp.
func Ratio(name contracts.PitchName) (float64, error) {
	if sharp, ok := enharmonics[name]; ok {
		name = sharp
	}
	ratio, ok := pitchTable[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", contracts.ErrUnknownPitch, name)
	}
	return ratio, nil
}

// Pitch returns the frequency of name in octave using DefaultBaseFrequency.
func Pitch(name contracts.PitchName, octave int) (float64, error) {
	return PitchAt(contracts.DefaultBaseFrequency, name, octave)
}

// PitchAt returns base * 1.1892 * ratio(name) * 2^octave / 2^5.
func PitchAt(base float64, name contracts.PitchName, octave int) (float64, error) {
	ratio, err := Ratio(name)
	if err != nil {
		return 0, err
	}
	return math.Ldexp(base*scale*ratio, octave-ReferenceOctave), nil
}

// PitchNames lists the twelve pitch classes in ascending order.
func PitchNames() []contracts.PitchName {
	return []contracts.PitchName{
		contracts.C, contracts.CSharp, contracts.D, contracts.DSharp,
		contracts.E, contracts.F, contracts.FSharp, contracts.G,
		contracts.GSharp, contracts.A, contracts.ASharp, contracts.B,
	}
}
