// Package frame holds the codec transport unit: one 32-bit word carrying a
// signed 16-bit sample per stereo channel.
package frame

const (
	Left  = 0
	Right = 1

	Channels = 2
)

// Packed is the 32-bit word exchanged with the codec. The left channel sits
// in the low half-word and the right channel in the high half-word, which is
// the little-endian layout of the codec's {uint32, int16[2]} union.
type Packed uint32

func Pack(left, right int16) Packed {
	return Packed(uint32(uint16(left)) | uint32(uint16(right))<<16)
}

func (p Packed) Channel(ch int) int16 {
	if ch == Right {
		return int16(uint16(p >> 16))
	}
	return int16(uint16(p))
}

func (p Packed) Left() int16 {
	return p.Channel(Left)
}

func (p Packed) Right() int16 {
	return p.Channel(Right)
}

func (p Packed) Uint32() uint32 {
	return uint32(p)
}
