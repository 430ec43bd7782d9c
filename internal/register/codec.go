// internal/register/codec.go

// Package register converts between semantic values and controller register
// words. The RCS transfers 32-bit floats split across two consecutive
// holding registers.
package register

import "math"

// EncodeFloat32 splits an IEEE-754 single into two register words.
// The first word carries the low half of the value, the second the high half
// (little-endian word order); bytes within each word travel big-endian on
// the wire. The controller silently misreads coordinates if this is flipped,
// with no protocol-level error.
func EncodeFloat32(v float32) [2]uint16 {
	bits := math.Float32bits(v)
	return [2]uint16{uint16(bits), uint16(bits >> 16)}
}

// DecodeFloat32 is the inverse of EncodeFloat32.
func DecodeFloat32(words [2]uint16) float32 {
	bits := uint32(words[1])<<16 | uint32(words[0])
	return math.Float32frombits(bits)
}
