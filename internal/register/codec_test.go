// internal/register/codec_test.go
package register

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatRoundTrip(t *testing.T) {
	values := []float32{
		0,
		1,
		-1,
		0.001,
		-0.001,
		-273.15,
		1250.75,
		-0.333,
		65535.5,
		3.4e38,
		1.2e-38,
	}

	for _, v := range values {
		require.Equal(t, v, DecodeFloat32(EncodeFloat32(v)), "value %v", v)
	}
}

func TestFloatWordOrder(t *testing.T) {
	// 1.0 = 0x3F800000: low half first, high half second.
	words := EncodeFloat32(1.0)
	require.Equal(t, uint16(0x0000), words[0])
	require.Equal(t, uint16(0x3F80), words[1])

	// -2.5 = 0xC0200000
	words = EncodeFloat32(-2.5)
	require.Equal(t, uint16(0x0000), words[0])
	require.Equal(t, uint16(0xC020), words[1])

	// A value with a non-zero low half.
	// 0.1 = 0x3DCCCCCD
	words = EncodeFloat32(0.1)
	require.Equal(t, uint16(0xCCCD), words[0])
	require.Equal(t, uint16(0x3DCC), words[1])
}

func TestNegativeZeroBitsPreserved(t *testing.T) {
	negZero := math.Float32frombits(0x80000000)
	got := DecodeFloat32(EncodeFloat32(negZero))
	require.Equal(t, uint32(0x80000000), math.Float32bits(got))
}
