// Package bitstream converts between byte buffers, fixed-width unsigned
// integers, and bit sequences. Bits are represented as a slice of 0/1 byte
// values, most significant bit first, and every function is pure.
package bitstream

import (
	"github.com/chessstego/chessstego-go/internal/errors"
)

// FromBytes expands a byte buffer into its bit sequence, MSB first.
func FromBytes(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}
	return bits
}

// ToBytes packs a bit sequence into bytes, MSB first. A trailing partial
// byte is padded with zero bits. The input slice is not modified.
func ToBytes(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// FromUint renders value as exactly width bits, MSB first. It fails with
// ErrWidthOverflow when value needs more than width bits.
func FromUint(value uint64, width int) ([]byte, error) {
	if width < 64 && value>>uint(width) != 0 {
		return nil, errors.Wrapf(errors.ErrWidthOverflow, "value %d, width %d", value, width)
	}
	bits := make([]byte, width)
	for i := 0; i < width; i++ {
		bits[i] = byte(value>>uint(width-1-i)) & 1
	}
	return bits, nil
}

// ToUint interprets an MSB-first bit sequence as an unsigned integer.
// The sequence must not be longer than 64 bits.
func ToUint(bits []byte) uint64 {
	var value uint64
	for _, bit := range bits {
		value = value<<1 | uint64(bit&1)
	}
	return value
}
