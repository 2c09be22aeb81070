package buzzhash

import (
	"fmt"
	"math/bits"
	"unicode/utf16"
)

// window is the rotation period of the accumulator.
const window = 64

// Hash returns the 64-bit hash of s, taken over its UTF-16 code units. When
// antiCollision is true, units that repeat at a multiple of 64 positions
// perturb the rolling state.
func Hash(s string, antiCollision bool) uint64 {
	units := utf16.Encode([]rune(s))
	acc := seed
	for i, u := range units {
		v := table[byte(u)]
		if antiCollision {
			for k, j := 1, i-window; j >= 0; k, j = k+1, j-window {
				if units[j] == u {
					v ^= bits.RotateLeft64(mix[byte(u)], k)
				}
			}
		}
		acc = bits.RotateLeft64(acc, 1) ^ v
	}
	return acc
}

// HexString returns the full hash of s as 16 lowercase hex digits.
func HexString(s string, antiCollision bool) string {
	return fmt.Sprintf("%016x", Hash(s, antiCollision))
}

// HexMid32 returns bits 32-63 of the hash of s as 8 lowercase hex digits.
func HexMid32(s string, antiCollision bool) string {
	return fmt.Sprintf("%08x", uint32(Hash(s, antiCollision)>>32))
}
