// Package buzzhash implements the 64-bit rolling hash used to derive the
// suffix of generated class names.
//
// # Algorithm
//
// The input is taken as UTF-16 code units, so a rune outside the Basic
// Multilingual Plane contributes its two surrogates. The accumulator starts
// from a fixed seed. For every unit the accumulator is rotated left by one bit
// and XORed with a table value selected by the low byte of the unit:
//
//	acc = rotl(acc, 1) ^ table[u & 0xFF]
//
// Because the rotation wraps after 64 positions, two inputs that differ only
// in units exactly 64 positions apart can cancel each other out. The
// anti-collision variant breaks that period: when a unit equals the unit found
// 64*k positions earlier, its table value is perturbed by a second mixing
// table rotated by k before it is folded in.
//
// # Suffixes
//
// Generated names carry the upper 32 bits of the hash as eight lowercase hex
// digits:
//
//	suffix := buzzhash.HexMid32("Claimcom.acme.ClaimBean", true)
//
// The tables are constant data, so every function here is safe for concurrent
// use and returns identical results across processes.
package buzzhash
