package buzzhash

import (
	"math/bits"
	"regexp"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKnownValues(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		antiCollision bool
		want          string
	}{
		{name: "empty", input: "", want: "d2e53d6f22366a6f"},
		{name: "empty anti-collision", input: "", antiCollision: true, want: "d2e53d6f22366a6f"},
		{name: "single unit", input: "a", want: "5f6c81091dfc2abf"},
		{name: "bean name", input: "Claim", want: "e784d8fb07dc71a6"},
		{name: "identity string", input: "ClaimBeancom.acme.ClaimHomecom.acme.Claim", want: "30e6c4aa0e328818"},
		{name: "non-ascii", input: "héllo wörld ☃", want: "cb577fc0a562b30a"},
		{name: "periodic", input: "x" + strings.Repeat("r", 63) + "x", want: "c390b63b1a56ea80"},
		{name: "periodic anti-collision", input: "x" + strings.Repeat("r", 63) + "x", antiCollision: true, want: "64844b70b47a8cab"},
		{name: "surrogate pair", input: "ok \U0001F600", want: "d99725443cdd7e7c"},
		{name: "surrogate period", input: "\U0001F600" + strings.Repeat("r", 62) + "\U0001F600", want: "1e845f6c956814a1"},
		{name: "surrogate period anti-collision", input: "\U0001F600" + strings.Repeat("r", 62) + "\U0001F600", antiCollision: true, want: "9879a0b781e218d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HexString(tt.input, tt.antiCollision))
			assert.Equal(t, tt.want[:8], HexMid32(tt.input, tt.antiCollision))
		})
	}
}

func TestHashDeterminism(t *testing.T) {
	inputs := []string{"", "Claim", "com.acme.ClaimBean", strings.Repeat("abc", 100)}
	for _, in := range inputs {
		for _, mode := range []bool{false, true} {
			first := Hash(in, mode)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, Hash(in, mode))
			}
		}
	}
}

func TestAntiCollisionShortInputsMatchOriginal(t *testing.T) {
	// Nothing can repeat 64 positions back in a string shorter than 65 units.
	in := strings.Repeat("com.acme.", 7)
	require.Less(t, len(utf16.Encode([]rune(in))), 65)
	assert.Equal(t, Hash(in, false), Hash(in, true))
}

func TestAntiCollisionDiscrimination(t *testing.T) {
	r := strings.Repeat("r", 63)

	pairs := []struct{ x, y string }{
		{"x", "y"},
		{"a", "b"},
		{"0", "9"},
	}

	for _, p := range pairs {
		a := p.x + r + p.x
		b := p.y + r + p.y
		require.Len(t, []rune(a), 65)

		assert.Equal(t, Hash(a, false), Hash(b, false), "plain hash must collide for %q/%q", p.x, p.y)
		assert.NotEqual(t, Hash(a, true), Hash(b, true), "anti-collision hash must separate %q/%q", p.x, p.y)
	}
}

func TestHashCountsSurrogates(t *testing.T) {
	// U+1F600 encodes as D83D DE00 and is folded in as two units.
	want := bits.RotateLeft64(bits.RotateLeft64(seed, 1)^table[0x3d], 1) ^ table[0x00]
	assert.Equal(t, want, Hash("\U0001F600", false))
	assert.Equal(t, want, Hash("\U0001F600", true))

	// 1 + 62 + 1 runes but 66 units: the second emoji's surrogates sit
	// exactly 64 units after the first one's.
	in := "\U0001F600" + strings.Repeat("r", 62) + "\U0001F600"
	require.Len(t, utf16.Encode([]rune(in)), 66)
	assert.NotEqual(t, Hash(in, false), Hash(in, true))
}

func TestHexMid32Format(t *testing.T) {
	hex8 := regexp.MustCompile(`^[0-9a-f]{8}$`)
	inputs := []string{"", "a", "Claim", "\x00", "☃☃☃", strings.Repeat("z", 500)}
	for _, in := range inputs {
		for _, mode := range []bool{false, true} {
			assert.Regexp(t, hex8, HexMid32(in, mode))
		}
	}
}

func TestHexStringFormat(t *testing.T) {
	hex16 := regexp.MustCompile(`^[0-9a-f]{16}$`)
	assert.Regexp(t, hex16, HexString("", false))
	assert.Regexp(t, hex16, HexString("com.acme.Claim", true))
}
