package textcodec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHexLayouts(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"spaced upper", Options{Layout: Spaced, Separator: Space}, "48 69 21"},
		{"spaced comma lower", Options{Layout: Spaced, Separator: Comma, Lowercase: true}, "48, 69, 21"},
		{"spaced newline", Options{Layout: Spaced, Separator: Newline}, "48\n69\n21"},
		{"compact ignores separator", Options{Layout: Compact, Separator: Comma}, "486921"},
		{"prefixed", Options{Layout: Prefixed, Separator: Space}, "0x48 0x69 0x21"},
		{"prefixed comma", Options{Layout: Prefixed, Separator: Comma}, "0x48, 0x69, 0x21"},
		{"zero value options", Options{}, "48 69 21"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeHex("Hi!", tt.opts))
		})
	}
}

func TestEncodeHexUTF8AndASCII(t *testing.T) {
	assert.Equal(t, "C3 A9", EncodeHex("é", DefaultOptions()))
	assert.Equal(t, "c3a9", EncodeHex("é", Options{Layout: Compact, Lowercase: true}))
	assert.Equal(t, "F0 9F 98 80", EncodeHex("😀", DefaultOptions()))

	ascii := Options{Encoding: ASCII}
	assert.Equal(t, "63 61 66 3F", EncodeHex("café", ascii))
	assert.Equal(t, "3F", EncodeHex("😀", ascii), "one code point becomes one '?'")
	assert.Equal(t, "", EncodeHex("", DefaultOptions()))
}

func TestEncodeBinaryAndDecimal(t *testing.T) {
	assert.Equal(t, "01000001 00001010", EncodeBinary("A\n", DefaultOptions()))
	assert.Equal(t, "0100000100001010", EncodeBinary("A\n", Options{Layout: Compact}))
	assert.Equal(t, "11000011 10101001", EncodeBinary("é", DefaultOptions()))

	assert.Equal(t, "72, 105, 233", EncodeDecimal("Hié", Options{Separator: Comma}))
	assert.Equal(t, "72 105 63", EncodeDecimal("Hié", Options{Encoding: ASCII}))
	assert.Equal(t, "128512", EncodeDecimal("😀", DefaultOptions()))
}

func TestHexRoundTrip(t *testing.T) {
	texts := []string{"hello, world", "naïve café", "日本語テキスト", "emoji 😀🎉", "tab\tand\nnewline", "0x41"}
	layouts := []Layout{Spaced, Compact, Prefixed}
	seps := []Separator{Space, Comma, Newline}

	for _, text := range texts {
		for _, layout := range layouts {
			for _, sep := range seps {
				for _, lower := range []bool{false, true} {
					encoded := EncodeHex(text, Options{Layout: layout, Separator: sep, Lowercase: lower})
					got, b, err := DecodeHex(encoded, layout, UTF8)
					require.NoError(t, err, "%q %s %s", text, layout, sep)
					assert.Equal(t, text, got)
					assert.Equal(t, []byte(text), b)
				}
			}
		}
	}
}

func TestDecodeHex(t *testing.T) {
	got, _, err := DecodeHex("48 65 6c 6c 6f", Spaced, UTF8)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)

	got, _, err = DecodeHex("0x48,0x69", Prefixed, UTF8)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got)

	_, _, err = DecodeHex("486", Compact, UTF8)
	assert.True(t, errors.Is(err, ErrOddLength))

	_, b, err := DecodeHex("C3 28", Spaced, UTF8)
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
	assert.Equal(t, []byte{0xC3, 0x28}, b)

	got, _, err = DecodeHex("C3 28", Spaced, ASCII)
	require.NoError(t, err)
	assert.Equal(t, "?(", got)

	got, b, err = DecodeHex("  zz ", Spaced, UTF8)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Nil(t, b)
}

func TestDecodeHexStripsPrefixesInEveryLayout(t *testing.T) {
	for _, layout := range []Layout{Spaced, Compact, Prefixed, ""} {
		got, b, err := DecodeHex("0x48 0X65,0x6C", layout, UTF8)
		require.NoError(t, err, layout)
		assert.Equal(t, "Hel", got, layout)
		assert.Equal(t, []byte{0x48, 0x65, 0x6C}, b, layout)
	}

	_, _, err := DecodeHex("48", "fancy", UTF8)
	assert.True(t, errors.Is(err, ErrUnknownOption))
}

func TestDecodeBinary(t *testing.T) {
	got, err := DecodeBinary("01001000 01101001", UTF8)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got)

	_, err = DecodeBinary("0100100", UTF8)
	assert.True(t, errors.Is(err, ErrBinaryLength))

	got, err = DecodeBinary("11000011 10101001", ASCII)
	require.NoError(t, err)
	assert.Equal(t, "??", got)

	_, err = DecodeBinary("11111111", UTF8)
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestDecodeDecimal(t *testing.T) {
	got, err := DecodeDecimal("72 105\n233", Space, UTF8)
	require.NoError(t, err)
	assert.Equal(t, "Hié", got)

	got, err = DecodeDecimal("72, 105, 233", Comma, ASCII)
	require.NoError(t, err)
	assert.Equal(t, "Hi?", got)

	got, err = DecodeDecimal("72\n\n105\n", Newline, UTF8)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got)

	for _, bad := range []string{"72 abc", "-1", "1114112", "55296"} {
		_, err = DecodeDecimal(bad, Space, UTF8)
		assert.True(t, errors.Is(err, ErrInvalidDecimal), bad)
	}
}

func TestConvert(t *testing.T) {
	c := Convert("Hé", DefaultOptions())
	assert.Equal(t, "48 C3 A9", c.Hex)
	assert.Equal(t, "01001000 11000011 10101001", c.Binary)
	assert.Equal(t, "72 233", c.Decimal)
	assert.Equal(t, 2, c.CharCount)
	assert.Equal(t, 3, c.ByteCount)

	c = Convert("Hé", Options{Encoding: ASCII})
	assert.Equal(t, 2, c.ByteCount)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{}.Validate())
	assert.NoError(t, DefaultOptions().Validate())
	assert.True(t, errors.Is(Options{Encoding: "latin1"}.Validate(), ErrUnknownOption))
	assert.True(t, errors.Is(Options{Layout: "fancy"}.Validate(), ErrUnknownOption))
	assert.True(t, errors.Is(Options{Separator: "tab"}.Validate(), ErrUnknownOption))
}
