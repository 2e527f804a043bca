// Package textcodec converts text to and from hexadecimal, binary and decimal
// representations. Hex and binary work on the UTF-8 bytes of the text;
// decimal works on Unicode code points.
package textcodec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrOddLength      = errors.New("hex string length must be even")
	ErrBinaryLength   = errors.New("binary string length must be divisible by 8")
	ErrInvalidUTF8    = errors.New("invalid UTF-8 sequence")
	ErrInvalidDecimal = errors.New("invalid decimal value")
	ErrUnknownOption  = errors.New("unknown option")
)

// Encoding selects how text maps to bytes.
type Encoding string

const (
	UTF8  Encoding = "utf8"
	ASCII Encoding = "ascii"
)

// Layout selects how encoded values are joined.
type Layout string

const (
	Spaced   Layout = "spaced"
	Compact  Layout = "compact"
	Prefixed Layout = "prefixed"
)

// Separator is the delimiter used by the spaced and prefixed layouts.
type Separator string

const (
	Space   Separator = "space"
	Comma   Separator = "comma"
	Newline Separator = "newline"
)

func (s Separator) text() string {
	switch s {
	case Comma:
		return ", "
	case Newline:
		return "\n"
	default:
		return " "
	}
}

// Options controls encoding output.
type Options struct {
	Encoding  Encoding  `json:"encoding" yaml:"encoding"`
	Layout    Layout    `json:"layout" yaml:"layout"`
	Separator Separator `json:"separator" yaml:"separator"`
	Lowercase bool      `json:"lowercase" yaml:"lowercase"`
}

// DefaultOptions is UTF-8, spaced, single-space separated, uppercase hex.
func DefaultOptions() Options {
	return Options{Encoding: UTF8, Layout: Spaced, Separator: Space}
}

// Validate rejects unknown option values. Empty fields are allowed and mean the default.
func (o Options) Validate() error {
	switch o.Encoding {
	case "", UTF8, ASCII:
	default:
		return fmt.Errorf("%w: encoding %q", ErrUnknownOption, o.Encoding)
	}
	switch o.Layout {
	case "", Spaced, Compact, Prefixed:
	default:
		return fmt.Errorf("%w: layout %q", ErrUnknownOption, o.Layout)
	}
	switch o.Separator {
	case "", Space, Comma, Newline:
	default:
		return fmt.Errorf("%w: separator %q", ErrUnknownOption, o.Separator)
	}
	return nil
}

// ToASCII replaces every code point above 0x7F with '?'.
func ToASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r > 0x7F {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Bytes returns the byte form of text under enc.
func Bytes(text string, enc Encoding) []byte {
	if enc == ASCII {
		text = ToASCII(text)
	}
	return []byte(text)
}

// bytesToText decodes b under enc. UTF-8 decoding is strict; ASCII maps
// bytes above 0x7F to '?'.
func bytesToText(b []byte, enc Encoding) (string, error) {
	if enc == ASCII {
		out := make([]byte, len(b))
		for i, c := range b {
			if c > 0x7F {
				c = '?'
			}
			out[i] = c
		}
		return string(out), nil
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// Conversion is every representation of one piece of text.
type Conversion struct {
	Text      string `json:"text"`
	Hex       string `json:"hex"`
	Binary    string `json:"binary"`
	Decimal   string `json:"decimal"`
	CharCount int    `json:"char_count"`
	ByteCount int    `json:"byte_count"`
}

// Convert renders text in all three representations.
func Convert(text string, opts Options) Conversion {
	return Conversion{
		Text:      text,
		Hex:       EncodeHex(text, opts),
		Binary:    EncodeBinary(text, opts),
		Decimal:   EncodeDecimal(text, opts),
		CharCount: utf8.RuneCountInString(text),
		ByteCount: len(Bytes(text, opts.Encoding)),
	}
}
