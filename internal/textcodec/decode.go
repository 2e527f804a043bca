package textcodec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	nonHex    = regexp.MustCompile(`[^0-9A-Fa-f]`)
	hexPrefix = regexp.MustCompile(`(?i)0x`)
	nonBinary = regexp.MustCompile(`[^01]`)
)

// cleanHex drops 0x prefixes and then everything that is not a hex digit.
// Every layout is read this way, so a prefixed dump pasted under the spaced
// layout still decodes.
func cleanHex(input string) string {
	return nonHex.ReplaceAllString(hexPrefix.ReplaceAllString(input, ""), "")
}

// DecodeHex parses hex written in any known layout and decodes the bytes
// under enc. Characters other than hex digits are ignored.
func DecodeHex(input string, layout Layout, enc Encoding) (string, []byte, error) {
	switch layout {
	case "", Spaced, Compact, Prefixed:
	default:
		return "", nil, fmt.Errorf("%w: layout %q", ErrUnknownOption, layout)
	}
	clean := cleanHex(input)
	if clean == "" {
		return "", nil, nil
	}
	if len(clean)%2 != 0 {
		return "", nil, ErrOddLength
	}

	b := make([]byte, len(clean)/2)
	for i := 0; i < len(clean); i += 2 {
		v, err := strconv.ParseUint(clean[i:i+2], 16, 8)
		if err != nil {
			return "", nil, fmt.Errorf("invalid hex byte %q: %w", clean[i:i+2], err)
		}
		b[i/2] = byte(v)
	}

	text, err := bytesToText(b, enc)
	if err != nil {
		return "", b, fmt.Errorf("decode hex: %w", err)
	}
	return text, b, nil
}

// DecodeBinary keeps only 0 and 1 characters, splits them into bytes and
// decodes them under enc.
func DecodeBinary(input string, enc Encoding) (string, error) {
	clean := nonBinary.ReplaceAllString(input, "")
	if clean == "" {
		return "", nil
	}
	if len(clean)%8 != 0 {
		return "", ErrBinaryLength
	}

	b := make([]byte, len(clean)/8)
	for i := 0; i < len(clean); i += 8 {
		v, err := strconv.ParseUint(clean[i:i+8], 2, 8)
		if err != nil {
			return "", fmt.Errorf("invalid binary byte %q: %w", clean[i:i+8], err)
		}
		b[i/8] = byte(v)
	}

	text, err := bytesToText(b, enc)
	if err != nil {
		return "", fmt.Errorf("decode binary: %w", err)
	}
	return text, nil
}

// DecodeDecimal parses base-10 code points separated as sep describes
// (space means any whitespace). Under ASCII, code points above 127 become '?'.
func DecodeDecimal(input string, sep Separator, enc Encoding) (string, error) {
	var tokens []string
	switch sep {
	case Comma:
		tokens = strings.Split(strings.TrimSpace(input), ",")
	case Newline:
		tokens = strings.Split(strings.TrimSpace(input), "\n")
	default:
		tokens = strings.FieldsFunc(input, unicode.IsSpace)
	}

	var b strings.Builder
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		cp, err := strconv.ParseInt(tok, 10, 32)
		if err != nil || cp < 0 || cp > unicode.MaxRune {
			return "", fmt.Errorf("%w: %s", ErrInvalidDecimal, tok)
		}
		r := rune(cp)
		if enc == ASCII && r > 0x7F {
			r = '?'
		}
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: %s is not a valid code point", ErrInvalidDecimal, tok)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
