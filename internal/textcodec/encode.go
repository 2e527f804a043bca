package textcodec

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// EncodeHex renders the bytes of text as two-digit hex values.
func EncodeHex(text string, opts Options) string {
	b := Bytes(text, opts.Encoding)
	if len(b) == 0 {
		return ""
	}

	values := make([]string, len(b))
	for i, c := range b {
		v := hex.EncodeToString([]byte{c})
		if !opts.Lowercase {
			v = strings.ToUpper(v)
		}
		if opts.Layout == Prefixed {
			v = "0x" + v
		}
		values[i] = v
	}

	if opts.Layout == Compact {
		return strings.Join(values, "")
	}
	return strings.Join(values, opts.Separator.text())
}

// EncodeBinary renders the bytes of text as zero-padded 8-bit groups.
func EncodeBinary(text string, opts Options) string {
	b := Bytes(text, opts.Encoding)
	values := make([]string, len(b))
	for i, c := range b {
		values[i] = fmt.Sprintf("%08b", c)
	}
	if opts.Layout == Compact {
		return strings.Join(values, "")
	}
	return strings.Join(values, opts.Separator.text())
}

// EncodeDecimal renders each code point of text in base 10. Under ASCII
// encoding code points above 127 become 63 ('?'). The compact layout has no
// meaning for variable-width decimals and is treated as spaced.
func EncodeDecimal(text string, opts Options) string {
	values := make([]string, 0, len(text))
	for _, r := range text {
		if opts.Encoding == ASCII && r > 0x7F {
			r = '?'
		}
		values = append(values, strconv.Itoa(int(r)))
	}
	return strings.Join(values, opts.Separator.text())
}
