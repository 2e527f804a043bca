package qrscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	only := func(mut func(*ExtractOptions)) ExtractOptions {
		o := DefaultExtractOptions()
		mut(&o)
		return o
	}

	tests := []struct {
		name string
		text string
		opts ExtractOptions
		want []string
	}{
		{
			name: "url keeps scheme",
			text: "Visit https://Example.com/Path today",
			opts: DefaultExtractOptions(),
			want: []string{"https://example.com/path"},
		},
		{
			name: "bare domain gets https",
			text: "go to www.calckit.dev now",
			opts: DefaultExtractOptions(),
			want: []string{"https://www.calckit.dev"},
		},
		{
			name: "email without url extraction",
			text: "Mail ME@Example.org",
			opts: only(func(o *ExtractOptions) { o.ExtractURLs = false }),
			want: []string{"me@example.org"},
		},
		{
			name: "phone trimmed",
			text: "Call 555-123-4567",
			opts: only(func(o *ExtractOptions) {
				o.ExtractURLs = false
				o.ExtractEmails = false
			}),
			want: []string{"555-123-4567"},
		},
		{
			name: "duplicates removed",
			text: "a.com a.com",
			opts: DefaultExtractOptions(),
			want: []string{"https://a.com"},
		},
		{
			name: "falls back to normalized text",
			text: "  Hello   World \n\n Again ",
			opts: DefaultExtractOptions(),
			want: []string{"hello world again"},
		},
		{
			name: "preserve case and lines",
			text: "Hello\n\nWorld",
			opts: ExtractOptions{PreserveCase: true},
			want: []string{"Hello\n\nWorld"},
		},
		{
			name: "remove empty lines only",
			text: "Hello\n  \nWorld",
			opts: ExtractOptions{PreserveCase: true, RemoveEmptyLines: true},
			want: []string{"Hello\nWorld"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text, tt.opts))
		})
	}
}

func TestExtractBlank(t *testing.T) {
	assert.Nil(t, Extract(" \n\t", DefaultExtractOptions()))
}
