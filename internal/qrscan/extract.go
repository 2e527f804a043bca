package qrscan

import (
	"regexp"
	"strings"
)

var (
	urlPattern   = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+|\S+\.[a-z]{2,}(?:/\S*)?)`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}|\+?[1-9]\d{1,14})`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// ExtractOptions selects what Extract looks for and how it normalizes text.
type ExtractOptions struct {
	ExtractURLs      bool `json:"extract_urls" yaml:"extract_urls"`
	ExtractEmails    bool `json:"extract_emails" yaml:"extract_emails"`
	AutoDetectPhone  bool `json:"auto_detect_phone" yaml:"auto_detect_phone"`
	FormatText       bool `json:"format_text" yaml:"format_text"`
	RemoveEmptyLines bool `json:"remove_empty_lines" yaml:"remove_empty_lines"`
	PreserveCase     bool `json:"preserve_case" yaml:"preserve_case"`
}

// DefaultExtractOptions enables everything except case preservation.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		ExtractURLs:      true,
		ExtractEmails:    true,
		AutoDetectPhone:  true,
		FormatText:       true,
		RemoveEmptyLines: true,
	}
}

// Extract returns the URLs, emails and phone numbers found in text, in that
// order and without duplicates. When nothing matches, the normalized text is
// the only item. Blank input yields nil.
func Extract(text string, opts ExtractOptions) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	processed := text
	if opts.RemoveEmptyLines {
		lines := strings.Split(processed, "\n")
		kept := lines[:0]
		for _, l := range lines {
			if strings.TrimSpace(l) != "" {
				kept = append(kept, l)
			}
		}
		processed = strings.Join(kept, "\n")
	}
	if opts.FormatText {
		processed = strings.TrimSpace(spaceRun.ReplaceAllString(processed, " "))
	}
	if !opts.PreserveCase {
		processed = strings.ToLower(processed)
	}

	var found []string
	if opts.ExtractURLs {
		for _, u := range urlPattern.FindAllString(processed, -1) {
			if !strings.HasPrefix(u, "http") {
				u = "https://" + u
			}
			found = append(found, u)
		}
	}
	if opts.ExtractEmails {
		found = append(found, emailPattern.FindAllString(processed, -1)...)
	}
	if opts.AutoDetectPhone {
		for _, p := range phonePattern.FindAllString(processed, -1) {
			found = append(found, strings.TrimSpace(p))
		}
	}
	if len(found) == 0 {
		return []string{processed}
	}
	return dedupe(found)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
