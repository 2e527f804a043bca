package output

import "errors"

// ErrUnsupportedFormat is returned when a format name matches no formatter or alias.
var ErrUnsupportedFormat = errors.New("unsupported output format")
