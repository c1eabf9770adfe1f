package errors

import (
	"math"
	"unicode"
)

// maxTileIDLength bounds tile identifiers accepted from external input.
const maxTileIDLength = 256

// ValidateTileID validates a tile identifier read from external input.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters (IDs end up in terminal output and JSON keys)
//   - Maximum length of 256 characters
func ValidateTileID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "tile id cannot be empty")
	}

	if len(id) > maxTileIDLength {
		return New(ErrCodeInvalidInput, "tile id too long (max %d characters)", maxTileIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "tile id %q contains invalid control characters", id)
		}
	}

	return nil
}

// ValidateWidth validates a viewport width. Widths must be finite and
// non-negative; the breakpoint resolver itself is lenient, this is for
// values coming from flags and files.
func ValidateWidth(width float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return New(ErrCodeInvalidWidth, "viewport width must be finite")
	}
	if width < 0 {
		return New(ErrCodeInvalidWidth, "viewport width must be non-negative, got %g", width)
	}
	return nil
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
