package customer

import (
	"strconv"
	"strings"
)

// parseID accepts positive decimal surrogate keys that fit a signed 64-bit
// column. Anything else cannot name a stored record, so callers report it as
// not found.
func parseID(raw string) (uint64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
