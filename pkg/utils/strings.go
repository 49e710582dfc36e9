package utils

import "strconv"

func IsNilOrEmptyString(v *string) bool {
	return v == nil || *v == ""
}

// ParseID parses a decimal row identifier stored as text, e.g. the value of a "sample_id" metadata entry.
func ParseID(v *string) (int64, bool) {
	if IsNilOrEmptyString(v) {
		return 0, false
	}

	id, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
