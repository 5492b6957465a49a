package services

import (
	"strconv"
	"strings"

	"travelbackend/internal/domain"
)

// parseID parses a positive numeric identifier from path or query input.
func parseID(s, field string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationError{Field: field, Msg: "must be a positive integer"}
	}
	return id, nil
}
