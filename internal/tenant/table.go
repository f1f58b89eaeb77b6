package tenant

import (
	"strings"

	"platter-guest/internal/domain"
)

// ParseTable splits a scanned QR path segment of the form "{id}-{name}" on
// the first hyphen. The id is case-normalized to uppercase; the remainder,
// hyphens included, is the table name.
func ParseTable(segment string) domain.Table {
	id, name, _ := strings.Cut(segment, "-")
	return domain.Table{
		ID:   strings.ToUpper(id),
		Name: name,
	}
}
