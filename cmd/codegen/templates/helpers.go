package templates

import (
	"fmt"
	"strings"
)

// prefixedStrings renders "P0, P1, ..." for count entries.
func prefixedStrings(prefix string, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return strings.Join(parts, ", ")
}

// declaredArgs renders "d0 D0, d1 D1, ..." for count entries.
func declaredArgs(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("d%d D%d", i, i)
	}
	return strings.Join(parts, ", ")
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
