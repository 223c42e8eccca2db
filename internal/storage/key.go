package storage

import "strings"

// ObjectKey joins prefix and name with exactly one slash between them
func ObjectKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
