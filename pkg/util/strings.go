// Package util provides small helpers shared across guidctl packages.
package util

// MaxDetailSize is the default maximum size for stored response details (4KB).
const MaxDetailSize = 4 * 1024

// TruncateBody truncates a string to maxSize bytes, appending "...(truncated)"
// if truncated. If maxSize <= 0, uses MaxDetailSize.
func TruncateBody(data string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxDetailSize
	}
	if len(data) > maxSize {
		return data[:maxSize] + "...(truncated)"
	}
	return data
}
