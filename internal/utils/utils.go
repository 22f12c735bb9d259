// Package utils holds small helpers shared by the command layer.
package utils

// MaskAPIKey hides a secret for diagnostics, keeping the first 3 and last 4 characters
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:3] + "****" + key[len(key)-4:]
}
