package utils

import (
	"net/url"
)

// ValidateURL reports whether rawURL is an absolute http(s) URL with a host
func ValidateURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	return parsed.Host != ""
}

// ExtractHost extracts the host from a URL, or "" if it does not parse
func ExtractHost(rawURL string) string {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
