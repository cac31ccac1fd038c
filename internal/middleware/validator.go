package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

// maxAnalysisImages caps the photo payload of one analysis request. The
// capture screen offers five slots; anything beyond that is a malformed
// request, not a real capture.
const maxAnalysisImages = 5

// ValidateSessionID checks the session id shape (UUID).
func ValidateSessionID(id string) error {
	if id == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	pattern := `^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`
	matched, _ := regexp.MatchString(pattern, id)
	if !matched {
		return fmt.Errorf("invalid session ID format")
	}
	return nil
}

// ValidateReportID checks the report id shape: report-<millis>-<suffix>.
func ValidateReportID(id string) error {
	if id == "" {
		return fmt.Errorf("report ID cannot be empty")
	}
	pattern := `^report-[0-9]+(-[a-zA-Z0-9]+)?$`
	matched, _ := regexp.MatchString(pattern, id)
	if !matched {
		return fmt.Errorf("invalid report ID format")
	}
	return nil
}

// ValidateImageCount bounds the analysis photo payload.
func ValidateImageCount(n int) error {
	if n > maxAnalysisImages {
		return fmt.Errorf("too many images: %d (max %d)", n, maxAnalysisImages)
	}
	return nil
}

// ValidateLabel bounds free-form labels (part names, area names, scope).
func ValidateLabel(label string, maxLen int) error {
	if len(label) > maxLen {
		return fmt.Errorf("label too long (max %d chars)", maxLen)
	}
	dangerous := []string{"\x00", "\n", "\r"}
	for _, d := range dangerous {
		if strings.Contains(label, d) {
			return fmt.Errorf("invalid characters in label")
		}
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
