package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// GenerateSlug turns a display name into a URL-safe identifier:
// lowercase, non-alphanumerics collapsed into single hyphens.
func GenerateSlug(name string) string {
	var builder strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			builder.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				builder.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(builder.String(), "-")
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateInvoiceNumber(now time.Time, sequence int) string {
	return fmt.Sprintf("INV-%s-%04d", now.Format("200601"), sequence)
}
