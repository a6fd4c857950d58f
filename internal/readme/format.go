package readme

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// sizeUnits are binary-prefixed (1024-based) units for repository size.
var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with binary-prefixed units and two-decimal
// rounding. The unit is chosen by floor(log(bytes)/log(1024)).
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(sizeUnits) {
		exp = len(sizeUnits) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(exp))
	return fmt.Sprintf("%.2f %s", value, sizeUnits[exp])
}

// FormatRepoSize renders a repository size reported in kilobytes.
func FormatRepoSize(sizeKB int) string {
	return FormatSize(int64(sizeKB) * 1024)
}

// TitleFromName derives a display title from a repository identifier:
// hyphens and underscores become spaces and the first letter of every word
// is capitalized.
func TitleFromName(name string) string {
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(normalized)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// FormatDate renders a timestamp as a human-readable date.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatPercent renders a byte share with one decimal place.
func FormatPercent(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}

// anchor converts a section heading into its markdown anchor form.
func anchor(heading string) string {
	return strings.ToLower(strings.ReplaceAll(heading, " ", "-"))
}
