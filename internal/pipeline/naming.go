package pipeline

import (
	"fmt"

	"cuepress/internal/services/shntool"
	"cuepress/internal/textutil"
)

func splitTrackName(number int) string {
	return shntool.TrackFileName(number)
}

// trackFileName builds the destination name for a split track. Titles
// that sanitize to nothing fall back to the numbered placeholder so
// destinations stay unique and deterministic.
func trackFileName(number int, title string) string {
	sanitized := textutil.SanitizeFileName(title)
	if sanitized == "" {
		return fmt.Sprintf("%02d - Track %02d.mp3", number, number)
	}
	return fmt.Sprintf("%02d - %s.mp3", number, sanitized)
}

func standaloneFileName(base string) string {
	sanitized := textutil.SanitizeFileName(base)
	if sanitized == "" {
		sanitized = "track"
	}
	return sanitized + ".mp3"
}
