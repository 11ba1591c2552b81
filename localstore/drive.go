package localstore

import (
	"fmt"
	"regexp"
)

// Matches both Drive share URL shapes: /file/d/<id>/view and ?id=<id>.
var driveFileIDPattern = regexp.MustCompile(`/d/(.+?)/|id=(.+?)(&|$)`)

// ConvertGoogleDriveURL rewrites a Google Drive sharing URL into a direct
// embed URL: videos get the /preview player, everything else the
// uc?export=view form. URLs without a recognizable file id pass through
// unchanged.
func ConvertGoogleDriveURL(url, mediaType string) string {
	match := driveFileIDPattern.FindStringSubmatch(url)
	if match == nil {
		return url
	}

	fileID := match[1]
	if fileID == "" {
		fileID = match[2]
	}

	if mediaType == "video" {
		return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", fileID)
	}
	return fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", fileID)
}
