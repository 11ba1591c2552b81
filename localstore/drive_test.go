package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertGoogleDriveURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		mediaType string
		want      string
	}{
		{
			name:      "share link image",
			url:       "https://drive.google.com/file/d/abc123/view?usp=sharing",
			mediaType: "image",
			want:      "https://drive.google.com/uc?export=view&id=abc123",
		},
		{
			name:      "share link video",
			url:       "https://drive.google.com/file/d/abc123/view?usp=sharing",
			mediaType: "video",
			want:      "https://drive.google.com/file/d/abc123/preview",
		},
		{
			name:      "open link with id parameter",
			url:       "https://drive.google.com/open?id=xyz789",
			mediaType: "image",
			want:      "https://drive.google.com/uc?export=view&id=xyz789",
		},
		{
			name:      "id parameter followed by more query state",
			url:       "https://drive.google.com/open?id=xyz789&usp=sharing",
			mediaType: "image",
			want:      "https://drive.google.com/uc?export=view&id=xyz789",
		},
		{
			name:      "non-drive url passes through",
			url:       "https://example.com/photo.jpg",
			mediaType: "image",
			want:      "https://example.com/photo.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertGoogleDriveURL(tt.url, tt.mediaType))
		})
	}
}
