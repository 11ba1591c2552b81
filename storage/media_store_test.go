package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindImage, KindOf("image/png"))
	assert.Equal(t, KindImage, KindOf("image/jpeg"))
	assert.Equal(t, KindVideo, KindOf("video/mp4"))
	assert.Equal(t, KindOther, KindOf("application/pdf"))
	assert.Equal(t, KindOther, KindOf(""))
}

func TestDerivedFileURLs(t *testing.T) {
	store := &S3MediaStore{
		bucket:  "media_files",
		baseURL: "https://media_files.s3.us-east-1.amazonaws.com",
	}

	assert.Equal(t,
		"https://media_files.s3.us-east-1.amazonaws.com/media_abc",
		store.FileURL("media_abc"))
	assert.Equal(t,
		"https://media_files.s3.us-east-1.amazonaws.com/media_abc?width=500&height=500",
		store.PreviewURL("media_abc", 500, 500))
	assert.Equal(t,
		"https://media_files.s3.us-east-1.amazonaws.com/media_abc?download=1",
		store.DownloadURL("media_abc"))
}

func TestDescribeDerivesPreviewByKind(t *testing.T) {
	store := &S3MediaStore{
		bucket:  "media_files",
		baseURL: "https://media_files.s3.us-east-1.amazonaws.com",
	}

	image := store.describe("media_img", "photo.png", "image/png", 1024)
	assert.Equal(t, KindImage, image.Kind)
	assert.Equal(t, store.FileURL("media_img"), image.URL)
	assert.Equal(t, store.PreviewURL("media_img", 500, 500), image.PreviewURL)
	assert.Equal(t, store.DownloadURL("media_img"), image.DownloadURL)

	// Non-images preview as the original file.
	video := store.describe("media_vid", "clip.mp4", "video/mp4", 2048)
	assert.Equal(t, KindVideo, video.Kind)
	assert.Equal(t, store.FileURL("media_vid"), video.PreviewURL)
	assert.Equal(t, store.DownloadURL("media_vid"), video.DownloadURL)
}

func TestNewFileID(t *testing.T) {
	id := NewFileID("profile")
	assert.True(t, strings.HasPrefix(id, "profile_"))

	// Untagged uploads get the default prefix.
	assert.True(t, strings.HasPrefix(NewFileID(""), "media_"))

	// Ids are unique per call.
	assert.NotEqual(t, NewFileID("media"), NewFileID("media"))
}
