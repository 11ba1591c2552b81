// Package storage holds the media bucket layer. All uploaded files live in a
// single bucket; file ids carry a caller-supplied type prefix so listings can
// distinguish file categories.
package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Kind classifies a stored file by its MIME type prefix; the classification
// decides how the media library renders it.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindOther Kind = "other"
)

// KindOf classifies a MIME type into image, video, or other.
func KindOf(mimeType string) Kind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage
	case strings.HasPrefix(mimeType, "video/"):
		return KindVideo
	default:
		return KindOther
	}
}

// DefaultFileType is the id prefix applied when the caller does not tag the
// upload.
const DefaultFileType = "media"

// MediaFile describes one object in the bucket.
type MediaFile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	Size        int64  `json:"size"`
	Kind        Kind   `json:"kind"`
	URL         string `json:"url"`
	PreviewURL  string `json:"previewUrl"`
	DownloadURL string `json:"downloadUrl"`
}

// Images in the media grid render through a sized preview.
const (
	previewWidth  = 500
	previewHeight = 500
)

// NewFileID builds a bucket object id with the caller-supplied type prefix.
func NewFileID(fileType string) string {
	if fileType == "" {
		fileType = DefaultFileType
	}
	return fmt.Sprintf("%s_%s", fileType, uuid.New())
}

const nameMetadataKey = "original-name"

// S3MediaStore is the bucket-backed media store.
type S3MediaStore struct {
	client *s3.Client
	bucket string
	// baseURL is the public prefix file view URLs are derived from.
	baseURL string
	logger  zerolog.Logger
}

// NewS3MediaStore builds the bucket client. A custom S3_ENDPOINT switches
// the client to path-style addressing for S3-compatible stores.
func NewS3MediaStore(ctx context.Context, cfg config.App) (*S3MediaStore, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.MediaBucket, cfg.AWSRegion)
	if cfg.S3Endpoint != "" {
		baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.S3Endpoint, "/"), cfg.MediaBucket)
	}

	return &S3MediaStore{
		client:  client,
		bucket:  cfg.MediaBucket,
		baseURL: baseURL,
		logger:  log.With().Str("component", "mediaStore").Logger(),
	}, nil
}

// Upload stores raw file content under a freshly generated typed id and
// returns the resulting file description.
func (s *S3MediaStore) Upload(ctx context.Context, name, mimeType, fileType string, body io.Reader, size int64) (MediaFile, error) {
	id := NewFileID(fileType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(id),
		Body:          body,
		ContentType:   aws.String(mimeType),
		ContentLength: aws.Int64(size),
		Metadata:      map[string]string{nameMetadataKey: name},
	})
	if err != nil {
		return MediaFile{}, errs.NewStorageError("upload", errs.ErrStorageUpload, err)
	}

	s.logger.Info().Str("fileId", id).Str("name", name).Int64("size", size).Msg("Uploaded file")

	return s.describe(id, name, mimeType, size), nil
}

// describe builds the file description with its derived URLs. Only images
// get the sized preview; everything else previews as the original.
func (s *S3MediaStore) describe(id, name, mimeType string, size int64) MediaFile {
	kind := KindOf(mimeType)

	previewURL := s.FileURL(id)
	if kind == KindImage {
		previewURL = s.PreviewURL(id, previewWidth, previewHeight)
	}

	return MediaFile{
		ID:          id,
		Name:        name,
		MimeType:    mimeType,
		Size:        size,
		Kind:        kind,
		URL:         s.FileURL(id),
		PreviewURL:  previewURL,
		DownloadURL: s.DownloadURL(id),
	}
}

// List returns every file in the bucket, newest ids last by key order.
func (s *S3MediaStore) List(ctx context.Context) ([]MediaFile, error) {
	var files []MediaFile

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errs.NewStorageError("list", errs.ErrStorageList, err)
		}

		for _, object := range page.Contents {
			id := aws.ToString(object.Key)

			head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(id),
			})
			if err != nil {
				return nil, errs.NewStorageError("list", errs.ErrStorageList, err)
			}

			name := head.Metadata[nameMetadataKey]
			if name == "" {
				name = id
			}

			mimeType := aws.ToString(head.ContentType)
			files = append(files, s.describe(id, name, mimeType, aws.ToInt64(object.Size)))
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}

// Delete removes a file from the bucket by id
func (s *S3MediaStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return errs.NewStorageError("delete", errs.ErrStorageDelete, err)
	}

	s.logger.Info().Str("fileId", id).Msg("Deleted file")
	return nil
}

// FileURL returns the direct view URL for a stored file.
func (s *S3MediaStore) FileURL(id string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, id)
}

// PreviewURL returns a sized preview URL for image files. The bucket serves
// originals, so sizing is advisory query state for the client-side renderer.
func (s *S3MediaStore) PreviewURL(id string, width, height int) string {
	return fmt.Sprintf("%s/%s?width=%d&height=%d", s.baseURL, id, width, height)
}

// DownloadURL returns a URL that hints attachment disposition.
func (s *S3MediaStore) DownloadURL(id string) string {
	return fmt.Sprintf("%s/%s?download=1", s.baseURL, id)
}
