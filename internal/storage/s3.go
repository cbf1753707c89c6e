package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

var ErrEmptyFileName = errors.New("file name must not be empty")

const (
	uploadURLTTL   = 15 * time.Minute
	downloadURLTTL = 1 * time.Hour
)

// SignedUpload pairs the storage path a client must write to with the
// presigned URL authorizing the write. Token correlates the upload on the
// client side.
type SignedUpload struct {
	Path      string `json:"path"`
	SignedURL string `json:"signedUrl"`
	Token     string `json:"token"`
}

// PhotoStore issues presigned S3 URLs for check-in photos. The server never
// proxies image bytes.
type PhotoStore struct {
	client *s3.S3
	bucket string
}

func NewPhotoStore(bucket string) *PhotoStore {
	sess := session.Must(session.NewSession())
	return &PhotoStore{
		client: s3.New(sess),
		bucket: bucket,
	}
}

// CreateSignedUploads mints one presigned PUT per file name, all under a
// fresh batch prefix so retried submissions never collide.
func (store *PhotoStore) CreateSignedUploads(userID uint, fileNames []string) ([]SignedUpload, error) {
	batch := uuid.NewString()
	uploads := make([]SignedUpload, 0, len(fileNames))

	for i, name := range fileNames {
		cleaned := sanitizeFileName(name)
		if cleaned == "" {
			return nil, ErrEmptyFileName
		}

		path := fmt.Sprintf("%d/%s/%d-%s", userID, batch, i, cleaned)
		request, _ := store.client.PutObjectRequest(&s3.PutObjectInput{
			Bucket: aws.String(store.bucket),
			Key:    aws.String(path),
		})
		signedURL, err := request.Presign(uploadURLTTL)
		if err != nil {
			return nil, fmt.Errorf("presign upload %q: %w", path, err)
		}

		uploads = append(uploads, SignedUpload{
			Path:      path,
			SignedURL: signedURL,
			Token:     uuid.NewString(),
		})
	}

	return uploads, nil
}

// SignedDownloadURL mints a short-lived GET URL for a stored photo.
func (store *PhotoStore) SignedDownloadURL(path string) (string, error) {
	request, _ := store.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(path),
	})
	signedURL, err := request.Presign(downloadURLTTL)
	if err != nil {
		return "", fmt.Errorf("presign download %q: %w", path, err)
	}
	return signedURL, nil
}

// sanitizeFileName strips path separators and whitespace so client-supplied
// names cannot escape the batch prefix.
func sanitizeFileName(name string) string {
	cleaned := strings.TrimSpace(name)
	cleaned = strings.ReplaceAll(cleaned, "\\", "-")
	cleaned = strings.ReplaceAll(cleaned, "/", "-")
	cleaned = strings.ReplaceAll(cleaned, "..", "-")
	return cleaned
}
