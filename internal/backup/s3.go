package backup

import (
	"bytes"
	"context"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// S3API is the part of the S3 client used by S3Target
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Target keeps snapshots under <prefix>/<snapshot id>/ in a bucket
type S3Target struct {
	client S3API
	bucket string
	prefix string
}

func NewS3Target(client S3API, bucket, prefix string) *S3Target {
	return &S3Target{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (t *S3Target) Put(ctx context.Context, snapshotID, name string, data []byte) error {
	key, err := t.key(snapshotID, name)
	if err != nil {
		return err
	}

	_, err = t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(t.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(xlsxContentType),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to upload backup file").
			WithReportableDetails(map[string]any{"bucket": t.bucket, "key": key}).
			Mark(ierr.ErrHTTPClient)
	}
	return nil
}

func (t *S3Target) Get(ctx context.Context, snapshotID, name string) ([]byte, error) {
	key, err := t.key(snapshotID, name)
	if err != nil {
		return nil, err
	}

	result, err := t.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(t.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if ierr.As(err, &nsk) {
			return nil, ierr.WithError(err).
				WithHint("The backup file does not exist").
				WithReportableDetails(map[string]any{"id": snapshotID, "file": name}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to download backup file").
			WithReportableDetails(map[string]any{"bucket": t.bucket, "key": key}).
			Mark(ierr.ErrHTTPClient)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to read backup file").
			Mark(ierr.ErrHTTPClient)
	}
	return data, nil
}

func (t *S3Target) Files(ctx context.Context, snapshotID string) ([]string, error) {
	if err := ValidateSnapshotID(snapshotID); err != nil {
		return nil, err
	}
	prefix := t.snapshotPrefix(snapshotID)

	var names []string
	paginator := s3.NewListObjectsV2Paginator(t.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(t.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("failed to list backup files").
				WithReportableDetails(map[string]any{"bucket": t.bucket, "prefix": prefix}).
				Mark(ierr.ErrHTTPClient)
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if name != "" && !strings.Contains(name, "/") {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

func (t *S3Target) key(snapshotID, name string) (string, error) {
	if err := ValidateSnapshotID(snapshotID); err != nil {
		return "", err
	}
	if err := ValidateSnapshotID(name); err != nil {
		return "", err
	}
	return t.snapshotPrefix(snapshotID) + name, nil
}

func (t *S3Target) snapshotPrefix(snapshotID string) string {
	if t.prefix == "" {
		return snapshotID + "/"
	}
	return path.Join(t.prefix, snapshotID) + "/"
}
