package oss

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client wraps the S3-compatible store holding problem detail documents.
type Client struct {
	cli    *minio.Client
	bucket string
}

func New(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Client, error) {
	addr := endpoint
	secure := useSSL

	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, err
		}
		addr = u.Host
		secure = u.Scheme == "https"
	}

	cli, err := minio.New(addr, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}
	return &Client{cli: cli, bucket: bucket}, nil
}

// GetObjectBytes fetches one object fully into memory.
func (c *Client) GetObjectBytes(ctx context.Context, key string) ([]byte, error) {
	obj, err := c.cli.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

// ProblemKey derives the storage key of a problem's detail document:
//
//	problems/<lowercased difficulty>/<frontend id padded to 4 digits>-<slug>.json
//
// The content pipeline writes objects under exactly this scheme.
func ProblemKey(difficulty string, frontendID int, slug string) string {
	return fmt.Sprintf("problems/%s/%04d-%s.json", strings.ToLower(difficulty), frontendID, slug)
}
