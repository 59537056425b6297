// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/apex/log"
	"github.com/staranto/jbctlgo/internal/aws"
)

// IsS3 reports whether dest is an s3:// URI.
func IsS3(dest string) bool {
	return strings.HasPrefix(dest, "s3://")
}

// ParseS3 splits an s3://bucket/prefix URI into bucket and (possibly empty)
// key prefix.
func ParseS3(dest string) (bucket string, prefix string, err error) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse s3 destination %s: %w", dest, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("invalid s3 destination: %s", dest)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}

// Upload puts the local file under the s3:// destination and returns the
// resulting object URI. The object key is <prefix>/<basename>.
func Upload(ctx context.Context, localPath, dest string) (string, error) {
	bucket, prefix, err := ParseS3(dest)
	if err != nil {
		return "", err
	}

	cfg, err := aws.LoadAWSConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := aws.NewS3(cfg)

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	key := path.Join(prefix, filepath.Base(localPath))
	log.Debugf("uploading %s to s3://%s/%s", localPath, bucket, key)

	if _, err := client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
		Body:   f,
	}); err != nil {
		return "", fmt.Errorf("failed to upload to s3://%s/%s: %w", bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}
