package legal

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store serves documents from an S3 bucket.
//
// Example usage:
//
//	client := legal.NewS3Client(legal.S3ClientConfig{Region: "eu-west-1"})
//	store := legal.NewS3Store(client, "plebishub-legal", "pdf/")
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store creates a store reading keys prefix+name from bucket.
func NewS3Store(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Open implements Store.
func (s *S3Store) Open(ctx context.Context, name string) (*Document, error) {
	if !ValidName(name) {
		return nil, ErrInvalidName
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + name),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	doc := &Document{
		Name:        name,
		ContentType: ContentTypePDF,
		Size:        -1,
		Body:        out.Body,
	}
	if out.ContentLength != nil {
		doc.Size = *out.ContentLength
	}
	if out.LastModified != nil {
		doc.ModTime = *out.LastModified
	}
	return doc, nil
}

func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}

// S3ClientConfig configures NewS3Client.
type S3ClientConfig struct {
	Region string
	// Endpoint overrides the AWS endpoint, for S3-compatible stores.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client builds an S3 client. Without static keys the client sends
// anonymous requests, which suits public buckets.
func NewS3Client(cfg S3ClientConfig) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.AnonymousCredentials{},
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = aws.NewCredentialsCache(aws.CredentialsProviderFunc(
			func(context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     cfg.AccessKeyID,
					SecretAccessKey: cfg.SecretAccessKey,
					Source:          "plebisadmin",
				}, nil
			}))
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}
