package legal

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]string
	err     error
	lastKey string
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.lastKey = aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[f.lastKey]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("no such key")}
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: aws.Int64(int64(len(body))),
		LastModified:  aws.Time(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
	}, nil
}

func TestS3StoreOpen(t *testing.T) {
	client := &fakeS3{objects: map[string]string{"legal/pdf/aviso.pdf": "%PDF"}}
	store := NewS3Store(client, "legal", "pdf/")

	doc, err := store.Open(context.Background(), "aviso.pdf")
	require.NoError(t, err)
	defer doc.Body.Close()

	assert.Equal(t, "legal/pdf/aviso.pdf", client.lastKey)
	assert.Equal(t, int64(4), doc.Size)
	assert.Equal(t, ContentTypePDF, doc.ContentType)
	assert.Equal(t, 2024, doc.ModTime.Year())
}

func TestS3StoreNotFound(t *testing.T) {
	store := NewS3Store(&fakeS3{}, "legal", "")

	_, err := store.Open(context.Background(), "missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3StoreHTTPNotFound(t *testing.T) {
	notFound := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusNotFound}},
			Err:      errors.New("not found"),
		},
	}
	store := NewS3Store(&fakeS3{err: notFound}, "legal", "")

	_, err := store.Open(context.Background(), "aviso.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3StoreOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	client := &fakeS3{err: boom}
	store := NewS3Store(client, "legal", "")

	_, err := store.Open(context.Background(), "aviso.pdf")
	assert.ErrorIs(t, err, boom)

	client.lastKey = ""
	_, err = store.Open(context.Background(), "../aviso.pdf")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Empty(t, client.lastKey, "invalid names must not reach S3")
}

func TestNewS3Client(t *testing.T) {
	client := NewS3Client(S3ClientConfig{
		Region:          "eu-west-1",
		Endpoint:        "http://minio:9000",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	opts := client.Options()
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Equal(t, "http://minio:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", creds.AccessKeyID)

	// s3.New turns anonymous credentials into nil, which disables signing.
	anon := NewS3Client(S3ClientConfig{Region: "eu-west-1"})
	assert.Nil(t, anon.Options().Credentials)
}

// objectServer answers every GetObject with body and records the request
// headers it saw.
func objectServer(t *testing.T, body string) (*httptest.Server, <-chan http.Header) {
	t.Helper()
	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case headers <- r.Header.Clone():
		default:
		}
		w.Header().Set("Content-Type", ContentTypePDF)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, headers
}

func TestS3ClientRequestSigning(t *testing.T) {
	tests := []struct {
		name   string
		config S3ClientConfig
		signed bool
	}{
		{"anonymous", S3ClientConfig{Region: "eu-west-1"}, false},
		{"static keys", S3ClientConfig{Region: "eu-west-1", AccessKeyID: "key", SecretAccessKey: "secret"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, headers := objectServer(t, "%PDF-1.4")
			cfg := tt.config
			cfg.Endpoint = srv.URL
			store := NewS3Store(NewS3Client(cfg), "plebis-legal", "pdf/")

			doc, err := store.Open(context.Background(), "aviso.pdf")
			require.NoError(t, err)
			data, err := io.ReadAll(doc.Body)
			doc.Body.Close()
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.4", string(data))

			h := <-headers
			if tt.signed {
				assert.Contains(t, h.Get("Authorization"), "AWS4-HMAC-SHA256")
			} else {
				assert.Empty(t, h.Get("Authorization"))
			}
		})
	}
}
