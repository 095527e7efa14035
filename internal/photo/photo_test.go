package photo

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	lastBucket string
	lastKey    string
	lastBody   []byte
	err        error
}

func (f *fakeS3) PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastBucket = *input.Bucket
	f.lastKey = *input.Key
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.lastBody = body
	return &s3.PutObjectOutput{}, nil
}

func TestUpload(t *testing.T) {
	fake := &fakeS3{}
	st := &Store{
		cfg:    Config{Endpoint: "https://storage.example.com", Bucket: "photos"},
		client: fake,
		logger: slog.Default(),
	}

	url, err := st.Upload(context.Background(), "task-1-123.jpg", []byte("jpegdata"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://storage.example.com/photos/task-1-123.jpg" {
		t.Errorf("url = %q", url)
	}
	if fake.lastBucket != "photos" || fake.lastKey != "task-1-123.jpg" {
		t.Errorf("put to %s/%s", fake.lastBucket, fake.lastKey)
	}
	if string(fake.lastBody) != "jpegdata" {
		t.Errorf("body = %q", fake.lastBody)
	}
}

func TestUploadNotConfigured(t *testing.T) {
	st := NewStore(Config{}, slog.Default())
	if st.Enabled() {
		t.Fatal("store with empty config should be disabled")
	}
	if _, err := st.Upload(context.Background(), "k", []byte("x")); err != ErrNotConfigured {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestTaskKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	if got := TaskKey(42, now); got != "task-42-1700000000000.jpg" {
		t.Errorf("TaskKey = %q", got)
	}
}

func TestDecodeDataURL(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0}
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	got, err := DecodeDataURL(dataURL)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if len(got) != len(raw) || got[0] != 0xff {
		t.Errorf("decoded %v", got)
	}

	for _, bad := range []string{"", "nonsense", "data:text/plain;base64,aGk=", "data:image/jpeg;base64,!!!"} {
		if _, err := DecodeDataURL(bad); err != ErrInvalidDataURL {
			t.Errorf("DecodeDataURL(%q) err = %v, want ErrInvalidDataURL", bad, err)
		}
	}
}
