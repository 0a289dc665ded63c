package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/shared/logger"
)

type fakeObjectAPI struct {
	put     *s3.PutObjectInput
	body    string
	deleted []string
	err     error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_Put(t *testing.T) {
	api := &fakeObjectAPI{}
	s := NewS3StorageWithClient(api, "media", "https://cdn.example.com/", logger.NewNopLogger())

	url, err := s.Put(context.Background(), "stores/a/files/x.png", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/stores/a/files/x.png", url)
	assert.Equal(t, "media", aws.ToString(api.put.Bucket))
	assert.Equal(t, types.ObjectCannedACLPublicRead, api.put.ACL)
	assert.Equal(t, "png", api.body)
}

func TestS3Storage_Failures(t *testing.T) {
	api := &fakeObjectAPI{err: errors.New("access denied")}
	s := NewS3StorageWithClient(api, "media", "https://cdn.example.com", logger.NewNopLogger())

	_, err := s.Put(context.Background(), "k", "image/png", strings.NewReader(""), 0)
	assert.ErrorContains(t, err, "access denied")
	assert.Error(t, s.Delete(context.Background(), "k"))
}

func TestS3Storage_Delete(t *testing.T) {
	api := &fakeObjectAPI{}
	s := NewS3StorageWithClient(api, "media", "https://cdn.example.com", logger.NewNopLogger())

	require.NoError(t, s.Delete(context.Background(), "stores/a/files/x.png"))
	assert.Equal(t, []string{"stores/a/files/x.png"}, api.deleted)
}
