package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/studydesk/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s3Config() *sc.Config {
	return &sc.Config{
		S3Bucket:    "studydesk",
		S3Region:    "eu-central-1",
		S3Endpoint:  "http://127.0.0.1:9000",
		S3AccessKey: "minioadmin",
		S3SecretKey: "minioadmin",
	}
}

func stubS3Seams(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPresign := newS3PresignClient
	origPut := putObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		newS3PresignClient = origPresign
		putObject = origPut
		presignGetObject = origGet
	})
}

func TestNewS3ObjectStore_AppliesConfig(t *testing.T) {
	stubS3Seams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-central-1", lo.Region)
		assert.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		require.NotNil(t, c)
		return &s3.PresignClient{}
	}

	store, err := NewS3ObjectStore(t.Context(), s3Config())
	require.NoError(t, err)
	assert.Equal(t, "studydesk", store.bucket)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3ObjectStore_DefaultCredentialChain(t *testing.T) {
	stubS3Seams(t)

	cfg := s3Config()
	cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Endpoint = "", "", ""

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Nil(t, lo.Credentials)
		return aws.Config{}, nil
	}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(*s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	_, err := NewS3ObjectStore(t.Context(), cfg)
	require.NoError(t, err)
	assert.Nil(t, opts.BaseEndpoint)
	assert.False(t, opts.UsePathStyle)
}

func TestNewS3ObjectStore_LoadError(t *testing.T) {
	stubS3Seams(t)
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := NewS3ObjectStore(t.Context(), s3Config())
	require.EqualError(t, err, "load-fail")
}

func TestS3ObjectStore_PutAndPresign(t *testing.T) {
	stubS3Seams(t)
	store := &S3ObjectStore{client: &s3.Client{}, presign: &s3.PresignClient{}, bucket: "studydesk"}

	var put *s3.PutObjectInput
	putObject = func(_ *s3.Client, _ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		put = in
		return &s3.PutObjectOutput{}, nil
	}
	var expires time.Duration
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		expires = po.Expires
		return &v4.PresignedHTTPRequest{URL: "http://minio/" + aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)}, nil
	}

	require.NoError(t, store.Put(t.Context(), "exports/a.json", []byte("{}"), "application/json"))
	require.NotNil(t, put)
	assert.Equal(t, "studydesk", aws.ToString(put.Bucket))
	assert.Equal(t, "exports/a.json", aws.ToString(put.Key))
	assert.Equal(t, "application/json", aws.ToString(put.ContentType))

	url, err := store.PresignGet(t.Context(), "exports/a.json", 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://minio/studydesk/exports/a.json", url)
	assert.Equal(t, 5*time.Minute, expires)
}

func TestS3ObjectStore_Errors(t *testing.T) {
	stubS3Seams(t)
	store := &S3ObjectStore{client: &s3.Client{}, presign: &s3.PresignClient{}, bucket: "b"}

	putObject = func(*s3.Client, context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("denied")
	}
	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("no creds")
	}

	assert.ErrorContains(t, store.Put(t.Context(), "k", nil, "text/plain"), "denied")
	_, err := store.PresignGet(t.Context(), "k", time.Minute)
	assert.ErrorContains(t, err, "no creds")
}
