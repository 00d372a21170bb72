package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	s3sdk "github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, awsConfig *aws.Config) *Client {
	t.Helper()

	awsConfig.Credentials = credentials.NewStaticCredentials("test", "test", "")
	sess, err := session.NewSession(awsConfig)
	assert.NoError(t, err)

	return &Client{
		s3Client: s3sdk.New(sess),
		bucket:   "geodrop-media",
	}
}

func TestKeyFromURL_MinIO(t *testing.T) {
	client := newTestClient(t, &aws.Config{
		Region:           aws.String("us-east-1"),
		Endpoint:         aws.String("http://localhost:9000"),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(true),
	})

	url := "http://localhost:9000/geodrop-media/locations/loc-1/photo.jpg"
	assert.Equal(t, "locations/loc-1/photo.jpg", client.KeyFromURL(url))
}

func TestKeyFromURL_AWS(t *testing.T) {
	client := newTestClient(t, &aws.Config{
		Region: aws.String("eu-west-1"),
	})

	url := "https://geodrop-media.s3.eu-west-1.amazonaws.com/locations/loc-2/clip.mp4"
	assert.Equal(t, "locations/loc-2/clip.mp4", client.KeyFromURL(url))
}

func TestKeyFromURL_ForeignURL(t *testing.T) {
	client := newTestClient(t, &aws.Config{
		Region: aws.String("eu-west-1"),
	})

	assert.Equal(t, "", client.KeyFromURL("https://example.com/not-ours.jpg"))
}

func TestKeyFromURL_RoundTrip(t *testing.T) {
	client := newTestClient(t, &aws.Config{
		Region:           aws.String("us-east-1"),
		Endpoint:         aws.String("http://minio:9000"),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(true),
	})

	key := "locations/loc-3/0.png"
	assert.Equal(t, key, client.KeyFromURL(client.objectURL(key)))
}
