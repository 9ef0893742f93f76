package storage

import (
	"bytes"
	"io"
	"os"

	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

func newClient() *s3.S3 {
	config := aws.Config{}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		config.Endpoint = &endpoint
		config.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(&config)
	if err != nil {
		panic("Could not create an S3 session because " + err.Error())
	}
	return s3.New(sess)
}

// UploadArtifact puts an exported artifact file into the configured bucket
// under key. One attempt, the error goes back to the caller.
func UploadArtifact(path string, key string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	client := newClient()
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(constants.GetArtifactBucket()),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}

// DownloadArtifact fetches an artifact from the bucket into a local file.
func DownloadArtifact(key string, path string) error {
	client := newClient()
	out, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(constants.GetArtifactBucket()),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}
