package utils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3-compatible object storage; credentials and endpoint come from the
// environment so the bucket can point at any provider.
func storageConfig() (bucket string, cfg *aws.Config) {
	bucket = envOr("S3_BUCKET", "mistri-profiles")
	cfg = &aws.Config{
		Region:   aws.String(envOr("S3_REGION", "us-east-1")),
		Endpoint: aws.String(envOr("S3_ENDPOINT", "https://object.pscloud.io")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), "",
		),
	}
	return bucket, cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getS3Client() (*s3.S3, string) {
	bucket, cfg := storageConfig()
	sess := session.Must(session.NewSession(cfg))
	return s3.New(sess), bucket
}

// UploadFileToS3 stores the file under folder/fileName with public-read
// access and returns its URL.
func UploadFileToS3(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)
	s3Client, bucket := getS3Client()

	_, err := s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", envOr("S3_PUBLIC_BASE", "https://"+bucket+".object.pscloud.io"), folder, fileName), nil
}

func DeleteFileFromS3(filePath string) error {
	s3Client, bucket := getS3Client()

	_, err := s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(filePath),
	})
	if err != nil {
		return fmt.Errorf("unable to delete file from S3: %v", err)
	}
	return nil
}
