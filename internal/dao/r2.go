package dao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/NHopewell/nfl-event-parser/internal/records"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// R2DAO uploads each run's artifact to an S3-compatible (R2) bucket under a
// key prefix, so a fleet of cron runs shares one output location.
type R2DAO struct {
	s3           S3Uploader
	bucketName   string
	outputPrefix string
	format       string
	now          func() time.Time
}

func NewR2DAO(bucketName, outputPrefix, format string) *R2DAO {
	return &R2DAO{
		s3:           initS3Client(),
		bucketName:   bucketName,
		outputPrefix: outputPrefix,
		format:       format,
		now:          time.Now,
	}
}

func NewR2DAOWithClient(bucketName, outputPrefix, format string, s3Client S3Uploader) *R2DAO {
	return &R2DAO{
		s3:           s3Client,
		bucketName:   bucketName,
		outputPrefix: outputPrefix,
		format:       format,
		now:          time.Now,
	}
}

func (u *R2DAO) SaveEvents(events []records.Event) error {
	key := path.Join(u.outputPrefix, u.now().Format(OUTPUT_TIMESTAMP_LAYOUT)+"."+u.format)

	var body []byte
	var err error
	switch u.format {
	case FormatCSV:
		body, err = gocsv.MarshalBytes(toCSVEvents(events))
	default:
		body, err = json.MarshalIndent(events, "", "    ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	logrus.Infof("Saving %d events to bucket: %s with key: %s", len(events), u.bucketName, key)
	_, err = u.s3.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(u.bucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})
	return err
}

func initS3Client() *s3.Client {
	// Load .env only for local dev
	_ = godotenv.Load()

	endpoint := os.Getenv("R2_ENDPOINT")
	accessKeyId := os.Getenv("R2_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("R2_SECRET_ACCESS_KEY")

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyId, accessKeySecret, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal(err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
}
