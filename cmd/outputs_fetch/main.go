// Downloads pipeline output artifacts from the R2 bucket to a local
// directory, for inspecting past runs without touching the bucket console.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	bucket := flag.String("bucket", "nfl-events", "R2 bucket holding pipeline outputs")
	prefix := flag.String("prefix", "normal/output", "key prefix of the output artifacts")
	dest := flag.String("dest", "r2data", "local directory to download into")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("R2_ACCESS_KEY_ID"), os.Getenv("R2_SECRET_ACCESS_KEY"), "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		logrus.Fatal(err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(os.Getenv("R2_ENDPOINT"))
	})

	paginator := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket: bucket,
		Prefix: prefix,
	})

	downloaded := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.TODO())
		if err != nil {
			logrus.Fatal("List outputs: ", err)
		}
		for _, obj := range page.Contents {
			key := *obj.Key
			if err := downloadObject(client, *bucket, key, *dest); err != nil {
				logrus.Warnf("Failed to download %s: %v", key, err)
				continue
			}
			downloaded++
		}
	}
	logrus.Infof("Downloaded %d artifacts to %s", downloaded, *dest)
}

func downloadObject(client *s3.Client, bucket, key, dest string) error {
	out, err := client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()

	localPath := filepath.Join(dest, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return err
	}

	f, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, out.Body)
	return err
}
