package storage

import (
	"context"
	"fmt"
	"patient-intake-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

func NewMinio(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *zap.Logger) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal("Failed to initialize Minio Client", zap.Error(err))
	}

	ctx := context.Background()
	bucketName := internalConfig.Minio.BucketName
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatal("Failed to check minio bucket", zap.String("bucket_name", bucketName), zap.Error(err))
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatal("Failed to create minio bucket", zap.String("bucket_name", bucketName), zap.Error(err))
		}
		log.Info("Created minio bucket", zap.String("bucket_name", bucketName))
	}

	log.Info("Successfully connected to minio")
	return minioClient
}
