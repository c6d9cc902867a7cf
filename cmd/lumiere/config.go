package main

import (
	"context"
	"fmt"

	"lumiere/internal/storage"
	"lumiere/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func loadConfig() (*types.Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL")
	}

	if c.StorageBackend != "s3" && c.StorageBackend != "supabase" {
		return nil, fmt.Errorf("STORAGE_BACKEND must be s3 or supabase, got %q", c.StorageBackend)
	}

	return c, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}

func buildMediaStore(c *types.Config, awsConfig aws.Config) (storage.Store, error) {
	switch c.StorageBackend {
	case "supabase":
		if c.SupabaseProject == "" || c.SupabaseAPIKey == "" {
			return nil, fmt.Errorf("set SUPABASE_PROJECT and SUPABASE_API_KEY for supabase storage")
		}
		return storage.NewSupabaseStore(c.SupabaseProject, c.SupabaseAPIKey), nil
	default:
		return storage.NewS3Store(s3.NewFromConfig(awsConfig), c.S3Region), nil
	}
}
