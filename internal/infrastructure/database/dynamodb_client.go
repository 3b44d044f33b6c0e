package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings is the connection part of the application config.
type DynamoDBSettings struct {
	Region          string
	Endpoint        string // optional; e.g. http://dynamodb:8000
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates a DynamoDB client. With an endpoint set it talks to
// DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, s DynamoDBSettings) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, s DynamoDBSettings) (aws.Config, error) {
	region := s.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if s.AccessKeyID != "" && s.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
