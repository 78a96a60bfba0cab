package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDynamoDB(t *testing.T) {
	t.Run("local endpoint", func(t *testing.T) {
		client, err := ConnectDynamoDB(context.Background(), DynamoDBSettings{
			Region:          "sa-east-1",
			Endpoint:        "http://localhost:8000",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		})
		require.NoError(t, err)

		opts := client.Options()
		assert.Equal(t, "sa-east-1", opts.Region)
		assert.Equal(t, "http://localhost:8000", aws.ToString(opts.BaseEndpoint))

		creds, err := opts.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "local", creds.AccessKeyID)
	})

	t.Run("default endpoint", func(t *testing.T) {
		t.Setenv("AWS_ENDPOINT_URL", "")
		t.Setenv("AWS_ENDPOINT_URL_DYNAMODB", "")
		client, err := ConnectDynamoDB(context.Background(), DynamoDBSettings{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		})
		require.NoError(t, err)
		assert.Nil(t, client.Options().BaseEndpoint)
	})
}
