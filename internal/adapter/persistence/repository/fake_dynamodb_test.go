package repository

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamoCall is one request received by the fake DynamoDB endpoint.
type fakeDynamoCall struct {
	Operation string
	Body      map[string]any
}

type fakeDynamoResponse struct {
	Status int
	Body   string
}

func newFakeDynamoDB(t *testing.T, respond func(call fakeDynamoCall) fakeDynamoResponse) (*dynamodb.Client, *[]fakeDynamoCall) {
	t.Helper()
	var calls []fakeDynamoCall

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		call := fakeDynamoCall{Operation: strings.TrimPrefix(r.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")}
		_ = json.Unmarshal(raw, &call.Body)
		calls = append(calls, call)

		resp := respond(call)
		if resp.Status == 0 {
			resp.Status = http.StatusOK
		}
		if resp.Body == "" {
			resp.Body = "{}"
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.WriteHeader(resp.Status)
		_, _ = w.Write([]byte(resp.Body))
	}))
	t.Cleanup(srv.Close)

	client := dynamodb.New(dynamodb.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		Credentials:  credentials.NewStaticCredentialsProvider("local", "local", ""),
		Retryer:      aws.NopRetryer{},
	})
	return client, &calls
}

const conditionalCheckFailedBody = `{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`
