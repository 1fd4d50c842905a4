package ddb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/primeasn/report"
)

// MaxBatchSize is the BatchWriteItem request limit.
const MaxBatchSize = 25

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// UnprocessedError is returned when DynamoDB throttles part of a batch.
type UnprocessedError struct {
	Batch int
	Count int
}

func (e *UnprocessedError) Error() string {
	return fmt.Sprintf("ddb: batch %d: %d items unprocessed", e.Batch, e.Count)
}

// Publisher writes one item per prime AS number.
type Publisher struct {
	client    DDBClient
	tableName string
}

// NewPublisher creates a publisher for tableName.
func NewPublisher(client DDBClient, tableName string) *Publisher {
	return &Publisher{client: client, tableName: tableName}
}

// New creates a publisher using the default AWS configuration chain.
func New(ctx context.Context, tableName string) (*Publisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewPublisher(dynamodb.NewFromConfig(cfg), tableName), nil
}

// Publish writes the primes of r and returns the number of items written.
// Duplicate primes are written once.
func (p *Publisher) Publish(ctx context.Context, r *report.Report) (int, error) {
	requests := p.requests(r)

	for start := 0; start < len(requests); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(requests))

		out, err := p.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				p.tableName: requests[start:end],
			},
		})
		if err != nil {
			return start, fmt.Errorf("failed to write batch to DynamoDB: %w", err)
		}
		if n := len(out.UnprocessedItems[p.tableName]); n > 0 {
			return start + (end - start - n), &UnprocessedError{Batch: start / MaxBatchSize, Count: n}
		}
	}

	return len(requests), nil
}

func (p *Publisher) requests(r *report.Report) []types.WriteRequest {
	source := strings.Join(r.Sources, ",")
	generatedAt := r.GeneratedAt.UTC().Format(time.RFC3339)

	seen := make(map[int]struct{}, len(r.Primes))
	out := make([]types.WriteRequest, 0, len(r.Primes))
	for _, asn := range r.Primes {
		if _, ok := seen[asn]; ok {
			continue
		}
		seen[asn] = struct{}{}

		out = append(out, types.WriteRequest{
			PutRequest: &types.PutRequest{
				Item: map[string]types.AttributeValue{
					"asn":          &types.AttributeValueMemberN{Value: strconv.Itoa(asn)},
					"source":       &types.AttributeValueMemberS{Value: source},
					"generated_at": &types.AttributeValueMemberS{Value: generatedAt},
					"bound":        &types.AttributeValueMemberN{Value: strconv.Itoa(r.Bound)},
				},
			},
		})
	}
	return out
}

var _ DDBClient = (*dynamodb.Client)(nil)
