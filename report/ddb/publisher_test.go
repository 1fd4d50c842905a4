package ddb

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/primeasn/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDDBClient is an in-memory DynamoDB mock for testing.
type mockDDBClient struct {
	mu          sync.Mutex
	items       map[string]map[string]types.AttributeValue
	calls       int
	batchSizes  []int
	failOnCall  int
	unprocessed int
}

func newMockDDBClient() *mockDDBClient {
	return &mockDDBClient{
		items:      make(map[string]map[string]types.AttributeValue),
		failOnCall: -1,
	}
}

func (m *mockDDBClient) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := m.calls
	m.calls++
	if call == m.failOnCall {
		return nil, errors.New("throttled")
	}

	out := &dynamodb.BatchWriteItemOutput{UnprocessedItems: map[string][]types.WriteRequest{}}
	for table, reqs := range params.RequestItems {
		m.batchSizes = append(m.batchSizes, len(reqs))
		keep := len(reqs) - m.unprocessed
		for i, req := range reqs {
			if i >= keep {
				out.UnprocessedItems[table] = append(out.UnprocessedItems[table], req)
				continue
			}
			asn := req.PutRequest.Item["asn"].(*types.AttributeValueMemberN).Value
			m.items[table+":"+asn] = req.PutRequest.Item
		}
	}
	return out, nil
}

func primesReport(n int) *report.Report {
	primes := make([]int, n)
	for i := range primes {
		primes[i] = 1000 + i
	}
	return &report.Report{
		Sources:     []string{"s3://rir/ripencc", "mem://extra"},
		Bound:       1000 + n,
		Primes:      primes,
		GeneratedAt: time.Date(2021, 11, 22, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublish_Chunks(t *testing.T) {
	client := newMockDDBClient()
	p := NewPublisher(client, "primeasn")

	n, err := p.Publish(context.Background(), primesReport(60))
	require.NoError(t, err)
	assert.Equal(t, 60, n)
	assert.Equal(t, []int{25, 25, 10}, client.batchSizes)
	assert.Len(t, client.items, 60)

	item := client.items["primeasn:1000"]
	require.NotNil(t, item)
	assert.Equal(t, "s3://rir/ripencc,mem://extra", item["source"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "2021-11-22T12:00:00Z", item["generated_at"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "1060", item["bound"].(*types.AttributeValueMemberN).Value)
}

func TestPublish_Deduplicates(t *testing.T) {
	client := newMockDDBClient()
	p := NewPublisher(client, "primeasn")

	r := &report.Report{Primes: []int{5, 11, 5, 13, 11}}
	n, err := p.Publish(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{3}, client.batchSizes)
}

func TestPublish_Empty(t *testing.T) {
	client := newMockDDBClient()
	n, err := NewPublisher(client, "primeasn").Publish(context.Background(), &report.Report{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, client.calls)
}

func TestPublish_ClientError(t *testing.T) {
	client := newMockDDBClient()
	client.failOnCall = 1
	p := NewPublisher(client, "primeasn")

	n, err := p.Publish(context.Background(), primesReport(60))
	require.Error(t, err)
	assert.Equal(t, 25, n)
	assert.Equal(t, 2, client.calls)
}

func TestPublish_Unprocessed(t *testing.T) {
	client := newMockDDBClient()
	client.unprocessed = 2
	p := NewPublisher(client, "primeasn")

	n, err := p.Publish(context.Background(), primesReport(10))
	var ue *UnprocessedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 0, ue.Batch)
	assert.Equal(t, 2, ue.Count)
	assert.Equal(t, 8, n)
}
