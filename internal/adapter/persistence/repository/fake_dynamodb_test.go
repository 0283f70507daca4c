package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB is an in-memory single-table DynamoDB good enough for the
// repositories: key conditions, SET updates and equality queries.
type fakeDynamoDB struct {
	mu      sync.Mutex
	keyAttr string
	items   map[string]map[string]types.AttributeValue
	queries []*dynamodb.QueryInput
}

var _ DynamoDBAPI = (*fakeDynamoDB)(nil)

func newFakeDynamoDB(keyAttr string) *fakeDynamoDB {
	return &fakeDynamoDB{keyAttr: keyAttr, items: map[string]map[string]types.AttributeValue{}}
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamoDB) check(cond *string, exists bool) error {
	if cond == nil {
		return nil
	}
	if strings.HasPrefix(*cond, "attribute_not_exists") && exists {
		return &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	if strings.HasPrefix(*cond, "attribute_exists") && !exists {
		return &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	return nil
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := stringAttr(in.Item[f.keyAttr])
	_, exists := f.items[id]
	if err := f.check(in.ConditionExpression, exists); err != nil {
		return nil, err
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key[f.keyAttr])]}, nil
}

func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := stringAttr(in.Key[f.keyAttr])
	item, exists := f.items[id]
	if err := f.check(in.ConditionExpression, exists); err != nil {
		return nil, err
	}
	next := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		next[k] = v
	}
	for _, assign := range strings.Split(strings.TrimPrefix(*in.UpdateExpression, "SET "), ",") {
		name, value, _ := strings.Cut(assign, "=")
		next[in.ExpressionAttributeNames[strings.TrimSpace(name)]] = in.ExpressionAttributeValues[strings.TrimSpace(value)]
	}
	f.items[id] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

func (f *fakeDynamoDB) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := stringAttr(in.Key[f.keyAttr])
	_, exists := f.items[id]
	if err := f.check(in.ConditionExpression, exists); err != nil {
		return nil, err
	}
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

// Query supports a single "#attr = :value" key condition.
func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, in)
	name, value, _ := strings.Cut(*in.KeyConditionExpression, "=")
	attr := strings.TrimSpace(name)
	if resolved, ok := in.ExpressionAttributeNames[attr]; ok {
		attr = resolved
	}
	want := stringAttr(in.ExpressionAttributeValues[strings.TrimSpace(value)])

	var out []map[string]types.AttributeValue
	for _, item := range f.items {
		if stringAttr(item[attr]) == want {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *fakeDynamoDB) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return &dynamodb.ScanOutput{Items: out, Count: int32(len(out))}, nil
}
