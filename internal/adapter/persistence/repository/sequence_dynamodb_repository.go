package repository

import (
	"context"
	"fmt"
	"strconv"

	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"
	counterEntityID          = "entity_id"
	counterBatchNumber       = "batch_number"
)

// SequenceDynamoRepository increments atomic counters.
//
// Table requirements:
//   - PK: name (string)
//   - attribute value (number), created on first use
type SequenceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb DynamoAPI, tableName string) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCountersTableName),
	}
}

func (r *SequenceDynamoRepository) NextID(ctx context.Context) (string, error) {
	n, err := r.next(ctx, counterEntityID)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

func (r *SequenceDynamoRepository) NextBatchNumber(ctx context.Context) (int64, error) {
	return r.next(ctx, counterBatchNumber)
}

func (r *SequenceDynamoRepository) next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s: missing value attribute", name)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}
