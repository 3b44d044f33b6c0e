package repository

import (
	"context"
	"fmt"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBatchesTableName = "batches"
	batchesClientIDIndex    = "client_id-index"
)

type batchItem struct {
	ID               string   `dynamodbav:"id"`
	BatchNumber      int64    `dynamodbav:"batch_number"`
	ClientID         string   `dynamodbav:"client_id"`
	GarmentIDs       []string `dynamodbav:"garment_ids"`
	ExpectedGarments int      `dynamodbav:"expected_garments"`
	Status           string   `dynamodbav:"status"`
	ProcessedAt      string   `dynamodbav:"processed_at,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// BatchDynamoRepository persists Batch entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type BatchDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBatchRepository = (*BatchDynamoRepository)(nil)

func NewBatchDynamoRepository(ddb DynamoAPI, tableName string) *BatchDynamoRepository {
	return &BatchDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBatchesTableName),
	}
}

func (r *BatchDynamoRepository) GetByID(ctx context.Context, id string) (entities.Batch, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Batch{}, err
	}
	if len(out.Item) == 0 {
		return entities.Batch{}, nil
	}

	var it batchItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Batch{}, err
	}
	return fromBatchItem(it)
}

func (r *BatchDynamoRepository) Save(ctx context.Context, b entities.Batch) (entities.Batch, error) {
	av, err := attributevalue.MarshalMap(toBatchItem(b))
	if err != nil {
		return entities.Batch{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Batch{}, err
	}
	return b, nil
}

func (r *BatchDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *BatchDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Batch, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(batchesClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}
	bs, err := unmarshalBatches(out.Items)
	if err != nil {
		return nil, err
	}
	sortBatches(bs)
	return bs, nil
}

func (r *BatchDynamoRepository) List(ctx context.Context) ([]entities.Batch, error) {
	var (
		all   = make([]entities.Batch, 0)
		start map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		bs, err := unmarshalBatches(page.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, bs...)
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		start = page.LastEvaluatedKey
	}
	sortBatches(all)
	return all, nil
}

func unmarshalBatches(raw []map[string]types.AttributeValue) ([]entities.Batch, error) {
	out := make([]entities.Batch, 0, len(raw))
	for _, item := range raw {
		var it batchItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		b, err := fromBatchItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func toBatchItem(b entities.Batch) batchItem {
	ids := b.GarmentIDs
	if ids == nil {
		ids = []string{}
	}
	return batchItem{
		ID:               b.ID,
		BatchNumber:      b.BatchNumber,
		ClientID:         b.ClientID,
		GarmentIDs:       ids,
		ExpectedGarments: b.ExpectedGarments,
		Status:           string(b.Status),
		ProcessedAt:      formatTimePtr(b.ProcessedAt),
		CreatedAt:        formatTime(b.CreatedAt),
		UpdatedAt:        formatTime(b.UpdatedAt),
	}
}

func fromBatchItem(it batchItem) (entities.Batch, error) {
	var p timeParser
	ids := it.GarmentIDs
	if ids == nil {
		ids = []string{}
	}
	b := entities.Batch{
		ID:               it.ID,
		BatchNumber:      it.BatchNumber,
		ClientID:         it.ClientID,
		GarmentIDs:       ids,
		ExpectedGarments: it.ExpectedGarments,
		Status:           entities.BatchStatus(it.Status),
		ProcessedAt:      p.ptr("processed_at", it.ProcessedAt),
		CreatedAt:        p.at("created_at", it.CreatedAt),
		UpdatedAt:        p.at("updated_at", it.UpdatedAt),
	}
	if p.err != nil {
		return entities.Batch{}, fmt.Errorf("batch %s: %w", it.ID, p.err)
	}
	return b, nil
}
