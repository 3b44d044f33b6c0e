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
	defaultGarmentsTableName = "garments"
	garmentsClientIDIndex    = "client_id-index"
	garmentsRFIDIndex        = "rfid_code-index"
)

type garmentItem struct {
	ID               string `dynamodbav:"id"`
	RFIDCode         string `dynamodbav:"rfid_code"`
	Type             string `dynamodbav:"type"`
	Color            string `dynamodbav:"color"`
	Size             string `dynamodbav:"size,omitempty"`
	Condition        string `dynamodbav:"condition"`
	ServiceType      string `dynamodbav:"service_type"`
	Priority         string `dynamodbav:"priority"`
	Temperature      string `dynamodbav:"temperature,omitempty"`
	SpecialTreatment string `dynamodbav:"special_treatment,omitempty"`
	Observations     string `dynamodbav:"observations,omitempty"`
	ClientID         string `dynamodbav:"client_id"`
	BatchID          string `dynamodbav:"batch_id,omitempty"`
	Status           string `dynamodbav:"status"`
	ReceivedAt       string `dynamodbav:"received_at"`
	ProcessedAt      string `dynamodbav:"processed_at,omitempty"`
	ReadyAt          string `dynamodbav:"ready_at,omitempty"`
	DeliveredAt      string `dynamodbav:"delivered_at,omitempty"`
	LastUpdated      string `dynamodbav:"last_updated"`
	Notes            string `dynamodbav:"notes,omitempty"`
}

// GarmentDynamoRepository persists Garment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: rfid_code-index (PK: rfid_code)
type GarmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IGarmentRepository = (*GarmentDynamoRepository)(nil)

func NewGarmentDynamoRepository(ddb DynamoAPI, tableName string) *GarmentDynamoRepository {
	return &GarmentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultGarmentsTableName),
	}
}

func (r *GarmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Garment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Garment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Garment{}, nil
	}

	var it garmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Garment{}, err
	}
	return fromGarmentItem(it)
}

func (r *GarmentDynamoRepository) GetByRFID(ctx context.Context, rfidCode string) (entities.Garment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(garmentsRFIDIndex),
		KeyConditionExpression: aws.String("rfid_code = :rfid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rfid": &types.AttributeValueMemberS{Value: rfidCode},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Garment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Garment{}, nil
	}
	var it garmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Garment{}, err
	}
	return fromGarmentItem(it)
}

func (r *GarmentDynamoRepository) Save(ctx context.Context, g entities.Garment) (entities.Garment, error) {
	av, err := attributevalue.MarshalMap(toGarmentItem(g))
	if err != nil {
		return entities.Garment{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Garment{}, err
	}
	return g, nil
}

func (r *GarmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *GarmentDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Garment, error) {
	var (
		out   = make([]entities.Garment, 0)
		start map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(garmentsClientIDIndex),
			KeyConditionExpression: aws.String("client_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: clientID},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		gs, err := unmarshalGarments(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, gs...)
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		start = page.LastEvaluatedKey
	}
	sortGarments(out)
	return out, nil
}

func (r *GarmentDynamoRepository) List(ctx context.Context) ([]entities.Garment, error) {
	var (
		out   = make([]entities.Garment, 0)
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
		gs, err := unmarshalGarments(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, gs...)
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		start = page.LastEvaluatedKey
	}
	sortGarments(out)
	return out, nil
}

func unmarshalGarments(raw []map[string]types.AttributeValue) ([]entities.Garment, error) {
	out := make([]entities.Garment, 0, len(raw))
	for _, item := range raw {
		var it garmentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		g, err := fromGarmentItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func toGarmentItem(g entities.Garment) garmentItem {
	return garmentItem{
		ID:               g.ID,
		RFIDCode:         g.RFIDCode,
		Type:             g.Type,
		Color:            g.Color,
		Size:             g.Size,
		Condition:        string(g.Condition),
		ServiceType:      string(g.ServiceType),
		Priority:         string(g.Priority),
		Temperature:      g.Temperature,
		SpecialTreatment: g.SpecialTreatment,
		Observations:     g.Observations,
		ClientID:         g.ClientID,
		BatchID:          g.BatchID,
		Status:           string(g.Status),
		ReceivedAt:       formatTime(g.ReceivedAt),
		ProcessedAt:      formatTimePtr(g.ProcessedAt),
		ReadyAt:          formatTimePtr(g.ReadyAt),
		DeliveredAt:      formatTimePtr(g.DeliveredAt),
		LastUpdated:      formatTime(g.LastUpdated),
		Notes:            g.Notes,
	}
}

func fromGarmentItem(it garmentItem) (entities.Garment, error) {
	var p timeParser
	g := entities.Garment{
		ID:       it.ID,
		RFIDCode: it.RFIDCode,
		GarmentAttributes: entities.GarmentAttributes{
			Type:             it.Type,
			Color:            it.Color,
			Size:             it.Size,
			Condition:        entities.GarmentCondition(it.Condition),
			ServiceType:      entities.ServiceType(it.ServiceType),
			Priority:         entities.Priority(it.Priority),
			Temperature:      it.Temperature,
			SpecialTreatment: it.SpecialTreatment,
			Observations:     it.Observations,
		},
		ClientID:    it.ClientID,
		BatchID:     it.BatchID,
		Status:      entities.GarmentStatus(it.Status),
		ReceivedAt:  p.at("received_at", it.ReceivedAt),
		ProcessedAt: p.ptr("processed_at", it.ProcessedAt),
		ReadyAt:     p.ptr("ready_at", it.ReadyAt),
		DeliveredAt: p.ptr("delivered_at", it.DeliveredAt),
		LastUpdated: p.at("last_updated", it.LastUpdated),
		Notes:       it.Notes,
	}
	if p.err != nil {
		return entities.Garment{}, fmt.Errorf("garment %s: %w", it.ID, p.err)
	}
	return g, nil
}
