package repository

import (
	"context"
	"fmt"
	"sort"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Document  string `dynamodbav:"document,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ClientDynamoRepository reads the client directory from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}
	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it)
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	clients := make([]entities.Client, 0, len(out.Items))
	for _, raw := range out.Items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		c, err := fromClientItem(it)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Document:  c.Document,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func fromClientItem(it clientItem) (entities.Client, error) {
	var p timeParser
	c := entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Email:     it.Email,
		Document:  it.Document,
		CreatedAt: p.at("created_at", it.CreatedAt),
	}
	if p.err != nil {
		return entities.Client{}, fmt.Errorf("client %s: %w", it.ID, p.err)
	}
	return c, nil
}
