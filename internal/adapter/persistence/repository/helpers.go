package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"lavanderia_rfid/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// timeParser reads stored timestamps and keeps the first failure, so an item
// mapper can parse every field and check once.
type timeParser struct {
	err error
}

func (p *timeParser) at(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	return t
}

func (p *timeParser) ptr(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t := p.at(field, s)
	return &t
}

func sortGarments(gs []entities.Garment) {
	sort.SliceStable(gs, func(i, j int) bool {
		if !gs[i].ReceivedAt.Equal(gs[j].ReceivedAt) {
			return gs[i].ReceivedAt.Before(gs[j].ReceivedAt)
		}
		return gs[i].ID < gs[j].ID
	})
}

func sortBatches(bs []entities.Batch) {
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].BatchNumber < bs[j].BatchNumber })
}

func cloneGarment(g entities.Garment) entities.Garment {
	g.ProcessedAt = cloneTimePtr(g.ProcessedAt)
	g.ReadyAt = cloneTimePtr(g.ReadyAt)
	g.DeliveredAt = cloneTimePtr(g.DeliveredAt)
	return g
}

func cloneBatch(b entities.Batch) entities.Batch {
	b.GarmentIDs = append([]string{}, b.GarmentIDs...)
	b.ProcessedAt = cloneTimePtr(b.ProcessedAt)
	return b
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
