package repository

import (
	"context"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS history_entries (
    seq         BIGSERIAL PRIMARY KEY,
    id          TEXT NOT NULL UNIQUE,
    client_id   TEXT NOT NULL,
    garment_ids TEXT[] NOT NULL DEFAULT '{}',
    batch_id    TEXT NOT NULL DEFAULT '',
    action      TEXT NOT NULL,
    operator    TEXT NOT NULL,
    details     TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS history_entries_client_idx ON history_entries (client_id);
CREATE INDEX IF NOT EXISTS history_entries_garments_idx ON history_entries USING GIN (garment_ids);
`

// HistoryPostgresRepository is the append-only audit log in Postgres. Rows
// are only ever inserted; listing follows insertion order.
type HistoryPostgresRepository struct {
	DB *pgxpool.Pool
}

var _ interfaces.IHistoryRepository = (*HistoryPostgresRepository)(nil)

func NewHistoryPostgresRepository(db *pgxpool.Pool) *HistoryPostgresRepository {
	return &HistoryPostgresRepository{DB: db}
}

// EnsureSchema creates the table and indexes when missing.
func (r *HistoryPostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, historySchema)
	return err
}

func (r *HistoryPostgresRepository) Append(ctx context.Context, e entities.HistoryEntry) (entities.HistoryEntry, error) {
	ids := e.GarmentIDs
	if ids == nil {
		ids = []string{}
	}
	_, err := r.DB.Exec(ctx,
		`INSERT INTO history_entries(id, client_id, garment_ids, batch_id, action, operator, details, created_at)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.ClientID, ids, e.BatchID, string(e.Action), e.Operator, e.Details, e.Timestamp.UTC(),
	)
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	e.GarmentIDs = ids
	return e, nil
}

func (r *HistoryPostgresRepository) ListByGarment(ctx context.Context, garmentID string) ([]entities.HistoryEntry, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, client_id, garment_ids, batch_id, action, operator, details, created_at
         FROM history_entries WHERE $1 = ANY(garment_ids) ORDER BY seq`, garmentID)
	if err != nil {
		return nil, err
	}
	return scanHistory(rows)
}

func (r *HistoryPostgresRepository) ListByClient(ctx context.Context, clientID string) ([]entities.HistoryEntry, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, client_id, garment_ids, batch_id, action, operator, details, created_at
         FROM history_entries WHERE client_id=$1 ORDER BY seq`, clientID)
	if err != nil {
		return nil, err
	}
	return scanHistory(rows)
}

func scanHistory(rows pgx.Rows) ([]entities.HistoryEntry, error) {
	defer rows.Close()

	out := make([]entities.HistoryEntry, 0)
	for rows.Next() {
		var (
			e      entities.HistoryEntry
			action string
		)
		if err := rows.Scan(&e.ID, &e.ClientID, &e.GarmentIDs, &e.BatchID, &action, &e.Operator, &e.Details, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Action = entities.HistoryAction(action)
		out = append(out, e)
	}
	return out, rows.Err()
}
