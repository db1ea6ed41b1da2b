package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"bogenliga/internal/domain"
)

// CompressionAlgo specifies the compression algorithm used for a payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// DefaultCompressThreshold is the payload size above which changes are compressed.
const DefaultCompressThreshold = 4 * 1024

var (
	_ domain.ChangeRecorder = (*ChangeLog)(nil)
	_ domain.ChangeHistory  = (*ChangeLog)(nil)
)

type changeRow struct {
	ID                uuid.UUID           `db:"change_id"`
	Entity            string              `db:"change_entity"`
	EntityID          string              `db:"change_entity_id"`
	Action            domain.ChangeAction `db:"change_action"`
	UserID            int64               `db:"change_user_id"`
	Changes           []byte              `db:"change_payload"`
	ChangesCompressed []byte              `db:"change_payload_compressed"`
	CompressionAlgo   CompressionAlgo     `db:"change_compression"`
	CreatedAt         time.Time           `db:"change_created_at_utc"`
}

// ChangeLog writes domain changes to the change_log table on the ambient
// querier, so an entry commits or rolls back with the write it describes.
type ChangeLog struct {
	db                QuerierProvider
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
	now               func() time.Time
}

// NewChangeLog creates a change log. threshold <= 0 selects DefaultCompressThreshold.
func NewChangeLog(db QuerierProvider, threshold int) (*ChangeLog, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	if threshold <= 0 {
		threshold = DefaultCompressThreshold
	}

	return &ChangeLog{
		db:                db,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: threshold,
		now:               time.Now,
	}, nil
}

// Record implements domain.ChangeRecorder.
func (l *ChangeLog) Record(ctx context.Context, change domain.Change) error {
	payload, err := json.Marshal(change.State)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate change id: %w", err)
	}

	row := changeRow{
		ID:              id,
		Entity:          change.Entity,
		EntityID:        fmt.Sprint(change.EntityID),
		Action:          change.Action,
		UserID:          change.UserID,
		Changes:         payload,
		CompressionAlgo: CompressionNone,
		CreatedAt:       l.now().UTC(),
	}
	if len(payload) > l.compressThreshold {
		row.ChangesCompressed = l.encoder.EncodeAll(payload, nil)
		row.Changes = nil
		row.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO change_log (
			change_id, change_entity, change_entity_id, change_action, change_user_id,
			change_payload, change_payload_compressed, change_compression, change_created_at_utc
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = l.db.GetQuerier(ctx).Exec(ctx, sql,
		row.ID, row.Entity, row.EntityID, row.Action, row.UserID,
		row.Changes, row.ChangesCompressed, row.CompressionAlgo, row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert change: %w", err)
	}
	return nil
}

// History implements domain.ChangeHistory.
func (l *ChangeLog) History(ctx context.Context, entity, entityID string, limit int) ([]domain.ChangeEntry, error) {
	sql := `
		SELECT change_id, change_entity, change_entity_id, change_action, change_user_id,
			   change_payload, change_payload_compressed, change_compression, change_created_at_utc
		FROM change_log
		WHERE change_entity = $1 AND change_entity_id = $2
		ORDER BY change_created_at_utc DESC, change_id DESC
		LIMIT $3
	`

	var rows []changeRow
	if err := pgxscan.Select(ctx, l.db.GetQuerier(ctx), &rows, sql, entity, entityID, limit); err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	entries := make([]domain.ChangeEntry, 0, len(rows))
	for _, r := range rows {
		payload := r.Changes
		if r.CompressionAlgo == CompressionZstd && len(r.ChangesCompressed) > 0 {
			decompressed, err := l.decoder.DecodeAll(r.ChangesCompressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress changes: %w", err)
			}
			payload = decompressed
		}
		entries = append(entries, domain.ChangeEntry{
			ID:        r.ID,
			Entity:    r.Entity,
			EntityID:  r.EntityID,
			Action:    r.Action,
			UserID:    r.UserID,
			Changes:   json.RawMessage(payload),
			CreatedAt: r.CreatedAt.UTC(),
		})
	}
	return entries, nil
}
