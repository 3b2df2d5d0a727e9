package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// RequestRepo implements port.RequestRepository on PostgreSQL. The whole
// aggregate is stored as one JSONB document keyed by (tenant_id, id);
// status and version are mirrored into columns for indexing and the
// optimistic-concurrency check.
type RequestRepo struct {
	pool *pgxpool.Pool
}

// NewRequestRepo creates a repository backed by PostgreSQL.
func NewRequestRepo(pool *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{pool: pool}
}

// Save upserts the request conditioned on the loaded version. A lost race
// returns valueobject.ErrConflict with nothing written. The returned
// aggregate carries the version the database assigned.
func (r *RequestRepo) Save(ctx context.Context, req model.FIRequest) (model.FIRequest, error) {
	snap := req.Snapshot()
	doc, err := json.Marshal(snap)
	if err != nil {
		return model.FIRequest{}, fmt.Errorf("marshal request: %w", err)
	}

	query := `
		INSERT INTO fi_requests (
			tenant_id, id, client_id, status, version, doc, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (tenant_id, id) DO UPDATE SET
			status     = EXCLUDED.status,
			version    = fi_requests.version + 1,
			doc        = jsonb_set(EXCLUDED.doc, '{version}', to_jsonb(fi_requests.version + 1)),
			updated_at = EXCLUDED.updated_at
		WHERE fi_requests.version = $5
		RETURNING version
	`
	var newVersion int
	err = r.pool.QueryRow(ctx, query,
		snap.TenantID, snap.ID, snap.ClientID,
		snap.Status.String(), snap.Version, doc,
		snap.CreatedAt, snap.UpdatedAt,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return model.FIRequest{}, fmt.Errorf("request %s at version %d: %w",
				snap.ID, snap.Version, valueobject.ErrConflict)
		}
		return model.FIRequest{}, fmt.Errorf("save request: %w", err)
	}

	snap.Version = newVersion
	saved, err := model.FromSnapshot(snap)
	if err != nil {
		return model.FIRequest{}, fmt.Errorf("rebuild saved request: %w", err)
	}
	return saved, nil
}

// FindByID retrieves a single request.
func (r *RequestRepo) FindByID(ctx context.Context, tenantID, id string) (model.FIRequest, error) {
	query := `SELECT doc FROM fi_requests WHERE tenant_id = $1 AND id = $2`

	var doc []byte
	if err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FIRequest{}, fmt.Errorf("request %s: %w", id, valueobject.ErrNotFound)
		}
		return model.FIRequest{}, fmt.Errorf("query request: %w", err)
	}
	return unmarshalRequest(doc)
}

// FindByClientID retrieves all of a client's requests, newest first.
func (r *RequestRepo) FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.FIRequest, error) {
	query := `
		SELECT doc FROM fi_requests
		WHERE tenant_id = $1 AND client_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, tenantID, clientID)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close()

	var result []model.FIRequest
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		req, err := unmarshalRequest(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}

func unmarshalRequest(doc []byte) (model.FIRequest, error) {
	var snap model.FIRequestSnapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		return model.FIRequest{}, fmt.Errorf("unmarshal request: %w", err)
	}
	req, err := model.FromSnapshot(snap)
	if err != nil {
		return model.FIRequest{}, fmt.Errorf("rebuild request: %w", err)
	}
	return req, nil
}

// isUniqueViolation reports a duplicate-key insert, which means two writers
// raced to create the same request.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
