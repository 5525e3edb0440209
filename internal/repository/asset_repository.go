package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labtrack/labtrack-service/internal/domain"
)

// AssetRepository encapsulates equipment persistence.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Asset, error)
	List(ctx context.Context, limit, offset int) ([]domain.Asset, error)
	ListByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.Asset, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Asset, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
}

type assetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository instantiates repository.
func NewAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &assetRepository{pool: pool}
}

const assetColumns = `id, name, asset_code, serial_number, location, status, qr_code, created_by_id, created_at, updated_at`

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	const query = `
        INSERT INTO assets (name, asset_code, serial_number, location, status, qr_code, created_by_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		asset.Name,
		asset.AssetCode,
		asset.SerialNumber,
		asset.Location,
		asset.Status,
		asset.QRCode,
		asset.CreatedByID,
	).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
	return mapPgError(err)
}

func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	const query = `
        UPDATE assets SET name=$1, asset_code=$2, serial_number=$3, location=$4, status=$5, qr_code=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		asset.Name,
		asset.AssetCode,
		asset.SerialNumber,
		asset.Location,
		asset.Status,
		asset.QRCode,
		asset.ID,
	).Scan(&asset.UpdatedAt)
	return mapPgError(err)
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	var asset domain.Asset
	row := r.pool.QueryRow(ctx, `SELECT `+assetColumns+` FROM assets WHERE id=$1`, id)
	if err := scanAsset(row, &asset); err != nil {
		return nil, mapPgError(err)
	}
	return &asset, nil
}

func (r *assetRepository) List(ctx context.Context, limit, offset int) ([]domain.Asset, error) {
	const query = `SELECT ` + assetColumns + ` FROM assets ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	return r.query(ctx, query, limit, offset)
}

func (r *assetRepository) ListByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.Asset, error) {
	const query = `SELECT ` + assetColumns + ` FROM assets WHERE status=$1 ORDER BY created_at DESC`
	return r.query(ctx, query, status)
}

func (r *assetRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.query(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = ANY($1)`, ids)
}

func (r *assetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assets`).Scan(&count)
	return count, err
}

func (r *assetRepository) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM assets GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStatusCounts(rows)
}

func (r *assetRepository) query(ctx context.Context, query string, args ...any) ([]domain.Asset, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Asset
	for rows.Next() {
		var asset domain.Asset
		if err := scanAsset(rows, &asset); err != nil {
			return nil, err
		}
		result = append(result, asset)
	}
	return result, rows.Err()
}

func scanAsset(row pgx.Row, asset *domain.Asset) error {
	return row.Scan(
		&asset.ID,
		&asset.Name,
		&asset.AssetCode,
		&asset.SerialNumber,
		&asset.Location,
		&asset.Status,
		&asset.QRCode,
		&asset.CreatedByID,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
}

func scanStatusCounts(rows pgx.Rows) ([]domain.StatusCount, error) {
	var result []domain.StatusCount
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		result = append(result, sc)
	}
	return result, rows.Err()
}
