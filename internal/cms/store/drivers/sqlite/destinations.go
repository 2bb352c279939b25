package sqlite

import (
	"context"

	"github.com/openvoyage/voyage/internal/cms/domain"
	"github.com/openvoyage/voyage/internal/cms/store"
)

type destinationsRepo struct {
	db dbtx
}

func (r *destinationsRepo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	// id is a ULID, so it breaks ties between rows created in the same second.
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, price, image_url, rating, created_at, updated_at
		FROM destinations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Destination{}
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Price,
			&d.ImageURL, &d.Rating, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *destinationsRepo) GetDestinationByID(ctx context.Context, id string) (domain.Destination, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, price, image_url, rating, created_at, updated_at
		FROM destinations WHERE id = ?`, id)

	var d domain.Destination
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.Price,
		&d.ImageURL, &d.Rating, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Destination{}, mapNotFound(err)
	}
	return d, nil
}

func (r *destinationsRepo) CreateDestination(ctx context.Context, d domain.Destination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO destinations (id, title, description, price, image_url, rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Title, d.Description, d.Price, d.ImageURL, d.Rating, d.CreatedAt, d.UpdatedAt)
	return mapConstraint(err)
}

func (r *destinationsRepo) UpdateDestination(ctx context.Context, d domain.Destination) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE destinations
		SET title = ?, description = ?, price = ?, image_url = ?, rating = ?, updated_at = ?
		WHERE id = ?`,
		d.Title, d.Description, d.Price, d.ImageURL, d.Rating, d.UpdatedAt, d.ID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *destinationsRepo) DeleteDestination(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = ?`, id)
	return err
}

func (r *destinationsRepo) DeleteAllDestinations(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM destinations`)
	return err
}
