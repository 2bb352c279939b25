package sqlite

import (
	"context"

	"github.com/openvoyage/voyage/internal/cms/domain"
	"github.com/openvoyage/voyage/internal/cms/store"
)

type testimonialsRepo struct {
	db dbtx
}

func (r *testimonialsRepo) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, comment, avatar_url, created_at, updated_at
		FROM testimonials ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Testimonial{}
	for rows.Next() {
		var tm domain.Testimonial
		if err := rows.Scan(&tm.ID, &tm.Name, &tm.Comment, &tm.AvatarURL,
			&tm.CreatedAt, &tm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, tm)
	}
	return out, rows.Err()
}

func (r *testimonialsRepo) GetTestimonialByID(ctx context.Context, id string) (domain.Testimonial, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, comment, avatar_url, created_at, updated_at
		FROM testimonials WHERE id = ?`, id)

	var tm domain.Testimonial
	err := row.Scan(&tm.ID, &tm.Name, &tm.Comment, &tm.AvatarURL, &tm.CreatedAt, &tm.UpdatedAt)
	if err != nil {
		return domain.Testimonial{}, mapNotFound(err)
	}
	return tm, nil
}

func (r *testimonialsRepo) CreateTestimonial(ctx context.Context, tm domain.Testimonial) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO testimonials (id, name, comment, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		tm.ID, tm.Name, tm.Comment, tm.AvatarURL, tm.CreatedAt, tm.UpdatedAt)
	return mapConstraint(err)
}

func (r *testimonialsRepo) UpdateTestimonial(ctx context.Context, tm domain.Testimonial) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE testimonials
		SET name = ?, comment = ?, avatar_url = ?, updated_at = ?
		WHERE id = ?`,
		tm.Name, tm.Comment, tm.AvatarURL, tm.UpdatedAt, tm.ID)
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

func (r *testimonialsRepo) DeleteTestimonial(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	return err
}

func (r *testimonialsRepo) DeleteAllTestimonials(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM testimonials`)
	return err
}
