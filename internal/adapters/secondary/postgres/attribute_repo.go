package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workout-builder-service/internal/core/domain"
	"workout-builder-service/internal/core/ports/output"
)

type attributeRepo struct {
	pool *pgxpool.Pool
}

func NewAttributeRepository(pool *pgxpool.Pool) ports.AttributeRepository {
	return &attributeRepo{pool: pool}
}

func (r *attributeRepo) GetName(ctx context.Context, name domain.AttributeNameType) (*domain.AttributeName, error) {
	attr := &domain.AttributeName{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM exercise_attribute_names WHERE name = $1`, string(name),
	).Scan(&attr.ID, &attr.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAttributeNameNotFound
		}
		return nil, fmt.Errorf("get attribute name %s: %w", name, err)
	}
	return attr, nil
}

func (r *attributeRepo) ListValues(ctx context.Context, name domain.AttributeNameType) ([]*domain.AttributeValue, error) {
	query := `
		SELECT v.id, v.attribute_name_id, v.value
		FROM exercise_attribute_values v
		JOIN exercise_attribute_names n ON n.id = v.attribute_name_id
		WHERE n.name = $1
		ORDER BY v.value
	`
	rows, err := r.pool.Query(ctx, query, string(name))
	if err != nil {
		return nil, fmt.Errorf("list attribute values: %w", err)
	}
	defer rows.Close()

	values := []*domain.AttributeValue{}
	for rows.Next() {
		v := &domain.AttributeValue{}
		if err := rows.Scan(&v.ID, &v.AttributeNameID, &v.Value); err != nil {
			return nil, fmt.Errorf("scan attribute value row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attribute value rows: %w", err)
	}
	return values, nil
}
