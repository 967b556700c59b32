package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workout-builder-service/internal/core/domain"
	"workout-builder-service/internal/core/ports/output"
)

type catalogWriter struct {
	pool *pgxpool.Pool
}

func NewCatalogWriter(pool *pgxpool.Pool) ports.CatalogWriter {
	return &catalogWriter{pool: pool}
}

// Import upserts exercises by slug and replaces their attribute links, all in one transaction.
func (w *catalogWriter) Import(ctx context.Context, exercises []*domain.Exercise) (ports.ImportStats, error) {
	var stats ports.ImportStats

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return stats, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	names := map[domain.AttributeNameType]uuid.UUID{}
	values := map[string]uuid.UUID{}

	for _, ex := range exercises {
		exerciseID, created, err := upsertExercise(ctx, tx, ex)
		if err != nil {
			return stats, err
		}
		if created {
			stats.ExercisesCreated++
		} else {
			stats.ExercisesUpdated++
		}

		if _, err := tx.Exec(ctx, `DELETE FROM exercise_attributes WHERE exercise_id = $1`, exerciseID); err != nil {
			return stats, fmt.Errorf("clear attributes of %s: %w", ex.Slug, err)
		}

		for _, a := range ex.Attributes {
			nameID, ok := names[a.AttributeName.Name]
			if !ok {
				nameID, err = upsertAttributeName(ctx, tx, a.AttributeName.Name)
				if err != nil {
					return stats, err
				}
				names[a.AttributeName.Name] = nameID
			}

			key := string(a.AttributeName.Name) + "/" + a.AttributeValue.Value
			valueID, ok := values[key]
			if !ok {
				var inserted bool
				valueID, inserted, err = upsertAttributeValue(ctx, tx, nameID, a.AttributeValue.Value)
				if err != nil {
					return stats, err
				}
				values[key] = valueID
				if inserted {
					stats.ValuesCreated++
				}
			}

			tag, err := tx.Exec(ctx, `
				INSERT INTO exercise_attributes (id, exercise_id, attribute_name_id, attribute_value_id)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (exercise_id, attribute_value_id) DO NOTHING
			`, uuid.New(), exerciseID, nameID, valueID)
			if err != nil {
				return stats, fmt.Errorf("link %s to %s: %w", ex.Slug, key, err)
			}
			stats.LinksCreated += int(tag.RowsAffected())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return stats, fmt.Errorf("commit import: %w", err)
	}
	return stats, nil
}

func upsertExercise(ctx context.Context, tx pgx.Tx, ex *domain.Exercise) (uuid.UUID, bool, error) {
	id := ex.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var created bool
	err := tx.QueryRow(ctx, `
		INSERT INTO exercises
			(id, name, name_en, description, description_en, full_video_url,
			 full_video_image_url, introduction, introduction_en, slug, slug_en)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name, name_en = EXCLUDED.name_en,
			description = EXCLUDED.description, description_en = EXCLUDED.description_en,
			full_video_url = EXCLUDED.full_video_url, full_video_image_url = EXCLUDED.full_video_image_url,
			introduction = EXCLUDED.introduction, introduction_en = EXCLUDED.introduction_en,
			slug_en = EXCLUDED.slug_en, updated_at = NOW()
		RETURNING id, (xmax = 0) AS inserted
	`,
		id, ex.Name, ex.NameEn, ex.Description, ex.DescriptionEn, ex.FullVideoURL,
		ex.FullVideoImageURL, ex.Introduction, ex.IntroductionEn, ex.Slug, ex.SlugEn,
	).Scan(&id, &created)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("upsert exercise %s: %w", ex.Slug, err)
	}
	return id, created, nil
}

func upsertAttributeName(ctx context.Context, tx pgx.Tx, name domain.AttributeNameType) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO exercise_attribute_names (id, name) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, uuid.New(), string(name)).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("upsert attribute name %s: %w", name, err)
	}
	return id, nil
}

func upsertAttributeValue(ctx context.Context, tx pgx.Tx, nameID uuid.UUID, value string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	var inserted bool
	err := tx.QueryRow(ctx, `
		INSERT INTO exercise_attribute_values (id, attribute_name_id, value) VALUES ($1, $2, $3)
		ON CONFLICT (attribute_name_id, value) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, (xmax = 0) AS inserted
	`, uuid.New(), nameID, value).Scan(&id, &inserted)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("upsert attribute value %s: %w", value, err)
	}
	return id, inserted, nil
}
