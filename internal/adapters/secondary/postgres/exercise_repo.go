package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workout-builder-service/internal/core/domain"
	"workout-builder-service/internal/core/ports/output"
)

const exerciseColumns = `
	e.id, e.name, e.name_en, e.description, e.description_en,
	e.full_video_url, e.full_video_image_url, e.introduction, e.introduction_en,
	e.slug, e.slug_en, e.created_at, e.updated_at`

// attributeMatch is an EXISTS body matching an exercise attribute through its value row.
const attributeMatch = `
	SELECT 1 FROM exercise_attributes ea
	JOIN exercise_attribute_values v ON v.id = ea.attribute_value_id
	WHERE ea.exercise_id = e.id`

type exerciseRepo struct {
	pool *pgxpool.Pool
}

func NewExerciseRepository(pool *pgxpool.Pool) ports.ExerciseRepository {
	return &exerciseRepo{pool: pool}
}

func (r *exerciseRepo) FindByMuscle(ctx context.Context, filter ports.MuscleFilter) ([]*domain.Exercise, error) {
	query, args := buildMuscleQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find exercises by muscle: %w", err)
	}
	defer rows.Close()

	var exercises []*domain.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise row: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise rows: %w", err)
	}

	if err := r.loadAttributes(ctx, exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// buildMuscleQuery renders the tier query. Candidates are drawn in random order so a
// capped pool is not always the same prefix of the table.
func buildMuscleQuery(filter ports.MuscleFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	conditions = append(conditions, fmt.Sprintf("EXISTS (%s AND ea.attribute_name_id = $%d AND v.value = $%d)", attributeMatch, argPos, argPos+1))
	args = append(args, filter.MuscleAttributeID, filter.Muscle)
	argPos += 2

	conditions = append(conditions, fmt.Sprintf("EXISTS (%s AND ea.attribute_name_id = $%d AND v.value = ANY($%d))", attributeMatch, argPos, argPos+1))
	args = append(args, filter.EquipmentAttributeID, filter.Equipment)
	argPos += 2

	if len(filter.ExcludeValues) > 0 {
		conditions = append(conditions, fmt.Sprintf("NOT EXISTS (%s AND v.value = ANY($%d))", attributeMatch, argPos))
		args = append(args, filter.ExcludeValues)
		argPos++
	}
	if len(filter.ExcludeIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("NOT (e.id = ANY($%d))", argPos))
		args = append(args, filter.ExcludeIDs)
		argPos++
	}

	query := fmt.Sprintf("SELECT %s FROM exercises e WHERE %s ORDER BY random() LIMIT $%d",
		exerciseColumns, strings.Join(conditions, " AND "), argPos)
	args = append(args, filter.Limit)

	return query, args
}

func (r *exerciseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	query := fmt.Sprintf("SELECT %s FROM exercises e WHERE e.id = $1", exerciseColumns)
	ex, err := scanExercise(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise by id: %w", err)
	}

	if err := r.loadAttributes(ctx, []*domain.Exercise{ex}); err != nil {
		return nil, err
	}
	return ex, nil
}

// loadAttributes fills Attributes for every exercise with one query.
func (r *exerciseRepo) loadAttributes(ctx context.Context, exercises []*domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Exercise, len(exercises))
	ids := make([]uuid.UUID, 0, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID] = ex
		ids = append(ids, ex.ID)
		ex.Attributes = []domain.ExerciseAttribute{}
	}

	query := `
		SELECT ea.id, ea.exercise_id, n.id, n.name, v.id, v.attribute_name_id, v.value
		FROM exercise_attributes ea
		JOIN exercise_attribute_names n ON n.id = ea.attribute_name_id
		JOIN exercise_attribute_values v ON v.id = ea.attribute_value_id
		WHERE ea.exercise_id = ANY($1)
		ORDER BY n.name, v.value
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("load exercise attributes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.ExerciseAttribute
		if err := rows.Scan(
			&a.ID, &a.ExerciseID,
			&a.AttributeName.ID, &a.AttributeName.Name,
			&a.AttributeValue.ID, &a.AttributeValue.AttributeNameID, &a.AttributeValue.Value,
		); err != nil {
			return fmt.Errorf("scan exercise attribute row: %w", err)
		}
		if ex, ok := byID[a.ExerciseID]; ok {
			ex.Attributes = append(ex.Attributes, a)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate exercise attribute rows: %w", err)
	}
	return nil
}

func scanExercise(row pgx.Row) (*domain.Exercise, error) {
	ex := &domain.Exercise{}
	err := row.Scan(
		&ex.ID, &ex.Name, &ex.NameEn, &ex.Description, &ex.DescriptionEn,
		&ex.FullVideoURL, &ex.FullVideoImageURL, &ex.Introduction, &ex.IntroductionEn,
		&ex.Slug, &ex.SlugEn, &ex.CreatedAt, &ex.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ex, nil
}
