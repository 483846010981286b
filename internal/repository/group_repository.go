package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"yatube/internal/models"

	"github.com/jmoiron/sqlx"
)

type GroupRepositoryImpl struct {
	DB *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepositoryImpl {
	return &GroupRepositoryImpl{DB: db}
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *models.Group) error {
	query := `
        INSERT INTO groups (title, slug, description)
        VALUES ($1, $2, $3)
        RETURNING group_id
    `

	err := r.DB.QueryRowContext(ctx, query,
		group.Title, group.Slug, group.Description,
	).Scan(&group.GroupID)
	if err != nil {
		return fmt.Errorf("ошибка при создании группы: %w", err)
	}

	return nil
}

func (r *GroupRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	query := `SELECT * FROM groups WHERE slug = $1`

	var group models.Group
	err := r.DB.GetContext(ctx, &group, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа %s не найдена", slug)
		}
		return nil, fmt.Errorf("ошибка при получении группы: %w", err)
	}

	return &group, nil
}

func (r *GroupRepositoryImpl) GetByID(ctx context.Context, groupID int64) (*models.Group, error) {
	query := `SELECT * FROM groups WHERE group_id = $1`

	var group models.Group
	err := r.DB.GetContext(ctx, &group, query, groupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа с ID %d не найдена", groupID)
		}
		return nil, fmt.Errorf("ошибка при получении группы: %w", err)
	}

	return &group, nil
}

func (r *GroupRepositoryImpl) List(ctx context.Context) ([]models.Group, error) {
	query := `SELECT * FROM groups ORDER BY title`

	var groups []models.Group
	err := r.DB.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка групп: %w", err)
	}

	return groups, nil
}
