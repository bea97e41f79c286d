package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const categoryColumns = `id, name, created_at`

const sqlCreateCategory = `INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`

func (s *Store) CreateCategory(ctx context.Context, name string) (Category, error) {
	id := uuid.New()
	if _, err := s.exec(ctx, s.db, sqlCreateCategory, id, name, now()); err != nil {
		s.logger.Error(ctx, "failed to create category", err)
		return Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return s.GetCategoryByID(ctx, id)
}

const sqlGetCategoryByID = `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`

func (s *Store) GetCategoryByID(ctx context.Context, id uuid.UUID) (Category, error) {
	var c Category
	if err := s.get(ctx, s.db, &c, sqlGetCategoryByID, id); err != nil {
		return Category{}, s.notFound(ctx, err, "get category by id")
	}
	return c, nil
}

const sqlGetCategoryByName = `SELECT ` + categoryColumns + ` FROM categories WHERE LOWER(name) = LOWER(?)`

func (s *Store) GetCategoryByName(ctx context.Context, name string) (Category, error) {
	var c Category
	if err := s.get(ctx, s.db, &c, sqlGetCategoryByName, name); err != nil {
		return Category{}, s.notFound(ctx, err, "get category by name")
	}
	return c, nil
}

const sqlListCategories = `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`

func (s *Store) ListCategories(ctx context.Context) ([]Category, error) {
	out := []Category{}
	if err := s.sel(ctx, s.db, &out, sqlListCategories); err != nil {
		s.logger.Error(ctx, "failed to list categories", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return out, nil
}

const sqlUpdateCategory = `UPDATE categories SET name = ? WHERE id = ?`

func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (Category, error) {
	res, err := s.exec(ctx, s.db, sqlUpdateCategory, name, id)
	if err != nil {
		s.logger.Error(ctx, "failed to update category", err)
		return Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return Category{}, err
	}
	return s.GetCategoryByID(ctx, id)
}

const sqlDeleteCategory = `DELETE FROM categories WHERE id = ?`

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeleteCategory, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete category", err)
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlCountCategories = `SELECT COUNT(*) FROM categories`

func (s *Store) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountCategories); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return n, nil
}
