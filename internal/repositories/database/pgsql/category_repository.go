package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_app/internal/models"
	"github.com/SscSPs/cashflow_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	categoryColumns    = `category_id, name, category_type, created_at, created_by, last_updated_at, last_updated_by`
	subCategoryColumns = `sub_category_id, category_id, name, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for categories and sub-categories.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (domain.Category, error) {
	var m models.Category
	err := row.Scan(&m.CategoryID, &m.Name, &m.Type, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		return domain.Category{}, err
	}
	return mapping.ToDomainCategory(m), nil
}

func scanSubCategory(row pgx.Row) (domain.SubCategory, error) {
	var m models.SubCategory
	err := row.Scan(&m.SubCategoryID, &m.CategoryID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		return domain.SubCategory{}, err
	}
	return mapping.ToDomainSubCategory(m), nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	category, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return &category, nil
}

// ListCategories retrieves categories, optionally filtered by type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	args := []any{}
	if categoryType != nil {
		query += ` WHERE category_type = $1`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `INSERT INTO categories (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Name, m.Type, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s category '%s' already exists", apperrors.ErrDuplicate, m.Type, m.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// UpdateCategory updates the name and type of a category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET name = $2, category_type = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Name, m.Type, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s category '%s' already exists", apperrors.ErrDuplicate, m.Type, m.Name)
		}
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category together with its sub-categories.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: category %s is used by transactions", apperrors.ErrConflict, categoryID)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSubCategoryByID retrieves a sub-category by its ID.
func (r *PgxCategoryRepository) FindSubCategoryByID(ctx context.Context, subCategoryID string) (*domain.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE sub_category_id = $1;`
	sub, err := scanSubCategory(r.Pool.QueryRow(ctx, query, subCategoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sub-category by ID %s: %w", subCategoryID, err)
	}
	return &sub, nil
}

// ListSubCategories retrieves the sub-categories of a category.
func (r *PgxCategoryRepository) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE category_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-categories for category %s: %w", categoryID, err)
	}
	defer rows.Close()

	subs := []domain.SubCategory{}
	for rows.Next() {
		sub, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sub-category row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sub-category rows: %w", err)
	}
	return subs, nil
}

// SaveSubCategory inserts a new sub-category.
func (r *PgxCategoryRepository) SaveSubCategory(ctx context.Context, subCategory domain.SubCategory) error {
	m := mapping.ToModelSubCategory(subCategory)
	query := `INSERT INTO sub_categories (` + subCategoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.Pool.Exec(ctx, query, m.SubCategoryID, m.CategoryID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: sub-category '%s' already exists in this category", apperrors.ErrDuplicate, m.Name)
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, m.CategoryID)
		}
		return fmt.Errorf("failed to save sub-category %s: %w", m.SubCategoryID, err)
	}
	return nil
}

// UpdateSubCategory renames a sub-category.
func (r *PgxCategoryRepository) UpdateSubCategory(ctx context.Context, subCategory domain.SubCategory) error {
	m := mapping.ToModelSubCategory(subCategory)
	query := `
		UPDATE sub_categories
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE sub_category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.SubCategoryID, m.Name, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sub-category '%s' already exists in this category", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update sub-category %s: %w", m.SubCategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSubCategory removes a sub-category. Transactions pointing at it keep their category.
func (r *PgxCategoryRepository) DeleteSubCategory(ctx context.Context, subCategoryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM sub_categories WHERE sub_category_id = $1;`, subCategoryID)
	if err != nil {
		return fmt.Errorf("failed to delete sub-category %s: %w", subCategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
