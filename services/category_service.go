package services

import (
	"context"
	"errors"
	"fmt"

	"coursecatalog/models"
	"coursecatalog/pkg/logger"
	"coursecatalog/repository"

	"gorm.io/gorm"
)

// CategoryService provides business logic for category management.
type CategoryService interface {
	// Find looks up a category by id. A missing id is not an error;
	// it returns (nil, nil) so callers can fall back to the listing.
	Find(ctx context.Context, id uint) (*models.Category, error)

	// List returns all categories.
	List(ctx context.Context) ([]models.Category, error)

	// Create inserts a new category with the given name and returns it
	// with its generated id.
	Create(ctx context.Context, name string) (*models.Category, error)

	// Update renames an existing category.
	Update(ctx context.Context, id uint, name string) (*models.Category, error)

	// Delete removes the category and every course it owns inside one
	// transaction. Either both deletes persist or neither does.
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	baseRepo     repository.BaseRepository
	categoryRepo repository.CategoryRepository
	courseRepo   repository.CourseRepository
}

// NewCategoryService creates a new category service instance.
func NewCategoryService() CategoryService {
	return &categoryService{
		baseRepo:     repository.NewBaseRepository(),
		categoryRepo: repository.NewCategoryRepository(),
		courseRepo:   repository.NewCourseRepository(),
	}
}

// NewCategoryServiceWithDeps creates a service instance with injected dependencies.
// Used for testing to provide mock implementations of repositories.
func NewCategoryServiceWithDeps(
	baseRepo repository.BaseRepository,
	categoryRepo repository.CategoryRepository,
	courseRepo repository.CourseRepository,
) CategoryService {
	return &categoryService{
		baseRepo:     baseRepo,
		categoryRepo: categoryRepo,
		courseRepo:   courseRepo,
	}
}

func (s *categoryService) Find(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(nil)
}

func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(nil, category); err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	logger.Infof("Created category %q with ID: %d", category.Name, category.ID)
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, name string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("category id=%d not found: %w", id, err)
	}
	category.Name = name
	if err := s.categoryRepo.Update(nil, category); err != nil {
		return nil, fmt.Errorf("failed to update category id=%d: %w", id, err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	tx := s.baseRepo.Begin().WithContext(ctx)

	// Courses first: the schema carries no FK cascade, so orphan rows
	// would survive a category-only delete.
	if err := s.courseRepo.DeleteByCategoryID(tx, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete courses of category id=%d: %w", id, err)
	}
	if err := s.categoryRepo.DeleteByID(tx, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete category id=%d: %w", id, err)
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit category delete id=%d: %w", id, err)
	}
	logger.Infof("Deleted category id=%d with its courses", id)
	return nil
}
