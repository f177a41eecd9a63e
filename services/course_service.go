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

// CourseService provides business logic for course management.
type CourseService interface {
	// Find looks up a course by id, returning (nil, nil) when absent.
	Find(ctx context.Context, id uint) (*models.Course, error)

	// Get looks up a course by id and propagates gorm.ErrRecordNotFound
	// when absent. The single-course JSON export uses this variant; every
	// other caller goes through Find.
	Get(ctx context.Context, id uint) (*models.Course, error)

	// List returns all courses.
	List(ctx context.Context) ([]models.Course, error)

	// ListByCategory returns the courses owned by one category.
	// Unknown categories yield an empty list, not an error.
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Course, error)

	// Create inserts a new course after applying the blank-field defaults.
	Create(ctx context.Context, course models.Course) (*models.Course, error)

	// Update replaces all mutable fields of an existing course, applying
	// the blank-field defaults. CategoryID is left untouched.
	Update(ctx context.Context, id uint, fields models.Course) (*models.Course, error)

	// Delete removes a single course.
	Delete(ctx context.Context, id uint) error
}

type courseService struct {
	courseRepo repository.CourseRepository
}

// NewCourseService creates a new course service instance.
func NewCourseService() CourseService {
	return &courseService{
		courseRepo: repository.NewCourseRepository(),
	}
}

// NewCourseServiceWithDeps creates a service instance with injected dependencies.
// Used for testing to provide mock implementations of repositories.
func NewCourseServiceWithDeps(courseRepo repository.CourseRepository) CourseService {
	return &courseService{
		courseRepo: courseRepo,
	}
}

// applyDefaults substitutes the documented fallbacks for blank optional
// fields. URL and ImageURL have no defaults; empty stays empty.
func applyDefaults(course *models.Course) {
	if course.Level == "" {
		course.Level = "Unknown"
	}
	if course.Description == "" {
		course.Description = fmt.Sprintf("Course about %s", course.Name)
	}
	if course.Provider == "" {
		course.Provider = "Unknown"
	}
}

func (s *courseService) Find(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return course, nil
}

func (s *courseService) Get(ctx context.Context, id uint) (*models.Course, error) {
	return s.courseRepo.GetByID(nil, id)
}

func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.GetAll(nil)
}

func (s *courseService) ListByCategory(ctx context.Context, categoryID uint) ([]models.Course, error) {
	return s.courseRepo.GetByCategoryID(nil, categoryID)
}

func (s *courseService) Create(ctx context.Context, course models.Course) (*models.Course, error) {
	applyDefaults(&course)
	if err := s.courseRepo.Create(nil, &course); err != nil {
		return nil, fmt.Errorf("failed to create course %q: %w", course.Name, err)
	}
	logger.Infof("Created course %q with ID: %d in category %d", course.Name, course.ID, course.CategoryID)
	return &course, nil
}

func (s *courseService) Update(ctx context.Context, id uint, fields models.Course) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("course id=%d not found: %w", id, err)
	}

	// Full replace of the mutable fields; the owning category never changes.
	course.Name = fields.Name
	course.Level = fields.Level
	course.URL = fields.URL
	course.ImageURL = fields.ImageURL
	course.Description = fields.Description
	course.Provider = fields.Provider
	applyDefaults(course)

	if err := s.courseRepo.Update(nil, course); err != nil {
		return nil, fmt.Errorf("failed to update course id=%d: %w", id, err)
	}
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	if err := s.courseRepo.DeleteByID(nil, id); err != nil {
		return fmt.Errorf("failed to delete course id=%d: %w", id, err)
	}
	logger.Infof("Deleted course id=%d", id)
	return nil
}
