package repository

import (
	"coursecatalog/config"
	"coursecatalog/models"

	"gorm.io/gorm"
)

// CourseRepository provides data access operations for course records.
type CourseRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.Course, error)
	GetAll(tx *gorm.DB) ([]models.Course, error)
	GetByCategoryID(tx *gorm.DB, categoryID uint) ([]models.Course, error)
	Create(tx *gorm.DB, course *models.Course) error
	Update(tx *gorm.DB, course *models.Course) error
	DeleteByID(tx *gorm.DB, id uint) error
	DeleteByCategoryID(tx *gorm.DB, categoryID uint) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository instance.
func NewCourseRepository() CourseRepository {
	return &courseRepository{
		db: config.DB,
	}
}

func (r *courseRepository) GetByID(tx *gorm.DB, id uint) (*models.Course, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var course models.Course
	if err := db.Table(models.Course{}.TableName()).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetAll(tx *gorm.DB) ([]models.Course, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	courses := make([]models.Course, 0)
	if err := db.Table(models.Course{}.TableName()).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) GetByCategoryID(tx *gorm.DB, categoryID uint) ([]models.Course, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	courses := make([]models.Course, 0)
	if err := db.Table(models.Course{}.TableName()).Where("category_id = ?", categoryID).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Create(tx *gorm.DB, course *models.Course) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(course).Error
}

func (r *courseRepository) Update(tx *gorm.DB, course *models.Course) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(course).Error
}

func (r *courseRepository) DeleteByID(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("id = ?", id).Delete(&models.Course{}).Error
}

func (r *courseRepository) DeleteByCategoryID(tx *gorm.DB, categoryID uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("category_id = ?", categoryID).Delete(&models.Course{}).Error
}
