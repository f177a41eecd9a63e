package repository

import (
	"coursecatalog/config"
	"coursecatalog/models"

	"gorm.io/gorm"
)

// CategoryRepository provides data access operations for category records.
// Every method accepts an optional transaction handle; pass nil to run
// against the shared connection.
type CategoryRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.Category, error)
	GetAll(tx *gorm.DB) ([]models.Category, error)
	Create(tx *gorm.DB, category *models.Category) error
	Update(tx *gorm.DB, category *models.Category) error
	DeleteByID(tx *gorm.DB, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{
		db: config.DB,
	}
}

func (r *categoryRepository) GetByID(tx *gorm.DB, id uint) (*models.Category, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var category models.Category
	if err := db.Table(models.Category{}.TableName()).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(tx *gorm.DB) ([]models.Category, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	categories := make([]models.Category, 0)
	if err := db.Table(models.Category{}.TableName()).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Create(tx *gorm.DB, category *models.Category) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(category).Error
}

func (r *categoryRepository) Update(tx *gorm.DB, category *models.Category) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(category).Error
}

func (r *categoryRepository) DeleteByID(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("id = ?", id).Delete(&models.Category{}).Error
}
