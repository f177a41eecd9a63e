package bootstrap

import (
	"fmt"

	"coursecatalog/config"
	"coursecatalog/models"
	"coursecatalog/pkg/logger"
	"coursecatalog/repository"
)

// LoadData migrates the catalog schema and logs a startup summary of the
// stored rows. The cascade on category delete is handled in the service
// layer, so the schema itself carries no foreign-key constraint.
func LoadData() error {
	logger.Infof("Starting schema migration...")

	if err := config.DB.AutoMigrate(&models.Category{}, &models.Course{}); err != nil {
		logger.Errorf("Schema migration failed: %v", err)
		return fmt.Errorf("schema migration failed: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository()
	courseRepo := repository.NewCourseRepository()

	categories, err := categoryRepo.GetAll(nil)
	if err != nil {
		logger.Errorf("Failed to load categories: %v", err)
		return fmt.Errorf("failed to load categories: %v", err)
	}
	logger.Infof("Loaded %d categories", len(categories))

	courses, err := courseRepo.GetAll(nil)
	if err != nil {
		logger.Errorf("Failed to load courses: %v", err)
		return fmt.Errorf("failed to load courses: %v", err)
	}
	logger.Infof("Loaded %d courses", len(courses))

	logger.Infof("Bootstrap completed successfully")
	return nil
}
