package repository

import (
	"testing"

	"coursecatalog/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCourseCreateAndGet(t *testing.T) {
	setupTestDB(t)
	repo := NewCourseRepository()

	course := &models.Course{
		Name:        "Intro to Go",
		Level:       "Beginner",
		URL:         "https://example.com/go",
		ImageURL:    "https://example.com/go.png",
		Description: "Learn Go",
		Provider:    "Example",
		CategoryID:  1,
	}
	err := repo.Create(nil, course)
	assert.NoError(t, err)
	assert.NotZero(t, course.ID)

	got, err := repo.GetByID(nil, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Intro to Go", got.Name)
	assert.Equal(t, uint(1), got.CategoryID)
}

func TestCourseGetByCategoryID(t *testing.T) {
	setupTestDB(t)
	repo := NewCourseRepository()

	assert.NoError(t, repo.Create(nil, &models.Course{Name: "A", CategoryID: 1}))
	assert.NoError(t, repo.Create(nil, &models.Course{Name: "B", CategoryID: 1}))
	assert.NoError(t, repo.Create(nil, &models.Course{Name: "C", CategoryID: 2}))

	courses, err := repo.GetByCategoryID(nil, 1)
	assert.NoError(t, err)
	assert.Len(t, courses, 2)

	courses, err = repo.GetByCategoryID(nil, 9999)
	assert.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Len(t, courses, 0)
}

func TestCourseDeleteByCategoryID(t *testing.T) {
	setupTestDB(t)
	repo := NewCourseRepository()

	assert.NoError(t, repo.Create(nil, &models.Course{Name: "A", CategoryID: 1}))
	assert.NoError(t, repo.Create(nil, &models.Course{Name: "B", CategoryID: 1}))
	assert.NoError(t, repo.Create(nil, &models.Course{Name: "C", CategoryID: 2}))

	assert.NoError(t, repo.DeleteByCategoryID(nil, 1))

	remaining, err := repo.GetAll(nil)
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, "C", remaining[0].Name)
}

func TestCourseDeleteByID(t *testing.T) {
	setupTestDB(t)
	repo := NewCourseRepository()

	course := &models.Course{Name: "Doomed", CategoryID: 1}
	assert.NoError(t, repo.Create(nil, course))
	assert.NoError(t, repo.DeleteByID(nil, course.ID))

	_, err := repo.GetByID(nil, course.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
