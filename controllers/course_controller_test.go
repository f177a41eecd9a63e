package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"coursecatalog/config"
	"coursecatalog/models"

	"github.com/stretchr/testify/assert"
)

func createTestCategory(t *testing.T, name string) models.Category {
	category := models.Category{Name: name}
	assert.NoError(t, config.DB.Create(&category).Error)
	return category
}

func TestCreateCourse(t *testing.T) {
	r := setupTestRouter(t)
	category := createTestCategory(t, "Programming")

	form := url.Values{
		"name":        {"Intro to Go"},
		"level":       {"Beginner"},
		"url":         {"https://example.com/go"},
		"image_url":   {"https://example.com/go.png"},
		"description": {"Learn Go from scratch"},
		"provider":    {"Example Academy"},
	}
	w := doPostForm(r, "/category/"+itoa(category.ID)+"/course/new", form)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/category/all", w.Header().Get("Location"))

	var course models.Course
	assert.NoError(t, config.DB.First(&course).Error)
	assert.Equal(t, "Intro to Go", course.Name)
	assert.Equal(t, "Beginner", course.Level)
	assert.Equal(t, "https://example.com/go", course.URL)
	assert.Equal(t, "https://example.com/go.png", course.ImageURL)
	assert.Equal(t, "Learn Go from scratch", course.Description)
	assert.Equal(t, "Example Academy", course.Provider)
	assert.Equal(t, category.ID, course.CategoryID)
}

func TestCreateCourseBlankFieldsGetDefaults(t *testing.T) {
	r := setupTestRouter(t)
	category := createTestCategory(t, "Programming")

	form := url.Values{
		"name":        {"X"},
		"level":       {""},
		"url":         {""},
		"image_url":   {""},
		"description": {""},
		"provider":    {""},
	}
	w := doPostForm(r, "/category/"+itoa(category.ID)+"/course/new", form)
	assert.Equal(t, http.StatusFound, w.Code)

	var course models.Course
	assert.NoError(t, config.DB.First(&course).Error)
	assert.Equal(t, "Unknown", course.Level)
	assert.Equal(t, "Course about X", course.Description)
	assert.Equal(t, "Unknown", course.Provider)
	assert.Equal(t, "", course.URL)
	assert.Equal(t, "", course.ImageURL)
}

func TestCreateCourseBlankNameIsSilentNoOp(t *testing.T) {
	r := setupTestRouter(t)
	category := createTestCategory(t, "Programming")

	w := doPostForm(r, "/category/"+itoa(category.ID)+"/course/new", url.Values{"name": {""}})
	assert.Equal(t, http.StatusFound, w.Code)

	var count int64
	assert.NoError(t, config.DB.Model(&models.Course{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateCourseUnknownCategoryRedirects(t *testing.T) {
	r := setupTestRouter(t)

	w := doPostForm(r, "/category/9999/course/new", url.Values{"name": {"Orphan"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/category/all", w.Header().Get("Location"))

	var count int64
	assert.NoError(t, config.DB.Model(&models.Course{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditCoursePreservesCategory(t *testing.T) {
	r := setupTestRouter(t)
	category := createTestCategory(t, "Programming")

	course := models.Course{Name: "Old name", Level: "Beginner", CategoryID: category.ID}
	assert.NoError(t, config.DB.Create(&course).Error)

	form := url.Values{
		"name":  {"New name"},
		"level": {"Advanced"},
	}
	path := "/category/" + itoa(category.ID) + "/course/" + itoa(course.ID) + "/edit"
	w := doPostForm(r, path, form)
	assert.Equal(t, http.StatusFound, w.Code)

	var got models.Course
	assert.NoError(t, config.DB.First(&got, course.ID).Error)
	assert.Equal(t, "New name", got.Name)
	assert.Equal(t, "Advanced", got.Level)
	assert.Equal(t, category.ID, got.CategoryID)
}

func TestEditCourseUnknownIDRedirects(t *testing.T) {
	r := setupTestRouter(t)
	category := createTestCategory(t, "Programming")

	path := "/category/" + itoa(category.ID) + "/course/9999/edit"
	w := doGet(r, path)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/category/all", w.Header().Get("Location"))
}

func TestDeleteCourse(t *testing.T) {
	r := setupTestRouter(t)
	category := createTestCategory(t, "Programming")

	course := models.Course{Name: "Doomed", CategoryID: category.ID}
	assert.NoError(t, config.DB.Create(&course).Error)

	path := "/category/" + itoa(category.ID) + "/course/" + itoa(course.ID) + "/delete"

	w := doGet(r, path)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Doomed")

	w = doPostForm(r, path, url.Values{})
	assert.Equal(t, http.StatusFound, w.Code)

	var count int64
	assert.NoError(t, config.DB.Model(&models.Course{}).Count(&count).Error)
	assert.Zero(t, count)

	// The owning category is untouched.
	assert.NoError(t, config.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
