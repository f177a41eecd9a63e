package controllers

import (
	"net/http"
	"strconv"

	"coursecatalog/services"
	"coursecatalog/utils"

	"github.com/gin-gonic/gin"
)

var categorySrv = services.NewCategoryService()
var courseSrv = services.NewCourseService()

// SetCategoryService initializes the category service instance.
// Used for dependency injection after the database connection is up,
// and in tests to provide alternative implementations.
func SetCategoryService(s services.CategoryService) {
	categorySrv = s
}

// SetCourseService initializes the course service instance.
func SetCourseService(s services.CourseService) {
	courseSrv = s
}

const allCoursesPath = "/category/all"

// pathID parses a numeric path parameter. Non-numeric or negative values
// map to 0, which no stored row ever has, so the lookup takes the same
// missing-id redirect path as an unknown id.
func pathID(c *gin.Context, name string) uint {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		return 0
	}
	return uint(id)
}

func redirectToAllCourses(c *gin.Context) {
	c.Redirect(http.StatusFound, allCoursesPath)
}

// GET / and GET /category
func index(c *gin.Context) {
	redirectToAllCourses(c)
}

// GET /category/all
func allCourses(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := categorySrv.List(ctx)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	courses, err := courseSrv.List(ctx)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.HTML(http.StatusOK, "course_list.html", gin.H{
		"Categories": categories,
		"Courses":    courses,
		"Flash":      utils.PopFlash(c),
	})
}

// GET /category/:id
func coursesInCategory(c *gin.Context) {
	ctx := c.Request.Context()

	currentCategory, err := categorySrv.Find(ctx, pathID(c, "id"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if currentCategory == nil {
		redirectToAllCourses(c)
		return
	}

	categories, err := categorySrv.List(ctx)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	courses, err := courseSrv.ListByCategory(ctx, currentCategory.ID)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.HTML(http.StatusOK, "course_list.html", gin.H{
		"CurrentCategory": currentCategory,
		"Categories":      categories,
		"Courses":         courses,
		"Flash":           utils.PopFlash(c),
	})
}

// RegisterCatalogRoutes registers the listing endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	r.GET("/", index)

	cat := r.Group("/category")
	{
		cat.GET("", index)
		cat.GET("/all", allCourses)
		cat.GET("/:id", coursesInCategory)
	}
}
