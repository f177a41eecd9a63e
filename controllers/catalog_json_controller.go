package controllers

import (
	"net/http"

	"coursecatalog/utils"

	"github.com/gin-gonic/gin"
)

// AllCoursesJSON exports every course
// @Summary Export all courses
// @Description Returns all courses in the catalog
// @Tags Catalog Export
// @Produce json
// @Success 200 {object} CourseListResponse "All course records"
// @Failure 500 {object} StandardErrorResponse "Internal server error"
// @Router /category/all/json [get]
func allCoursesJSON(c *gin.Context) {
	courses, err := courseSrv.List(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"Course": courses})
}

// CoursesInCategoryJSON exports the courses of one category
// @Summary Export courses in a category
// @Description Returns the courses owned by the given category; unknown ids yield an empty list
// @Tags Catalog Export
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} CourseListResponse "Course records in the category"
// @Failure 500 {object} StandardErrorResponse "Internal server error"
// @Router /category/{id}/json [get]
func coursesInCategoryJSON(c *gin.Context) {
	// No existence guard: an unknown category simply filters to nothing.
	courses, err := courseSrv.ListByCategory(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"Course": courses})
}

// CourseJSON exports a single course
// @Summary Export one course
// @Description Returns one course record. Unlike the HTML routes, an unknown id is answered with an error, not a fallback.
// @Tags Catalog Export
// @Produce json
// @Param id path int true "Category ID"
// @Param cid path int true "Course ID"
// @Success 200 {object} CourseResponse "The course record"
// @Failure 500 {object} StandardErrorResponse "Course not found or internal server error"
// @Router /category/{id}/course/{cid}/json [get]
func courseJSON(c *gin.Context) {
	// Deliberately strict: the lookup failure propagates instead of
	// redirecting like the HTML handlers do.
	course, err := courseSrv.Get(c.Request.Context(), pathID(c, "cid"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"Course": course})
}

// RegisterCatalogJSONRoutes registers the read-only JSON export endpoints.
func RegisterCatalogJSONRoutes(r *gin.Engine) {
	cat := r.Group("/category")
	{
		cat.GET("/all/json", allCoursesJSON)
		cat.GET("/:id/json", coursesInCategoryJSON)
		cat.GET("/:id/course/:cid/json", courseJSON)
	}
}
