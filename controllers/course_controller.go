package controllers

import (
	"net/http"

	"coursecatalog/models"
	"coursecatalog/pkg/logger"
	"coursecatalog/utils"

	"github.com/gin-gonic/gin"
)

type courseForm struct {
	Name        string `form:"name" validate:"required"`
	Level       string `form:"level"`
	URL         string `form:"url"`
	ImageURL    string `form:"image_url"`
	Description string `form:"description"`
	Provider    string `form:"provider"`
}

// GET /category/:id/course/new
func newCourseForm(c *gin.Context) {
	category, err := categorySrv.Find(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if category == nil {
		redirectToAllCourses(c)
		return
	}
	c.HTML(http.StatusOK, "new_course.html", gin.H{"Category": category})
}

// POST /category/:id/course/new
func createCourse(c *gin.Context) {
	ctx := c.Request.Context()

	category, err := categorySrv.Find(ctx, pathID(c, "id"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if category == nil {
		redirectToAllCourses(c)
		return
	}

	var form courseForm
	if err := c.ShouldBind(&form); err != nil {
		redirectToAllCourses(c)
		return
	}
	if err := utils.ValidateStruct(&form); err != nil {
		logger.Debugf("Course create skipped, empty name")
		redirectToAllCourses(c)
		return
	}

	course := models.Course{
		Name:        form.Name,
		Level:       form.Level,
		URL:         form.URL,
		ImageURL:    form.ImageURL,
		Description: form.Description,
		Provider:    form.Provider,
		CategoryID:  category.ID,
	}
	if _, err := courseSrv.Create(ctx, course); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.SetFlash(c, "New course is successfully created")
	redirectToAllCourses(c)
}

// GET /category/:id/course/:cid/edit
func editCourseForm(c *gin.Context) {
	course, err := courseSrv.Find(c.Request.Context(), pathID(c, "cid"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if course == nil {
		redirectToAllCourses(c)
		return
	}
	c.HTML(http.StatusOK, "edit_course.html", gin.H{"Course": course})
}

// POST /category/:id/course/:cid/edit
func updateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	course, err := courseSrv.Find(ctx, pathID(c, "cid"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if course == nil {
		redirectToAllCourses(c)
		return
	}

	var form courseForm
	if err := c.ShouldBind(&form); err != nil {
		redirectToAllCourses(c)
		return
	}
	if err := utils.ValidateStruct(&form); err != nil {
		logger.Debugf("Course edit skipped, empty name")
		redirectToAllCourses(c)
		return
	}

	fields := models.Course{
		Name:        form.Name,
		Level:       form.Level,
		URL:         form.URL,
		ImageURL:    form.ImageURL,
		Description: form.Description,
		Provider:    form.Provider,
	}
	if _, err := courseSrv.Update(ctx, course.ID, fields); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.SetFlash(c, "Course is successfully edited")
	redirectToAllCourses(c)
}

// GET /category/:id/course/:cid/delete
func deleteCourseForm(c *gin.Context) {
	course, err := courseSrv.Find(c.Request.Context(), pathID(c, "cid"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if course == nil {
		redirectToAllCourses(c)
		return
	}
	c.HTML(http.StatusOK, "delete_course.html", gin.H{"Course": course})
}

// POST /category/:id/course/:cid/delete
func deleteCourse(c *gin.Context) {
	ctx := c.Request.Context()

	course, err := courseSrv.Find(ctx, pathID(c, "cid"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if course == nil {
		redirectToAllCourses(c)
		return
	}

	if err := courseSrv.Delete(ctx, course.ID); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.SetFlash(c, "Course is successfully deleted")
	redirectToAllCourses(c)
}

// RegisterCourseRoutes registers the course form endpoints.
func RegisterCourseRoutes(r *gin.Engine) {
	cat := r.Group("/category")
	{
		cat.GET("/:id/course/new", newCourseForm)
		cat.POST("/:id/course/new", createCourse)
		cat.GET("/:id/course/:cid/edit", editCourseForm)
		cat.POST("/:id/course/:cid/edit", updateCourse)
		cat.GET("/:id/course/:cid/delete", deleteCourseForm)
		cat.POST("/:id/course/:cid/delete", deleteCourse)
	}
}
