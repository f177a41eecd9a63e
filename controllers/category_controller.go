package controllers

import (
	"net/http"

	"coursecatalog/pkg/logger"
	"coursecatalog/utils"

	"github.com/gin-gonic/gin"
)

type categoryForm struct {
	Name string `form:"name" validate:"required"`
}

// GET /category/new
func newCategoryForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_category.html", gin.H{})
}

// POST /category/new
func createCategory(c *gin.Context) {
	var form categoryForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Debugf("Category form bind failed: %v", err)
		redirectToAllCourses(c)
		return
	}
	// Blank name: skip the mutation and redirect as if nothing happened.
	if err := utils.ValidateStruct(&form); err != nil {
		logger.Debugf("Category create skipped, empty name")
		redirectToAllCourses(c)
		return
	}

	if _, err := categorySrv.Create(c.Request.Context(), form.Name); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.SetFlash(c, "New category is successfully created")
	redirectToAllCourses(c)
}

// GET /category/:id/edit
func editCategoryForm(c *gin.Context) {
	category, err := categorySrv.Find(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if category == nil {
		redirectToAllCourses(c)
		return
	}
	c.HTML(http.StatusOK, "edit_category.html", gin.H{"Category": category})
}

// POST /category/:id/edit
func updateCategory(c *gin.Context) {
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

	var form categoryForm
	if err := c.ShouldBind(&form); err != nil {
		redirectToAllCourses(c)
		return
	}
	if err := utils.ValidateStruct(&form); err != nil {
		logger.Debugf("Category edit skipped, empty name")
		redirectToAllCourses(c)
		return
	}

	if _, err := categorySrv.Update(ctx, category.ID, form.Name); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.SetFlash(c, "Category is successfully edited")
	redirectToAllCourses(c)
}

// GET /category/:id/delete
func deleteCategoryForm(c *gin.Context) {
	category, err := categorySrv.Find(c.Request.Context(), pathID(c, "id"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	if category == nil {
		redirectToAllCourses(c)
		return
	}
	c.HTML(http.StatusOK, "delete_category.html", gin.H{"Category": category})
}

// POST /category/:id/delete
func deleteCategory(c *gin.Context) {
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

	if err := categorySrv.Delete(ctx, category.ID); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	utils.SetFlash(c, "Category is successfully deleted")
	redirectToAllCourses(c)
}

// RegisterCategoryRoutes registers the category form endpoints.
func RegisterCategoryRoutes(r *gin.Engine) {
	cat := r.Group("/category")
	{
		cat.GET("/new", newCategoryForm)
		cat.POST("/new", createCategory)
		cat.GET("/:id/edit", editCategoryForm)
		cat.POST("/:id/edit", updateCategory)
		cat.GET("/:id/delete", deleteCategoryForm)
		cat.POST("/:id/delete", deleteCategory)
	}
}
