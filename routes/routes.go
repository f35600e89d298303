package routes

import (
	"github.com/eatn-dev/eatn-menu-api/controllers"
	"github.com/eatn-dev/eatn-menu-api/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.Default())

	categories := r.Group("/categories")
	{
		categories.POST("", controllers.CreateCategory)
		categories.GET("", controllers.GetCategories)
		categories.GET("/:id", controllers.GetCategoryByID)
		categories.PUT("/:id", controllers.UpdateCategory)
		categories.DELETE("/:id", controllers.DeleteCategory)
	}

	subcategories := r.Group("/subcategories")
	{
		subcategories.POST("", controllers.CreateSubcategory)
		subcategories.GET("", controllers.GetSubcategories)
		subcategories.GET("/:id", controllers.GetSubcategoryByID)
		subcategories.PUT("/:id", controllers.UpdateSubcategory)
		subcategories.DELETE("/:id", controllers.DeleteSubcategory)
	}

	items := r.Group("/items")
	{
		items.POST("", controllers.CreateMenuItem)
		items.GET("", controllers.GetMenuItems)
		items.GET("/:id", controllers.GetMenuItemByID)
		items.PUT("/:id", controllers.UpdateMenuItem)
		items.DELETE("/:id", controllers.DeleteMenuItem)

		items.POST("/:id/tags", controllers.AssignTagToMenuItem)
		items.DELETE("/:id/tags/:tagId", controllers.RemoveTagFromMenuItem)
	}

	tags := r.Group("/tags")
	{
		tags.POST("", controllers.CreateTag)
		tags.GET("", controllers.GetTags)
		tags.GET("/:id", controllers.GetTagByID)
		tags.PUT("/:id", controllers.UpdateTag)
		tags.DELETE("/:id", controllers.DeleteTag)
	}

	return r
}
