package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yon-ln/33s/configs"
	"github.com/Yon-ln/33s/controllers"
	"github.com/Yon-ln/33s/middlewares"
	"github.com/Yon-ln/33s/render"
	"github.com/Yon-ln/33s/services"
	"github.com/Yon-ln/33s/ws"
)

type Deps struct {
	Cfg       *configs.Config
	Menu      *services.MenuService
	Hero      *services.HeroService
	Editor    *services.EditorService
	Pipeline  *services.ImagePipeline
	Scheduler *services.Scheduler
	Slideshow *services.Slideshow
	Hub       *ws.LiveHub
	Renderer  *render.Renderer
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authCtrl := controllers.NewAuthController(d.Cfg, d.Renderer)
	frontCtrl := controllers.NewFrontController(d.Menu, d.Hero, d.Scheduler, d.Slideshow, d.Renderer)
	menuCtrl := controllers.NewMenuController(d.Menu, d.Editor, d.Pipeline, d.Renderer)
	heroCtrl := controllers.NewHeroController(d.Hero, d.Renderer)
	assetCtrl := controllers.NewAssetController(d.Pipeline)

	// Public storefront
	r.GET("/", frontCtrl.Home)
	r.GET("/status", frontCtrl.Status)
	r.POST("/full-menu", frontCtrl.ToggleFullMenu)
	r.GET("/live", d.Hub.Serve)
	r.Static("/static", "./static")

	// Login
	r.GET("/login", authCtrl.LoginPage)
	r.POST("/login", authCtrl.Login)

	// Admin console
	admin := r.Group("/admin", middlewares.AuthMiddleware(d.Cfg.JWTSecret, "admin"))
	{
		admin.GET("/menu", menuCtrl.Grid)
		admin.GET("/menu/new", menuCtrl.NewItem)
		admin.POST("/menu", menuCtrl.Create)
		admin.POST("/menu/:id/edit", menuCtrl.StartEdit)
		admin.POST("/menu/:id/cancel", menuCtrl.CancelEdit)
		admin.POST("/menu/:id/save", menuCtrl.SaveEdit)
		admin.POST("/menu/:id/delete", menuCtrl.Delete)

		admin.GET("/hero", heroCtrl.Grid)
		admin.POST("/hero", heroCtrl.Create)
		admin.POST("/hero/:id/delete", heroCtrl.Delete)

		admin.POST("/assets", assetCtrl.Stage)
		admin.POST("/assets/:id/crop", assetCtrl.Crop)
		admin.POST("/assets/:id/discard", assetCtrl.Discard)
	}
}
