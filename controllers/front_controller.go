package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yon-ln/33s/pkg/resp"
	"github.com/Yon-ln/33s/render"
	"github.com/Yon-ln/33s/services"
)

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// FrontController serves the public storefront.
type FrontController struct {
	menu      *services.MenuService
	hero      *services.HeroService
	scheduler *services.Scheduler
	slideshow *services.Slideshow
	r         *render.Renderer
}

func NewFrontController(menu *services.MenuService, hero *services.HeroService,
	scheduler *services.Scheduler, slideshow *services.Slideshow, r *render.Renderer) *FrontController {
	return &FrontController{menu: menu, hero: hero, scheduler: scheduler, slideshow: slideshow, r: r}
}

// GET /
func (f *FrontController) Home(c *gin.Context) {
	ctx := c.Request.Context()
	if f.menu.Store.Len() == 0 {
		f.menu.Refresh(ctx)
	}
	if len(f.hero.Images()) == 0 {
		f.hero.Refresh(ctx)
	}

	mode, fullMenu := f.scheduler.Current()
	sections := render.BuildSections(f.menu.Store.Items(), f.scheduler.VisibleSections())

	var heroURLs []string
	for _, img := range f.hero.Images() {
		heroURLs = append(heroURLs, f.hero.ResolveURL(img.ImageURL))
	}

	page, err := f.r.Storefront(render.StorefrontData{
		Status:   mode.Status(),
		Open:     mode.Open(),
		FullMenu: fullMenu,
		Slides:   f.slideshow.Slides(),
		Hero:     heroURLs,
		Sections: sections,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// POST /full-menu
func (f *FrontController) ToggleFullMenu(c *gin.Context) {
	f.scheduler.SetFullMenu(!f.scheduler.FullMenu())
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	mode, fullMenu := f.scheduler.Current()
	resp.OK(c, gin.H{"fullMenu": fullMenu, "mode": mode.String(), "status": mode.Status()})
}

// GET /status is the polling fallback for storefronts without a working
// websocket.
func (f *FrontController) Status(c *gin.Context) {
	mode, fullMenu := f.scheduler.Current()
	visible := make([]string, 0, 8)
	for sec, on := range f.scheduler.VisibleSections() {
		if on {
			visible = append(visible, sec)
		}
	}
	resp.OK(c, gin.H{
		"mode":     mode.String(),
		"status":   mode.Status(),
		"fullMenu": fullMenu,
		"sections": visible,
	})
}
