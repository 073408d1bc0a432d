package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yon-ln/33s/entity"
	"github.com/Yon-ln/33s/pkg/resp"
	"github.com/Yon-ln/33s/render"
	"github.com/Yon-ln/33s/services"
)

type HeroController struct {
	hero *services.HeroService
	r    *render.Renderer
}

func NewHeroController(hero *services.HeroService, r *render.Renderer) *HeroController {
	return &HeroController{hero: hero, r: r}
}

// GET /admin/hero
func (h *HeroController) Grid(c *gin.Context) {
	if len(h.hero.Images()) == 0 {
		h.hero.Refresh(c.Request.Context())
	}
	page, err := h.r.HeroGrid(h.hero.ByCategory())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

type heroRequest struct {
	Category string `form:"category" json:"category" binding:"required"`
	ImageURL string `form:"imageUrl" json:"imageUrl" binding:"required"`
}

// POST /admin/hero
func (h *HeroController) Create(c *gin.Context) {
	var req heroRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.KnownHeroCategory(req.Category) {
		resp.BadRequest(c, "unknown hero category")
		return
	}

	img := entity.HeroImage{Category: req.Category, ImageURL: req.ImageURL}
	if err := h.hero.Add(c.Request.Context(), img); err != nil {
		resp.Upstream(c, err)
		return
	}
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/admin/hero")
		return
	}
	resp.Created(c, img)
}

// POST /admin/hero/:id/delete
func (h *HeroController) Delete(c *gin.Context) {
	if c.PostForm("confirm") != "true" {
		resp.BadRequest(c, "delete not confirmed")
		return
	}
	id, ok := itemID(c)
	if !ok {
		resp.BadRequest(c, "invalid image id")
		return
	}
	if !h.hero.Delete(c.Request.Context(), id) {
		resp.BadRequest(c, "delete rejected upstream")
		return
	}
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/admin/hero")
		return
	}
	resp.OK(c, gin.H{"id": id, "deleted": true})
}
