package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yon-ln/33s/entity"
	"github.com/Yon-ln/33s/pkg/resp"
	"github.com/Yon-ln/33s/render"
	"github.com/Yon-ln/33s/services"
	"github.com/Yon-ln/33s/utils"
)

// MenuController drives the admin console grid.
type MenuController struct {
	menu     *services.MenuService
	editor   *services.EditorService
	pipeline *services.ImagePipeline
	r        *render.Renderer
}

func NewMenuController(menu *services.MenuService, editor *services.EditorService,
	pipeline *services.ImagePipeline, r *render.Renderer) *MenuController {
	return &MenuController{menu: menu, editor: editor, pipeline: pipeline, r: r}
}

// GET /admin/menu?q=
func (m *MenuController) Grid(c *gin.Context) {
	if m.menu.Store.Len() == 0 {
		m.menu.Refresh(c.Request.Context())
	}

	q := c.Query("q")
	items := m.menu.Store.Filter(q)
	grid, err := m.r.MenuGrid(items, m.editor.Editing(), q)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	// XHR search re-renders just the grid.
	if !wantsHTML(c) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", grid)
		return
	}
	page, err := m.r.AdminPage(grid, q, utils.CurrentUser(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// GET /admin/menu/new
func (m *MenuController) NewItem(c *gin.Context) {
	page, err := m.r.NewItemPage(c.Query("assetId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// POST /admin/menu handles the creation submit. The image is uploaded
// first; if the upload fails the draft survives and no create request goes
// upstream.
func (m *MenuController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	name := strings.TrimSpace(c.PostForm("name"))
	price := strings.TrimSpace(c.PostForm("price"))
	if name == "" || name == "Item Name..." {
		resp.BadRequest(c, "please enter a name")
		return
	}
	if price == "" {
		resp.BadRequest(c, "please enter a price")
		return
	}
	cat, ok := entity.KnownCategory(c.PostForm("category"))
	if !ok {
		resp.BadRequest(c, "please select a category")
		return
	}

	imageURL := ""
	assetID := c.PostForm("assetId")
	if assetID == "" {
		// Raw file attached to the draft card without going through the
		// crop modal: stage and centre-crop it now.
		if file, err := c.FormFile("file"); err == nil && file.Size > 0 {
			src, err := file.Open()
			if err != nil {
				resp.ServerError(c, err)
				return
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				resp.ServerError(c, err)
				return
			}
			asset, err := m.pipeline.Stage(data)
			if err != nil {
				resp.BadRequest(c, err.Error())
				return
			}
			if _, err := m.pipeline.Crop(asset.ID, emptyRect()); err != nil {
				resp.ServerError(c, err)
				return
			}
			assetID = asset.ID
		}
	}
	if assetID != "" {
		url, err := m.pipeline.UploadDraft(ctx, assetID, name)
		if err != nil {
			resp.Upstream(c, err)
			return
		}
		imageURL = url
	}

	item := entity.MenuItem{
		Name:        name,
		Description: draftText(c.PostForm("description")),
		Price:       entity.Price(price),
		Category:    cat,
		Subcategory: strings.TrimSpace(c.PostForm("subcategory")),
		ImageURL:    imageURL,
	}
	if err := m.menu.Create(ctx, item); err != nil {
		resp.Upstream(c, err)
		return
	}

	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/admin/menu")
		return
	}
	resp.Created(c, item)
}

// POST /admin/menu/:id/edit
func (m *MenuController) StartEdit(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if _, err := m.editor.Start(id); err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	m.backToGrid(c, gin.H{"id": id, "state": "editing"})
}

// POST /admin/menu/:id/cancel
func (m *MenuController) CancelEdit(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}
	snap, err := m.editor.Cancel(id)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m.backToGrid(c, snap)
}

// POST /admin/menu/:id/save
func (m *MenuController) SaveEdit(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}
	fields := services.EditFields{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Category:    c.PostForm("category"),
		ImageURL:    c.PostForm("imageUrl"),
	}
	saved, err := m.editor.Save(c.Request.Context(), id, fields)
	switch {
	case err == nil:
		m.backToGrid(c, saved)
	case errors.Is(err, services.ErrEmptyNamePrice), errors.Is(err, services.ErrUnknownCategory):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotEditing):
		resp.BadRequest(c, err.Error())
	default:
		resp.Upstream(c, err)
	}
}

// POST /admin/menu/:id/delete. The confirm field is the server-side twin
// of the browser's confirmation dialog; without it nothing happens.
func (m *MenuController) Delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}
	confirmed := c.PostForm("confirm") == "true"
	if !m.menu.Delete(c.Request.Context(), id, confirmed) {
		resp.BadRequest(c, "delete not confirmed or rejected upstream")
		return
	}
	m.backToGrid(c, gin.H{"id": id, "deleted": true})
}

func (m *MenuController) backToGrid(c *gin.Context, data any) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/admin/menu")
		return
	}
	resp.OK(c, data)
}


func draftText(s string) string {
	s = strings.TrimSpace(s)
	if s == "Description..." {
		return ""
	}
	return s
}
