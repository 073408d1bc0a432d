package controllers

import (
	"errors"
	"image"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yon-ln/33s/pkg/resp"
	"github.com/Yon-ln/33s/services"
)

// AssetController exposes the image pipeline to the console: stage a file,
// crop it, and either attach it to an existing item (uploads immediately)
// or leave it pending for a draft.
type AssetController struct {
	pipeline *services.ImagePipeline
}

func NewAssetController(pipeline *services.ImagePipeline) *AssetController {
	return &AssetController{pipeline: pipeline}
}

// POST /admin/assets, multipart {file}.
func (a *AssetController) Stage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "no file selected")
		return
	}
	src, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	asset, err := a.pipeline.Stage(data)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"id": asset.ID})
}

type cropRequest struct {
	X      int  `json:"x" form:"x"`
	Y      int  `json:"y" form:"y"`
	Width  int  `json:"width" form:"width"`
	Height int  `json:"height" form:"height"`
	ItemID uint `json:"itemId" form:"itemId"`
}

// POST /admin/assets/:id/crop confirms the crop selection. With itemId
// set this is the edit-context flow: upload now, patch the card image, and
// put the item into edit mode. Without it the cropped blob stays staged for
// the draft.
func (a *AssetController) Crop(c *gin.Context) {
	assetID := c.Param("id")

	var req cropRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rect := image.Rect(req.X, req.Y, req.X+req.Width, req.Y+req.Height)
	if req.Width <= 0 || req.Height <= 0 {
		rect = emptyRect()
	}
	if _, err := a.pipeline.Crop(assetID, rect); err != nil {
		if errors.Is(err, services.ErrUnknownAsset) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	if req.ItemID == 0 {
		resp.OK(c, gin.H{"id": assetID, "state": "cropped"})
		return
	}

	url, err := a.pipeline.ConfirmForItem(c.Request.Context(), assetID, req.ItemID)
	if err != nil {
		resp.Upstream(c, err)
		return
	}
	resp.OK(c, gin.H{"id": assetID, "itemId": req.ItemID, "url": url})
}

// POST /admin/assets/:id/discard
func (a *AssetController) Discard(c *gin.Context) {
	a.pipeline.Discard(c.Param("id"))
	resp.OK(c, gin.H{"discarded": true})
}

func emptyRect() image.Rectangle { return image.Rectangle{} }

// itemID reads the numeric :id route param. Negative or non-numeric values
// report false and the handler answers 400.
func itemID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
