package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Yon-ln/33s/entity"
)

type HeroClient struct {
	api *Client
}

func NewHeroClient(api *Client) *HeroClient {
	return &HeroClient{api: api}
}

// List fetches the hero images in server order. Nil means no data.
func (h *HeroClient) List(ctx context.Context) []entity.HeroImage {
	var images []entity.HeroImage
	if err := h.api.getJSON(ctx, "/api/hero", &images); err != nil {
		return nil
	}
	return images
}

func (h *HeroClient) Create(ctx context.Context, img entity.HeroImage) error {
	img.ID = 0
	return h.api.sendJSON(ctx, http.MethodPost, "/api/hero", img)
}

func (h *HeroClient) Delete(ctx context.Context, id uint) bool {
	return h.api.deleteOK(ctx, fmt.Sprintf("/api/hero/%d", id))
}
