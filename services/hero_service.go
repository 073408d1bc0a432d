package services

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Yon-ln/33s/entity"
)

// HeroAPI is the slice of the upstream client the hero service needs.
type HeroAPI interface {
	List(ctx context.Context) []entity.HeroImage
	Create(ctx context.Context, img entity.HeroImage) error
	Delete(ctx context.Context, id uint) bool
}

// HeroService mirrors the hero images and groups them for the rotating
// banners. Order within a category follows the server-returned order.
type HeroService struct {
	mu     sync.RWMutex
	images []entity.HeroImage

	api  HeroAPI
	base func() string
}

func NewHeroService(api HeroAPI, base func() string) *HeroService {
	return &HeroService{api: api, base: base}
}

// Refresh rebuilds the mirror. Nil upstream data keeps the current set.
func (h *HeroService) Refresh(ctx context.Context) bool {
	images := h.api.List(ctx)
	if images == nil {
		log.Warn().Msg("hero refresh yielded no data")
		return false
	}
	h.mu.Lock()
	h.images = images
	h.mu.Unlock()
	return true
}

func (h *HeroService) Images() []entity.HeroImage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]entity.HeroImage(nil), h.images...)
}

// ByCategory groups the images for rendering, preserving server order
// inside each group. Image references come back absolutized because the
// upstream sometimes serves relative paths.
func (h *HeroService) ByCategory() map[string][]entity.HeroImage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string][]entity.HeroImage, len(entity.HeroCategories))
	for _, img := range h.images {
		img.ImageURL = h.ResolveURL(img.ImageURL)
		out[img.Category] = append(out[img.Category], img)
	}
	return out
}

func (h *HeroService) Add(ctx context.Context, img entity.HeroImage) error {
	if err := h.api.Create(ctx, img); err != nil {
		return err
	}
	h.Refresh(ctx)
	return nil
}

func (h *HeroService) Delete(ctx context.Context, id uint) bool {
	if !h.api.Delete(ctx, id) {
		return false
	}
	h.mu.Lock()
	for i, img := range h.images {
		if img.ID == id {
			h.images = append(h.images[:i], h.images[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	return true
}

// ResolveURL absolutizes an image reference against the active base; the
// upstream sometimes returns relative paths.
func (h *HeroService) ResolveURL(u string) string {
	if strings.HasPrefix(u, "http") {
		return u
	}
	return strings.TrimSuffix(h.base(), "/") + "/" + strings.TrimPrefix(u, "/")
}
