package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CropSize is the square output size of every cropped item photo.
const CropSize = 500

// AssetState walks the upload workflow for one staged image.
type AssetState int

const (
	AssetSelected AssetState = iota // file received, original bytes held
	AssetCropped                    // crop confirmed, cropped bytes held
	AssetUploaded                   // upstream URL assigned
)

var (
	ErrUnknownAsset = errors.New("unknown asset")
	ErrNotCropped   = errors.New("asset has not been cropped")
	ErrBadImage     = errors.New("file is not a usable image")
)

// Uploader is the slice of the upstream client the pipeline needs.
type Uploader interface {
	Upload(ctx context.Context, data []byte, itemName string) (string, error)
}

// Asset is one image moving through select → crop → upload.
type Asset struct {
	ID       string
	State    AssetState
	URL      string // set once uploaded
	original image.Image
	cropped  []byte
}

// ImagePipeline stages item photos in memory. Two exit paths exist:
// ConfirmForItem uploads immediately and patches an existing item's image,
// UploadDraft defers the upload to creation-submit time.
type ImagePipeline struct {
	mu     sync.Mutex
	assets map[string]*Asset

	uploader Uploader
	menu     *MenuService
	editor   *EditorService
}

func NewImagePipeline(uploader Uploader, menu *MenuService, editor *EditorService) *ImagePipeline {
	return &ImagePipeline{
		assets:   make(map[string]*Asset),
		uploader: uploader,
		menu:     menu,
		editor:   editor,
	}
}

// Stage decodes the selected file and holds it under a transient id.
func (p *ImagePipeline) Stage(data []byte) (*Asset, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}
	a := &Asset{ID: uuid.NewString(), State: AssetSelected, original: img}
	p.mu.Lock()
	p.assets[a.ID] = a
	p.mu.Unlock()
	return a, nil
}

// Crop cuts the given region from the staged image and scales it to the
// fixed square size. A zero-width rectangle means "centered square", the
// default the crop surface starts with.
func (p *ImagePipeline) Crop(id string, rect image.Rectangle) (*Asset, error) {
	p.mu.Lock()
	a, ok := p.assets[id]
	p.mu.Unlock()
	if !ok {
		return nil, ErrUnknownAsset
	}

	src := a.original
	if rect.Dx() > 0 && rect.Dy() > 0 {
		src = imaging.Crop(src, rect)
	} else {
		side := src.Bounds().Dx()
		if h := src.Bounds().Dy(); h < side {
			side = h
		}
		src = imaging.CropCenter(src, side, side)
	}
	out := imaging.Resize(src, CropSize, CropSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, err
	}

	p.mu.Lock()
	a.cropped = buf.Bytes()
	a.State = AssetCropped
	p.mu.Unlock()
	return a, nil
}

// ConfirmForItem is the edit-context exit: the cropped image is uploaded
// right away, the item's image reference is patched in the store, and the
// item enters edit mode so the operator still presses Save to persist the
// rest of the card. On upload failure the crop is kept for a retry.
func (p *ImagePipeline) ConfirmForItem(ctx context.Context, assetID string, itemID uint) (string, error) {
	data, err := p.croppedBytes(assetID)
	if err != nil {
		return "", err
	}

	url, err := p.uploader.Upload(ctx, data, fmt.Sprintf("Update_%d", itemID))
	if err != nil {
		log.Error().Err(err).Uint("item", itemID).Msg("image upload failed")
		return "", err
	}

	if item, ok := p.menu.Store.Get(itemID); ok {
		item.ImageURL = url
		p.menu.Store.Patch(item)
	}
	if _, err := p.editor.Start(itemID); err != nil {
		log.Warn().Err(err).Uint("item", itemID).Msg("could not open edit session after upload")
	}

	p.finish(assetID, url)
	return url, nil
}

// UploadDraft is the create-context exit: called at creation-submit time
// with the name of the item being created. Failure keeps the cropped asset
// so the draft card and the crop survive.
func (p *ImagePipeline) UploadDraft(ctx context.Context, assetID, itemName string) (string, error) {
	data, err := p.croppedBytes(assetID)
	if err != nil {
		return "", err
	}
	if itemName == "" {
		itemName = fmt.Sprintf("New_Item_%d", time.Now().UnixNano())
	}
	url, err := p.uploader.Upload(ctx, data, itemName)
	if err != nil {
		log.Error().Err(err).Str("item", itemName).Msg("draft image upload failed")
		return "", err
	}
	p.finish(assetID, url)
	return url, nil
}

// Discard drops a staged asset (cancelled crop or abandoned draft).
func (p *ImagePipeline) Discard(id string) {
	p.mu.Lock()
	delete(p.assets, id)
	p.mu.Unlock()
}

// State reports the asset's position in the workflow.
func (p *ImagePipeline) State(id string) (AssetState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.assets[id]
	if !ok {
		return 0, false
	}
	return a.State, true
}

func (p *ImagePipeline) croppedBytes(id string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.assets[id]
	if !ok {
		return nil, ErrUnknownAsset
	}
	if a.State < AssetCropped || a.cropped == nil {
		return nil, ErrNotCropped
	}
	return a.cropped, nil
}

func (p *ImagePipeline) finish(id, url string) {
	p.mu.Lock()
	if a, ok := p.assets[id]; ok {
		a.State = AssetUploaded
		a.URL = url
		delete(p.assets, id) // uploaded assets are done; the URL lives on the item
	}
	p.mu.Unlock()
}
