package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

type fakeUploader struct {
	url     string
	err     error
	uploads []string // item names seen
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, itemName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, itemName)
	return f.url, nil
}

func testImageBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newPipelineFixture(t *testing.T, up *fakeUploader) (*ImagePipeline, *MenuService, *EditorService) {
	t.Helper()
	api := &fakeMenuAPI{items: sampleItems()}
	menu := NewMenuService(api)
	menu.Refresh(context.Background())
	editor := NewEditorService(menu)
	return NewImagePipeline(up, menu, editor), menu, editor
}

func TestPipeline_StageRejectsGarbage(t *testing.T) {
	p, _, _ := newPipelineFixture(t, &fakeUploader{})
	if _, err := p.Stage([]byte("not an image")); !errors.Is(err, ErrBadImage) {
		t.Errorf("Stage(garbage) error = %v, want ErrBadImage", err)
	}
}

func TestPipeline_StageCropStates(t *testing.T) {
	p, _, _ := newPipelineFixture(t, &fakeUploader{})

	asset, err := p.Stage(testImageBytes(t, 800, 600))
	if err != nil {
		t.Fatal(err)
	}
	if st, ok := p.State(asset.ID); !ok || st != AssetSelected {
		t.Errorf("after Stage state = %v, %v", st, ok)
	}

	if _, err := p.Crop(asset.ID, image.Rect(10, 10, 410, 410)); err != nil {
		t.Fatal(err)
	}
	if st, _ := p.State(asset.ID); st != AssetCropped {
		t.Errorf("after Crop state = %v, want AssetCropped", st)
	}

	// Cropped output is the fixed square size.
	data, err := p.croppedBytes(asset.ID)
	if err != nil {
		t.Fatal(err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != CropSize || cfg.Height != CropSize {
		t.Errorf("cropped output %dx%d, want %dx%d", cfg.Width, cfg.Height, CropSize, CropSize)
	}
}

func TestPipeline_CropDefaultsToCenterSquare(t *testing.T) {
	p, _, _ := newPipelineFixture(t, &fakeUploader{})
	asset, _ := p.Stage(testImageBytes(t, 640, 480))
	if _, err := p.Crop(asset.ID, image.Rectangle{}); err != nil {
		t.Fatal(err)
	}
	if st, _ := p.State(asset.ID); st != AssetCropped {
		t.Errorf("state = %v, want AssetCropped", st)
	}
}

func TestPipeline_UploadRequiresCrop(t *testing.T) {
	p, _, _ := newPipelineFixture(t, &fakeUploader{url: "http://cdn/x.png"})
	asset, _ := p.Stage(testImageBytes(t, 100, 100))

	if _, err := p.UploadDraft(context.Background(), asset.ID, "Special"); !errors.Is(err, ErrNotCropped) {
		t.Errorf("upload before crop error = %v, want ErrNotCropped", err)
	}
	if _, err := p.ConfirmForItem(context.Background(), "nope", 1); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("unknown asset error = %v, want ErrUnknownAsset", err)
	}
}

func TestPipeline_ConfirmForItemPatchesStoreAndOpensEdit(t *testing.T) {
	up := &fakeUploader{url: "http://cdn/update_1.png"}
	p, menu, editor := newPipelineFixture(t, up)

	asset, _ := p.Stage(testImageBytes(t, 600, 600))
	p.Crop(asset.ID, image.Rectangle{})

	url, err := p.ConfirmForItem(context.Background(), asset.ID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if url != "http://cdn/update_1.png" {
		t.Errorf("url = %q", url)
	}
	if len(up.uploads) != 1 || up.uploads[0] != "Update_1" {
		t.Errorf("upload names = %v, want [Update_1]", up.uploads)
	}
	if item, _ := menu.Store.Get(1); item.ImageURL != url {
		t.Errorf("store image not patched: %q", item.ImageURL)
	}
	if editor.State(1) != StateEditing {
		t.Error("item should enter edit mode so the operator can press Save")
	}
	if _, ok := p.State(asset.ID); ok {
		t.Error("uploaded asset should be cleared from staging")
	}
}

func TestPipeline_UploadFailureKeepsCrop(t *testing.T) {
	up := &fakeUploader{err: errors.New("upload rejected")}
	p, menu, _ := newPipelineFixture(t, up)

	asset, _ := p.Stage(testImageBytes(t, 600, 600))
	p.Crop(asset.ID, image.Rectangle{})

	if _, err := p.UploadDraft(context.Background(), asset.ID, "Special"); err == nil {
		t.Fatal("expected upload failure")
	}
	if st, ok := p.State(asset.ID); !ok || st != AssetCropped {
		t.Errorf("failed upload should keep the cropped asset, state = %v, %v", st, ok)
	}

	before, _ := menu.Store.Get(1)
	if _, err := p.ConfirmForItem(context.Background(), asset.ID, 1); err == nil {
		t.Fatal("expected upload failure")
	}
	if after, _ := menu.Store.Get(1); after.ImageURL != before.ImageURL {
		t.Error("failed edit-context upload must not touch the item")
	}
	if st, _ := p.State(asset.ID); st != AssetCropped {
		t.Error("crop selection should survive for a retry")
	}
}

func TestPipeline_DraftUploadNaming(t *testing.T) {
	up := &fakeUploader{url: "http://cdn/new.png"}
	p, _, _ := newPipelineFixture(t, up)

	asset, _ := p.Stage(testImageBytes(t, 600, 600))
	p.Crop(asset.ID, image.Rectangle{})
	if _, err := p.UploadDraft(context.Background(), asset.ID, "Garlic Bread"); err != nil {
		t.Fatal(err)
	}
	if up.uploads[0] != "Garlic Bread" {
		t.Errorf("draft upload named %q, want the item name", up.uploads[0])
	}
}
