package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Yon-ln/33s/entity"
)

// EditState is the per-item console state.
type EditState int

const (
	StateViewing EditState = iota
	StateEditing
)

var (
	ErrUnknownItem     = errors.New("unknown item")
	ErrNotEditing      = errors.New("item is not in edit mode")
	ErrEmptyNamePrice  = errors.New("name and price cannot be empty")
	ErrUnknownCategory = errors.New("unknown category")
)

// EditFields carries the mutable fields of an inline edit.
type EditFields struct {
	Name        string
	Description string
	Price       string
	Category    string
	ImageURL    string
}

// EditorService tracks inline edit sessions. Each session holds the
// pre-edit snapshot so cancel restores the card exactly. Sessions are
// independent; any number of items may be in Editing at once.
type EditorService struct {
	mu        sync.Mutex
	snapshots map[uint]entity.MenuItem

	menu *MenuService
}

func NewEditorService(menu *MenuService) *EditorService {
	return &EditorService{snapshots: make(map[uint]entity.MenuItem), menu: menu}
}

// Start moves an item into Editing and returns it. Starting an item that
// is already in Editing keeps the original snapshot.
func (e *EditorService) Start(id uint) (entity.MenuItem, error) {
	item, ok := e.menu.Store.Get(id)
	if !ok {
		return entity.MenuItem{}, ErrUnknownItem
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if snap, editing := e.snapshots[id]; editing {
		return snap, nil
	}
	e.snapshots[id] = item
	return item, nil
}

func (e *EditorService) State(id uint) EditState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.snapshots[id]; ok {
		return StateEditing
	}
	return StateViewing
}

// Editing returns the set of item ids currently in Editing, for rendering.
func (e *EditorService) Editing() map[uint]bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[uint]bool, len(e.snapshots))
	for id := range e.snapshots {
		out[id] = true
	}
	return out
}

// Cancel closes the session and returns the pre-edit snapshot.
func (e *EditorService) Cancel(id uint) (entity.MenuItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap, ok := e.snapshots[id]
	if !ok {
		return entity.MenuItem{}, ErrNotEditing
	}
	delete(e.snapshots, id)
	return snap, nil
}

// Save validates the edited fields, pushes the update upstream, and closes
// the session. Validation failures block before any network call. An
// upstream failure keeps the session open so the operator can retry.
func (e *EditorService) Save(ctx context.Context, id uint, fields EditFields) (entity.MenuItem, error) {
	e.mu.Lock()
	snap, editing := e.snapshots[id]
	e.mu.Unlock()
	if !editing {
		return entity.MenuItem{}, ErrNotEditing
	}

	name := strings.TrimSpace(fields.Name)
	price := strings.TrimSpace(fields.Price)
	if name == "" || price == "" {
		return entity.MenuItem{}, ErrEmptyNamePrice
	}
	cat, ok := entity.KnownCategory(fields.Category)
	if !ok {
		return entity.MenuItem{}, ErrUnknownCategory
	}

	updated := entity.MenuItem{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(fields.Description),
		Price:       entity.Price(price),
		Category:    cat,
		Subcategory: snap.Subcategory,
		ImageURL:    fields.ImageURL,
	}
	if updated.ImageURL == "" {
		updated.ImageURL = snap.ImageURL
	}

	if err := e.menu.Save(ctx, updated); err != nil {
		return entity.MenuItem{}, err
	}

	e.mu.Lock()
	delete(e.snapshots, id)
	e.mu.Unlock()
	return updated, nil
}
