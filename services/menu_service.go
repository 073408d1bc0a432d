package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Yon-ln/33s/entity"
)

// MenuAPI is the slice of the upstream client the menu service needs.
type MenuAPI interface {
	List(ctx context.Context) []entity.MenuItem
	Create(ctx context.Context, item entity.MenuItem) error
	Update(ctx context.Context, item entity.MenuItem) error
	Delete(ctx context.Context, id uint) bool
}

// MenuStore is the in-memory mirror of the last successful menu fetch.
// It is rebuilt wholesale on each fetch and patched in place after
// successful writes so the console never needs a full re-fetch per action.
type MenuStore struct {
	mu    sync.RWMutex
	items []entity.MenuItem
}

func NewMenuStore() *MenuStore { return &MenuStore{} }

func (s *MenuStore) Replace(items []entity.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items[:0:0], items...)
}

// Items returns a copy in store order.
func (s *MenuStore) Items() []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.MenuItem(nil), s.items...)
}

func (s *MenuStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MenuStore) Get(id uint) (entity.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}

// Patch replaces the stored item with the same id. Last write wins; two
// overlapping saves resolve in whatever order their responses arrive.
func (s *MenuStore) Patch(item entity.MenuItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == item.ID {
			s.items[i] = item
			return true
		}
	}
	return false
}

func (s *MenuStore) Remove(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Insert prepends, matching the console's draft-at-the-top placement.
func (s *MenuStore) Insert(item entity.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]entity.MenuItem{item}, s.items...)
}

// Filter derives the subset matching term without touching the store.
// An empty term yields the full list.
func (s *MenuStore) Filter(term string) []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		if it.Matches(term) {
			out = append(out, it)
		}
	}
	return out
}

// MenuService keeps the store and the upstream in step.
type MenuService struct {
	Store *MenuStore
	api   MenuAPI

	onChange func() // notified after any store mutation, may be nil
}

func NewMenuService(api MenuAPI) *MenuService {
	return &MenuService{Store: NewMenuStore(), api: api}
}

// OnChange registers a callback fired after the store content changes.
func (s *MenuService) OnChange(fn func()) { s.onChange = fn }

func (s *MenuService) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Refresh rebuilds the store from upstream. When the fetch yields no data
// the store keeps its previous content and false is returned.
func (s *MenuService) Refresh(ctx context.Context) bool {
	items := s.api.List(ctx)
	if items == nil {
		log.Warn().Msg("menu refresh yielded no data, keeping current store")
		return false
	}
	s.Store.Replace(items)
	s.changed()
	return true
}

// Create submits a draft upstream and refreshes so the server-assigned id
// lands in the store. When the follow-up fetch fails the draft is inserted
// locally as a best effort.
func (s *MenuService) Create(ctx context.Context, item entity.MenuItem) error {
	if err := s.api.Create(ctx, item); err != nil {
		return err
	}
	if !s.Refresh(ctx) {
		s.Store.Insert(item)
		s.changed()
	}
	return nil
}

// Save updates one item upstream and patches the store on success.
func (s *MenuService) Save(ctx context.Context, item entity.MenuItem) error {
	if err := s.api.Update(ctx, item); err != nil {
		return err
	}
	s.Store.Patch(item)
	s.changed()
	return nil
}

// Delete requires explicit confirmation; without it no upstream call is
// made. On upstream success exactly the matching item leaves the store.
func (s *MenuService) Delete(ctx context.Context, id uint, confirmed bool) bool {
	if !confirmed {
		return false
	}
	if !s.api.Delete(ctx, id) {
		return false
	}
	s.Store.Remove(id)
	s.changed()
	return true
}
