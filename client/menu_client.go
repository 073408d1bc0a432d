package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Yon-ln/33s/entity"
)

type MenuClient struct {
	api *Client
}

func NewMenuClient(api *Client) *MenuClient {
	return &MenuClient{api: api}
}

// List fetches the full menu. A nil slice means no data was available; the
// cause is logged at the transport layer and never propagated further.
func (m *MenuClient) List(ctx context.Context) []entity.MenuItem {
	var items []entity.MenuItem
	if err := m.api.getJSON(ctx, "/api/menu", &items); err != nil {
		return nil
	}
	return items
}

// Create posts a new item (id must be zero). The error text, if any, is the
// upstream's own message.
func (m *MenuClient) Create(ctx context.Context, item entity.MenuItem) error {
	item.ID = 0
	return m.api.sendJSON(ctx, http.MethodPost, "/api/menu", item)
}

func (m *MenuClient) Update(ctx context.Context, item entity.MenuItem) error {
	return m.api.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/menu/%d", item.ID), item)
}

func (m *MenuClient) Delete(ctx context.Context, id uint) bool {
	return m.api.deleteOK(ctx, fmt.Sprintf("/api/menu/%d", id))
}
