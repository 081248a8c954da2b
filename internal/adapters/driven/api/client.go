package api

import (
	"context"
	"net/http"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driven/gateway"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
)

// Ensure Client implements the API ports.
var (
	_ driven.AuthAPI      = (*Client)(nil)
	_ driven.AssistantAPI = (*Client)(nil)
	_ driven.AdminAPI     = (*Client)(nil)
)

// Client is the typed view of the admin API.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates a client that dispatches through gw.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

func (c *Client) getJSON(ctx context.Context, url string, params map[string]string, out any) error {
	resp, err := c.gw.Do(ctx, &domain.RequestDescriptor{
		Method: http.MethodGet,
		URL:    url,
		Params: params,
	})
	if err != nil {
		return err
	}
	return resp.JSON(out)
}

func (c *Client) postJSON(ctx context.Context, url string, body map[string]any, out any) error {
	resp, err := c.gw.Do(ctx, &domain.RequestDescriptor{
		Method: http.MethodPost,
		URL:    url,
		Body:   body,
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.JSON(out)
}
