package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	api "github.com/fleetforge/migration-compass/api/v1alpha1"
)

// Client is an HTTP client for the migration-compass api.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) ListInventories(ctx context.Context, name string) ([]api.Inventory, error) {
	endpoint := fmt.Sprintf("%s/api/v1/inventories", c.baseURL)
	if name != "" {
		endpoint += "?name=" + url.QueryEscape(name)
	}

	var inventories []api.Inventory
	if err := c.do(ctx, http.MethodGet, endpoint, nil, http.StatusOK, &inventories); err != nil {
		return nil, err
	}
	return inventories, nil
}

func (c *Client) GetInventory(ctx context.Context, id uuid.UUID) (*api.Inventory, error) {
	endpoint := fmt.Sprintf("%s/api/v1/inventories/%s", c.baseURL, id)

	inventory := &api.Inventory{}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, http.StatusOK, inventory); err != nil {
		return nil, err
	}
	return inventory, nil
}

func (c *Client) CreateInventory(ctx context.Context, form api.InventoryForm) (*api.Inventory, error) {
	endpoint := fmt.Sprintf("%s/api/v1/inventories", c.baseURL)

	inventory := &api.Inventory{}
	if err := c.do(ctx, http.MethodPost, endpoint, form, http.StatusCreated, inventory); err != nil {
		return nil, err
	}
	return inventory, nil
}

func (c *Client) DeleteInventory(ctx context.Context, id uuid.UUID) error {
	endpoint := fmt.Sprintf("%s/api/v1/inventories/%s", c.baseURL, id)
	return c.do(ctx, http.MethodDelete, endpoint, nil, http.StatusNoContent, nil)
}

func (c *Client) ListPlans(ctx context.Context, inventoryID *uuid.UUID) ([]api.Plan, error) {
	endpoint := fmt.Sprintf("%s/api/v1/plans", c.baseURL)
	if inventoryID != nil {
		endpoint += "?inventoryId=" + inventoryID.String()
	}

	var plans []api.Plan
	if err := c.do(ctx, http.MethodGet, endpoint, nil, http.StatusOK, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) GetPlan(ctx context.Context, id uuid.UUID) (*api.Plan, error) {
	endpoint := fmt.Sprintf("%s/api/v1/plans/%s", c.baseURL, id)

	plan := &api.Plan{}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, http.StatusOK, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (c *Client) CreatePlan(ctx context.Context, form api.PlanForm) (*api.Plan, error) {
	endpoint := fmt.Sprintf("%s/api/v1/plans", c.baseURL)

	plan := &api.Plan{}
	if err := c.do(ctx, http.MethodPost, endpoint, form, http.StatusCreated, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (c *Client) DeletePlan(ctx context.Context, id uuid.UUID) error {
	endpoint := fmt.Sprintf("%s/api/v1/plans/%s", c.baseURL, id)
	return c.do(ctx, http.MethodDelete, endpoint, nil, http.StatusNoContent, nil)
}

// DownloadReport fetches the rendered report for a plan. Format is one
// of csv or xlsx.
func (c *Client) DownloadReport(ctx context.Context, id uuid.UUID, format string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/api/v1/plans/%s/report?format=%s", c.baseURL, id, url.QueryEscape(format))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call api: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any, wantStatus int, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call api: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return apiError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// apiError surfaces the server's error envelope when one is present.
func apiError(statusCode int, body []byte) error {
	var envelope api.Error
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("api returned status %d: %s", statusCode, envelope.Error)
	}
	return fmt.Errorf("api returned status %d: %s", statusCode, string(body))
}
