package fakestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/storepro/storefront/internal/errors"
	"github.com/storepro/storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is the remote catalog and auth API. Catalog reads degrade to the
// built-in fallback dataset on any failure; only single-product lookups can
// surface NotFound, and login errors always propagate. Nothing is retried.
type Client interface {
	ListProducts(ctx context.Context, sort string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category, sort string) ([]models.Product, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// upstream error body, e.g. {"message": "username or password is incorrect"}
type apiErrorBody struct {
	Message string `json:"message"`
}

func (c *httpClient) doJSON(ctx context.Context, method, path string, payload, dest any) error {

	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.UpstreamError("Catalog API unreachable").WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {

		var errBody apiErrorBody

		message := fmt.Sprintf("API Error: %d", resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Message != "" {
			message = errBody.Message
		}

		return apperrors.UpstreamError(message).WithDetail(resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return apperrors.UpstreamError("Malformed catalog response").WithError(err)
	}

	return nil
}

// ListProducts fetches the full catalog. The sort hint is accepted but never
// forwarded upstream; sorting happens downstream in the resolver.
func (c *httpClient) ListProducts(ctx context.Context, _ string) ([]models.Product, error) {

	var products []models.Product

	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		slog.Warn("Failed to fetch products from API, using fallback data", slog.String("error", err.Error()))
		return FallbackProducts(), nil
	}

	return products, nil
}

func (c *httpClient) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	var product models.Product

	err := c.doJSON(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, &product)
	if err == nil && product.ID == id {
		return &product, nil
	}

	if err != nil {
		slog.Warn("Failed to fetch product from API, using fallback data",
			slog.Int64("id", id), slog.String("error", err.Error()))
	}

	for _, fallback := range FallbackProducts() {
		if fallback.ID == id {
			return &fallback, nil
		}
	}

	return nil, apperrors.NotFoundError(fmt.Sprintf("Product %d not found", id))
}

func (c *httpClient) ListCategories(ctx context.Context) ([]string, error) {

	var categories []string

	if err := c.doJSON(ctx, http.MethodGet, "/products/categories", nil, &categories); err != nil {
		slog.Warn("Failed to fetch categories from API, using fallback data", slog.String("error", err.Error()))
		return FallbackCategories(), nil
	}

	return categories, nil
}

func (c *httpClient) ListProductsByCategory(ctx context.Context, category, sort string) ([]models.Product, error) {

	endpoint := "/products/category/" + url.PathEscape(category)
	if sort == models.SortAsc || sort == models.SortDesc {
		endpoint += "?sort=" + sort
	}

	var products []models.Product

	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *httpClient) Login(ctx context.Context, username, password string) (string, error) {

	payload := models.LoginRequest{Username: username, Password: password}

	var resp models.LoginResponse

	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", payload, &resp); err != nil {

		if appErr, ok := apperrors.IsAppError(err); ok {
			return "", apperrors.AuthFailedError(appErr.Message).WithError(err)
		}

		return "", apperrors.AuthFailedError("Login failed").WithError(err)
	}

	if resp.Token == "" {
		return "", apperrors.AuthFailedError("Login response carried no token")
	}

	return resp.Token, nil
}
