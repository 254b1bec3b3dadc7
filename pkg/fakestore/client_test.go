package fakestore_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/storepro/storefront/internal/errors"
	"github.com/storepro/storefront/internal/models"
	"github.com/storepro/storefront/pkg/fakestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

func TestListProducts(t *testing.T) {
	ctx := t.Context()

	t.Run("Returns Remote Products", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			json.NewEncoder(w).Encode([]models.Product{{ID: 1, Title: "Backpack", Price: 109.95}})
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		products, err := client.ListProducts(ctx, "")

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Backpack", products[0].Title)
	})

	t.Run("Never Forwards The Sort Hint Upstream", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery, "sort must not reach the remote call")
			json.NewEncoder(w).Encode([]models.Product{})
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		_, err := client.ListProducts(ctx, models.SortDesc)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Falls Back On Upstream Error", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		products, err := client.ListProducts(ctx, "")

		// Assert
		require.NoError(t, err, "catalog reads degrade silently")
		assert.Equal(t, fakestore.FallbackProducts(), products)
	})

	t.Run("Falls Back On Malformed Body", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		products, err := client.ListProducts(ctx, "")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, fakestore.FallbackProducts(), products)
	})

	t.Run("Falls Back When Unreachable", func(t *testing.T) {
		// Arrange: a closed server
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		products, err := client.ListProducts(ctx, "")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, fakestore.FallbackProducts(), products)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := t.Context()

	t.Run("Returns Remote Product", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/7", r.URL.Path)
			json.NewEncoder(w).Encode(models.Product{ID: 7, Title: "Drive", Price: 64})
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		product, err := client.GetProduct(ctx, 7)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Drive", product.Title)
	})

	t.Run("Falls Back To The Builtin Dataset", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		product, err := client.GetProduct(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
	})

	t.Run("NotFound When Absent From Remote And Fallback", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		product, err := client.GetProduct(ctx, 99999)

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestListCategories(t *testing.T) {
	ctx := t.Context()

	t.Run("Returns Remote Categories", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/categories", r.URL.Path)
			json.NewEncoder(w).Encode([]string{"electronics"})
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		categories, err := client.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"electronics"}, categories)
	})

	t.Run("Falls Back On Failure", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		categories, err := client.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, fakestore.FallbackCategories(), categories)
	})
}

func TestListProductsByCategory(t *testing.T) {
	ctx := t.Context()

	t.Run("Forwards Category And Sort", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/category/electronics", r.URL.Path)
			assert.Equal(t, "sort=desc", r.URL.RawQuery)
			json.NewEncoder(w).Encode([]models.Product{{ID: 9, Category: "electronics"}})
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		products, err := client.ListProductsByCategory(ctx, "electronics", models.SortDesc)

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 1)
	})

	t.Run("Propagates Upstream Errors", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		products, err := client.ListProductsByCategory(ctx, "electronics", "")

		// Assert
		require.Error(t, err)
		assert.Nil(t, products)
	})
}

func TestLogin(t *testing.T) {
	ctx := t.Context()

	t.Run("Returns Token On Success", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)

			var req models.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "mor_2314", req.Username)
			assert.Equal(t, "83r5^_", req.Password)

			json.NewEncoder(w).Encode(models.LoginResponse{Token: "remote-token"})
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		token, err := client.Login(ctx, "mor_2314", "83r5^_")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "remote-token", token)
	})

	t.Run("Surfaces The Upstream Message On Bad Credentials", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "username or password is incorrect"})
		}))
		defer upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		token, err := client.Login(ctx, "mor_2314", "nope")

		// Assert
		require.Error(t, err)
		assert.Empty(t, token)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeAuthFailed, appErr.Code)
		assert.Equal(t, "username or password is incorrect", appErr.Message)
	})

	t.Run("Propagates Transport Failures", func(t *testing.T) {
		// Arrange
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		upstream.Close()

		client := fakestore.NewClient(upstream.URL, testTimeout)

		// Act
		token, err := client.Login(ctx, "mor_2314", "83r5^_")

		// Assert
		require.Error(t, err)
		assert.Empty(t, token)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeAuthFailed, appErr.Code)
	})
}
