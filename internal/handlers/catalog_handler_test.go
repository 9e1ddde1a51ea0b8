package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/pritam-ray/mitthuug-sub001/internal/catalog"
	"github.com/pritam-ray/mitthuug-sub001/internal/theme"
)

func catalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	RegisterCatalogRoutes(r, HandlerConfig{Logger: zerolog.Nop()})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProducts_Filtered(t *testing.T) {
	r := catalogRouter(t)

	w := get(r, "/products?category=Classic+Collection&min_price=150")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []catalog.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Products)
	for _, p := range resp.Products {
		require.Equal(t, "Classic Collection", p.Category)
		require.GreaterOrEqual(t, p.Price, 150.0)
	}
}

func TestProducts_BadPriceParam(t *testing.T) {
	r := catalogRouter(t)

	w := get(r, "/products?min_price=abc")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_min_price")
}

func TestProductBySlug_HitAndMiss(t *testing.T) {
	r := catalogRouter(t)

	w := get(r, "/product/coconut-gud-ladoo")
	require.Equal(t, http.StatusOK, w.Code)
	var p catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.Equal(t, "3", p.ID)

	w = get(r, "/product/does-not-exist")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeaturedEndpoint(t *testing.T) {
	r := catalogRouter(t)

	w := get(r, "/products/featured")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []catalog.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Products)
	for _, p := range resp.Products {
		require.True(t, p.IsFeatured)
	}
}

func TestBlogEndpoints(t *testing.T) {
	r := catalogRouter(t)

	w := get(r, "/blog")
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/blog/how-we-source-our-gud")
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/blog/missing")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestThemeEndpoint_RoundTrip(t *testing.T) {
	r := catalogRouter(t)

	w := get(r, "/theme")
	require.Equal(t, http.StatusOK, w.Code)

	var got theme.Tokens
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, theme.Default.Colors["gud"]["500"], got.Colors["gud"]["500"])
	require.Equal(t, theme.Default.ZIndex, got.ZIndex)
	require.Len(t, got.Keyframes, len(theme.Default.Keyframes))
}
