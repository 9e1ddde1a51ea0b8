package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pritam-ray/mitthuug-sub001/internal/catalog"
	"github.com/pritam-ray/mitthuug-sub001/internal/theme"
)

// RegisterCatalogRoutes registers the read-only catalog, blog and
// theme endpoints the storefront UI consumes during development.
func RegisterCatalogRoutes(r *gin.Engine, cfg HandlerConfig) {
	store := cfg.Catalog
	if store == nil {
		store = catalog.Fixtures()
	}

	r.GET("/products", func(c *gin.Context) {
		f, err := filterFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": store.Filtered(f)})
	})

	r.GET("/products/featured", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"products": store.Featured()})
	})

	r.GET("/product/:slug", func(c *gin.Context) {
		p, ok := store.Product(c.Param("slug"), catalog.BySlug)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.GET("/reviews/:productID", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reviews": store.Reviews(c.Param("productID"))})
	})

	r.GET("/blog", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"posts": store.BlogPosts()})
	})

	r.GET("/blog/:slug", func(c *gin.Context) {
		post, ok := store.BlogPost(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "post_not_found"})
			return
		}
		c.JSON(http.StatusOK, post)
	})

	r.GET("/theme", func(c *gin.Context) {
		c.JSON(http.StatusOK, theme.Default)
	})
}

type badQueryError string

func (e badQueryError) Error() string { return string(e) }

// filterFromQuery maps query params onto the conjunctive product
// filter. Absent params impose no constraint.
func filterFromQuery(c *gin.Context) (catalog.Filter, error) {
	f := catalog.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return catalog.Filter{}, badQueryError("invalid_min_price")
		}
		f.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return catalog.Filter{}, badQueryError("invalid_max_price")
		}
		f.MaxPrice = &v
	}
	return f, nil
}
