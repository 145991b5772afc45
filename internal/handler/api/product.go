package api

import (
	"net/http"

	resdto "online-store/internal/handler/dto/response"
	"online-store/internal/handler/httperr"
	"online-store/internal/pkg/config"
	"online-store/internal/pkg/errs"
	"online-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	q        queries.StorefrontQueries
	currency string
}

func NewProductHandler(q queries.StorefrontQueries, cfg config.StoreConfig) *ProductHandler {
	return &ProductHandler{q: q, currency: cfg.CurrencySymbol}
}

// @Summary List products
// @Description List the catalog in insertion order
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Failure 500 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	views, err := h.q.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductViews(views, h.currency)})
}

// @Summary Check product
// @Description Report whether the catalog lists a product with this name
// @Tags products
// @Param name path string true "Product name"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /products/{name} [get]
func (h *ProductHandler) Exists(c *gin.Context) {
	name := c.Param("name")
	found, err := h.q.HasProduct(c.Request.Context(), name)
	if err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	if !found {
		httperr.AbortWithOutcome(c, errs.Wrapf(errs.ErrProductNotFound, "product %q", name))
		return
	}
	c.Status(http.StatusNoContent)
}
