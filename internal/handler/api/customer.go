package api

import (
	"net/http"

	reqdto "online-store/internal/handler/dto/request"
	resdto "online-store/internal/handler/dto/response"
	"online-store/internal/handler/httperr"
	"online-store/internal/pkg/config"
	"online-store/internal/usecase/commands"
	"online-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds     commands.StorefrontCommands
	q        queries.StorefrontQueries
	currency string
}

func NewCustomerHandler(cmds commands.StorefrontCommands, q queries.StorefrontQueries, cfg config.StoreConfig) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q, currency: cfg.CurrencySymbol}
}

// @Summary Register customer
// @Description Register a customer; an existing customer with the same name is replaced
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCustomerRequest true "Register customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.RegisterCustomer(c.Request.Context(), req.Name, req.InitialBalance()); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	h.respondWithCustomer(c, http.StatusCreated, req.Name)
}

// @Summary List customers
// @Description List registered customers ordered by name
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerSummaryResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	items, err := h.q.ListCustomers(c.Request.Context())
	if err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": resdto.FromCustomerSummaries(items)})
}

// @Summary Get customer
// @Description Cart, wishlist, orders and reviews of a customer
// @Tags customers
// @Produce json
// @Param name path string true "Customer name"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{name} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	h.respondWithCustomer(c, http.StatusOK, c.Param("name"))
}

// @Summary Add to cart
// @Description Snapshot a catalog product into the cart and take one unit of stock
// @Tags customers
// @Accept json
// @Produce json
// @Param name path string true "Customer name"
// @Param request body reqdto.ProductRefRequest true "Product"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers/{name}/cart [post]
func (h *CustomerHandler) AddToCart(c *gin.Context) {
	var req reqdto.ProductRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	name := c.Param("name")
	if err := h.cmds.PurchaseProduct(c.Request.Context(), name, req.ProductName); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	h.respondWithCustomer(c, http.StatusOK, name)
}

// @Summary Remove from cart
// @Description Remove the first cart item with this name; stock is not restored
// @Tags customers
// @Produce json
// @Param name path string true "Customer name"
// @Param product path string true "Product name"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{name}/cart/{product} [delete]
func (h *CustomerHandler) RemoveFromCart(c *gin.Context) {
	name := c.Param("name")
	if err := h.cmds.RemoveFromCart(c.Request.Context(), name, c.Param("product")); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	h.respondWithCustomer(c, http.StatusOK, name)
}

// @Summary Add to wishlist
// @Tags customers
// @Accept json
// @Produce json
// @Param name path string true "Customer name"
// @Param request body reqdto.ProductRefRequest true "Product"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{name}/wishlist [post]
func (h *CustomerHandler) AddToWishlist(c *gin.Context) {
	var req reqdto.ProductRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	name := c.Param("name")
	if err := h.cmds.AddToWishlist(c.Request.Context(), name, req.ProductName); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	h.respondWithCustomer(c, http.StatusOK, name)
}

// @Summary Remove from wishlist
// @Tags customers
// @Produce json
// @Param name path string true "Customer name"
// @Param product path string true "Product name"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{name}/wishlist/{product} [delete]
func (h *CustomerHandler) RemoveFromWishlist(c *gin.Context) {
	name := c.Param("name")
	if err := h.cmds.RemoveFromWishlist(c.Request.Context(), name, c.Param("product")); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	h.respondWithCustomer(c, http.StatusOK, name)
}

// @Summary Set payment method
// @Description Select cash, credit_card or paypal
// @Tags customers
// @Accept json
// @Param name path string true "Customer name"
// @Param request body reqdto.SetPaymentMethodRequest true "Payment method"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{name}/payment-method [put]
func (h *CustomerHandler) SetPaymentMethod(c *gin.Context) {
	var req reqdto.SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	kind, err := req.ToKind()
	if err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	if err := h.cmds.SetPaymentMethod(c.Request.Context(), c.Param("name"), kind); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add funds
// @Tags customers
// @Accept json
// @Produce json
// @Param name path string true "Customer name"
// @Param request body reqdto.AddFundsRequest true "Amount"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{name}/funds [post]
func (h *CustomerHandler) AddFunds(c *gin.Context) {
	var req reqdto.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	name := c.Param("name")
	if err := h.cmds.AddFunds(c.Request.Context(), name, *req.Amount); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	h.respondWithCustomer(c, http.StatusOK, name)
}

// @Summary Add review
// @Tags customers
// @Accept json
// @Produce json
// @Param name path string true "Customer name"
// @Param request body reqdto.AddReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewCreatedResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{name}/reviews [post]
func (h *CustomerHandler) AddReview(c *gin.Context) {
	var req reqdto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.AddReview(c.Request.Context(), c.Param("name"), req.ToCommand())
	if err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ReviewCreatedResponse{ID: id.String()})
}

// @Summary Checkout
// @Description Pay for the whole cart with the selected payment method
// @Tags customers
// @Produce json
// @Param name path string true "Customer name"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /customers/{name}/checkout [post]
func (h *CustomerHandler) Checkout(c *gin.Context) {
	result, err := h.cmds.Checkout(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func (h *CustomerHandler) respondWithCustomer(c *gin.Context, status int, name string) {
	view, err := h.q.GetCustomer(c.Request.Context(), name)
	if err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.JSON(status, resdto.FromCustomerView(view, h.currency))
}
