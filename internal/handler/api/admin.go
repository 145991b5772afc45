package api

import (
	"net/http"

	reqdto "online-store/internal/handler/dto/request"
	"online-store/internal/handler/httperr"
	"online-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the privileged operations. The routes carry no
// authentication.
type AdminHandler struct {
	cmds commands.AdminCommands
}

func NewAdminHandler(cmds commands.AdminCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Add product
// @Description Append a product to the catalog; duplicate names are allowed
// @Tags admin
// @Accept json
// @Param request body reqdto.AddProductRequest true "Product"
// @Success 201 "Created"
// @Failure 400 {object} httperr.Response
// @Router /admin/products [post]
func (h *AdminHandler) AddProduct(c *gin.Context) {
	var req reqdto.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.AddProduct(c.Request.Context(), req.ToCommand()); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Remove product
// @Tags admin
// @Param name path string true "Product name"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/products/{name} [delete]
func (h *AdminHandler) RemoveProduct(c *gin.Context) {
	if err := h.cmds.RemoveProduct(c.Request.Context(), c.Param("name")); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Apply discount
// @Description Raise the product's discount by amount, capped at 1
// @Tags admin
// @Accept json
// @Param name path string true "Product name"
// @Param request body reqdto.ApplyDiscountRequest true "Discount"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/products/{name}/discount [post]
func (h *AdminHandler) ApplyDiscount(c *gin.Context) {
	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ApplyDiscount(c.Request.Context(), c.Param("name"), *req.Amount); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add funds to customer
// @Tags admin
// @Accept json
// @Param name path string true "Customer name"
// @Param request body reqdto.AddFundsRequest true "Amount"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/customers/{name}/funds [post]
func (h *AdminHandler) AddFundsToCustomer(c *gin.Context) {
	var req reqdto.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.AddFundsToCustomer(c.Request.Context(), c.Param("name"), *req.Amount); err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Sales report
// @Tags admin
// @Failure 501 {object} httperr.Response
// @Router /admin/sales-report [get]
func (h *AdminHandler) SalesReport(c *gin.Context) {
	h.respondNoContent(c, h.cmds.ViewSalesReport(c.Request.Context()))
}

// @Summary Manage inventory
// @Tags admin
// @Failure 501 {object} httperr.Response
// @Router /admin/inventory [post]
func (h *AdminHandler) ManageInventory(c *gin.Context) {
	h.respondNoContent(c, h.cmds.ManageInventory(c.Request.Context()))
}

// @Summary Contact customer support
// @Tags admin
// @Param name path string true "Customer name"
// @Failure 404 {object} httperr.Response
// @Failure 501 {object} httperr.Response
// @Router /admin/customers/{name}/support [post]
func (h *AdminHandler) ContactCustomerSupport(c *gin.Context) {
	h.respondNoContent(c, h.cmds.ContactCustomerSupport(c.Request.Context(), c.Param("name")))
}

func (h *AdminHandler) respondNoContent(c *gin.Context, err error) {
	if err != nil {
		httperr.AbortWithOutcome(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
