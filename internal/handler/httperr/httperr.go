package httperr

import (
	"net/http"

	"online-store/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for the logging middleware
// while the client only sees msg and detail.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type outcome struct {
	kind    error
	status  int
	message string
}

var outcomes = []outcome{
	{errs.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{errs.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
	{errs.ErrOutOfStock, http.StatusConflict, "Product is out of stock"},
	{errs.ErrInsufficientFunds, http.StatusPaymentRequired, "Insufficient funds"},
	{errs.ErrPaymentDeclined, http.StatusPaymentRequired, "Payment declined"},
	{errs.ErrNoPaymentMethod, http.StatusUnprocessableEntity, "No payment method selected"},
	{errs.ErrEmptyCart, http.StatusUnprocessableEntity, "Cart is empty"},
	{errs.ErrInvalidPaymentKind, http.StatusBadRequest, "Unknown payment method"},
	{errs.ErrNotImplemented, http.StatusNotImplemented, "Not implemented"},
}

// StatusOf maps a storefront outcome to its HTTP status and client message.
func StatusOf(err error) (int, string) {
	for _, o := range outcomes {
		if errs.Is(err, o.kind) {
			return o.status, o.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithOutcome aborts with the status mapped from err. Hints attached to
// err are returned as detail.
func AbortWithOutcome(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	var detail any
	if hints := errs.Hints(err); len(hints) > 0 {
		detail = gin.H{"hints": hints}
	}
	AbortWithError(c, status, err, msg, detail)
}
