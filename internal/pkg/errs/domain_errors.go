package errs

// Outcome kinds shared by the storefront domain and its use cases.
// A nil error is the Ok outcome.
var (
	// Lookup errors
	ErrProductNotFound  = New("product not found")
	ErrCustomerNotFound = New("customer not found")

	// Purchase errors
	ErrOutOfStock = New("product is out of stock")

	// Checkout errors
	ErrEmptyCart         = New("cart is empty")
	ErrInsufficientFunds = New("insufficient funds")
	ErrNoPaymentMethod   = New("no payment method configured")
	ErrPaymentDeclined   = New("payment declined")

	// Payment configuration errors
	ErrInvalidPaymentKind = New("invalid payment method kind")

	// Declared operations without behavior
	ErrNotImplemented = New("operation not implemented")
)
