package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"online-store/internal/handler/api"
	"online-store/internal/handler/middleware"
	"online-store/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Product  *api.ProductHandler
	Customer *api.CustomerHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		addRoutes(products, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/:name", Handler: h.Product.Exists},
		})

		customers := apiGroup.Group("/customers")
		addRoutes(customers, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customer.Register},
			{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
			{Method: http.MethodGet, Path: "/:name", Handler: h.Customer.Get},
			{Method: http.MethodPost, Path: "/:name/cart", Handler: h.Customer.AddToCart},
			{Method: http.MethodDelete, Path: "/:name/cart/:product", Handler: h.Customer.RemoveFromCart},
			{Method: http.MethodPost, Path: "/:name/wishlist", Handler: h.Customer.AddToWishlist},
			{Method: http.MethodDelete, Path: "/:name/wishlist/:product", Handler: h.Customer.RemoveFromWishlist},
			{Method: http.MethodPut, Path: "/:name/payment-method", Handler: h.Customer.SetPaymentMethod},
			{Method: http.MethodPost, Path: "/:name/funds", Handler: h.Customer.AddFunds},
			{Method: http.MethodPost, Path: "/:name/reviews", Handler: h.Customer.AddReview},
			{Method: http.MethodPost, Path: "/:name/checkout", Handler: h.Customer.Checkout},
		})

		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/products", Handler: h.Admin.AddProduct, Mw: []gin.HandlerFunc{middleware.AdminAudit("add_product")}},
			{Method: http.MethodDelete, Path: "/products/:name", Handler: h.Admin.RemoveProduct, Mw: []gin.HandlerFunc{middleware.AdminAudit("remove_product")}},
			{Method: http.MethodPost, Path: "/products/:name/discount", Handler: h.Admin.ApplyDiscount, Mw: []gin.HandlerFunc{middleware.AdminAudit("apply_discount")}},
			{Method: http.MethodPost, Path: "/customers/:name/funds", Handler: h.Admin.AddFundsToCustomer, Mw: []gin.HandlerFunc{middleware.AdminAudit("add_funds")}},
			{Method: http.MethodPost, Path: "/customers/:name/support", Handler: h.Admin.ContactCustomerSupport, Mw: []gin.HandlerFunc{middleware.AdminAudit("contact_support")}},
			{Method: http.MethodGet, Path: "/sales-report", Handler: h.Admin.SalesReport, Mw: []gin.HandlerFunc{middleware.AdminAudit("sales_report")}},
			{Method: http.MethodPost, Path: "/inventory", Handler: h.Admin.ManageInventory, Mw: []gin.HandlerFunc{middleware.AdminAudit("manage_inventory")}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Store is open",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
