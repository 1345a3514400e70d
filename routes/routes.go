package routes

import (
	"time"

	"github.com/AndersonMairnck/frontFynanceo/configs"
	"github.com/AndersonMairnck/frontFynanceo/controllers"
	"github.com/AndersonMairnck/frontFynanceo/middlewares"
	"github.com/AndersonMairnck/frontFynanceo/repository"
	"github.com/AndersonMairnck/frontFynanceo/services"
	"github.com/AndersonMairnck/frontFynanceo/utils"
	"github.com/AndersonMairnck/frontFynanceo/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the long-lived pieces main builds before routing.
type Deps struct {
	Config   *configs.Config
	DB       *gorm.DB
	Hub      *ws.EventHub
	Notifier services.Notifier
	// CatalogBackoff is the first wait between catalog read retries.
	CatalogBackoff time.Duration
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.OperatorMiddleware())
	utils.RegisterValidators()

	api := repository.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout, cfg.APIToken)
	backoff := d.CatalogBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	// Repositories
	customerRepo := repository.NewCustomerRepository(api)
	productRepo := repository.NewProductRepository(api)
	categoryRepo := repository.NewCategoryRepository(api)
	orderRepo := repository.NewOrderRepository(api)
	deliveryRepo := repository.NewDeliveryRepository(api)
	journalRepo := repository.NewSaleJournalRepository(d.DB)

	// Services
	journalSvc := services.NewJournalService(d.DB, journalRepo)
	customerSvc := services.NewCustomerService(customerRepo, d.Notifier)
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo, cfg.CatalogRetries, backoff)
	pdvSvc := services.NewPDVService(orderRepo, journalSvc, d.Notifier)
	tableSvc := services.NewTableService(orderRepo, d.Notifier)
	orderSvc := services.NewOrderService(orderRepo)
	deliverySvc := services.NewDeliveryService(deliveryRepo)

	// Controllers
	healthCtrl := controllers.NewHealthController(api)
	pdvCtrl := controllers.NewPDVController(pdvSvc, catalogSvc, customerSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	journalCtrl := controllers.NewJournalController(journalSvc)

	r.GET("/health", healthCtrl.Live)
	if d.Hub != nil {
		r.GET("/ws/events", d.Hub.HandleWebSocket)
	}

	g := r.Group("/api")
	g.GET("/health/upstream", healthCtrl.Upstream)

	// PDV sessions (cart + checkout)
	pdv := g.Group("/pdv")
	{
		pdv.GET("/payment-methods", pdvCtrl.PaymentMethods)
		pdv.GET("/sessions", pdvCtrl.List)
		pdv.POST("/sessions", pdvCtrl.Open)
		pdv.GET("/sessions/:id", pdvCtrl.Detail)
		pdv.DELETE("/sessions/:id", pdvCtrl.Close)

		pdv.POST("/sessions/:id/items", pdvCtrl.AddItem)
		pdv.DELETE("/sessions/:id/items", pdvCtrl.Clear)
		pdv.PATCH("/sessions/:id/items/:productId", pdvCtrl.UpdateQty)
		pdv.DELETE("/sessions/:id/items/:productId", pdvCtrl.RemoveItem)
		pdv.POST("/sessions/:id/items/:productId/increment", pdvCtrl.Increment)
		pdv.POST("/sessions/:id/items/:productId/decrement", pdvCtrl.Decrement)

		pdv.PUT("/sessions/:id/customer", pdvCtrl.SelectCustomer)
		pdv.PUT("/sessions/:id/table", pdvCtrl.SelectTable)
		pdv.PUT("/sessions/:id/order-type", pdvCtrl.SelectOrderType)
		pdv.PUT("/sessions/:id/payment-method", pdvCtrl.SelectPaymentMethod)
		pdv.GET("/sessions/:id/change", pdvCtrl.Change)
		pdv.POST("/sessions/:id/finalize", pdvCtrl.Finalize)
		pdv.DELETE("/sessions/:id/error", pdvCtrl.ClearError)
	}

	// Tables
	g.GET("/tables/:number/orders", tableCtrl.Orders)
	g.POST("/tables/:number/orders", tableCtrl.CreateOrder)
	g.DELETE("/tables/error", tableCtrl.ClearError)
	g.POST("/table-orders/:id/items", tableCtrl.AddItems)
	g.POST("/table-orders/:id/payment", tableCtrl.ProcessPayment)

	// Customers
	cust := g.Group("/customers")
	{
		cust.GET("", customerCtrl.List)
		cust.POST("", customerCtrl.Create)
		cust.GET("/:id", customerCtrl.Detail)
		cust.PUT("/:id", customerCtrl.Update)
		cust.DELETE("/:id", customerCtrl.Deactivate)
		cust.POST("/:id/activate", customerCtrl.Activate)
	}

	// Catalog
	prod := g.Group("/products")
	{
		prod.GET("", catalogCtrl.Products)
		prod.POST("", catalogCtrl.CreateProduct)
		prod.GET("/:id", catalogCtrl.Product)
		prod.PUT("/:id", catalogCtrl.UpdateProduct)
		prod.PATCH("/:id/deactivate", catalogCtrl.DeactivateProduct)
		prod.PATCH("/:id/activate", catalogCtrl.ActivateProduct)
	}
	cat := g.Group("/categories")
	{
		cat.GET("", catalogCtrl.Categories)
		cat.POST("", catalogCtrl.CreateCategory)
		cat.GET("/:id", catalogCtrl.Category)
		cat.PUT("/:id", catalogCtrl.UpdateCategory)
		cat.DELETE("/:id", catalogCtrl.DeleteCategory)
	}

	// Orders / deliveries
	ord := g.Group("/orders")
	{
		ord.GET("", orderCtrl.List)
		ord.GET("/stats", orderCtrl.Stats)
		ord.GET("/:id", orderCtrl.Detail)
		ord.PUT("/:id/status", orderCtrl.UpdateStatus)
		ord.DELETE("/:id", orderCtrl.Delete)
	}
	del := g.Group("/deliveries")
	{
		del.GET("", deliveryCtrl.List)
		del.GET("/active", deliveryCtrl.Active)
		del.GET("/stats", deliveryCtrl.Stats)
		del.GET("/:id", deliveryCtrl.Detail)
		del.PATCH("/:id/status", deliveryCtrl.UpdateStatus)
		del.PATCH("/:id/assign", deliveryCtrl.Assign)
		del.PATCH("/:id/estimated-time", deliveryCtrl.EstimatedTime)
	}

	// Local journal
	g.GET("/journal", journalCtrl.List)
	g.GET("/journal/totals", journalCtrl.Totals)
}
