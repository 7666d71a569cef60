package router

import (
	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	clientH *handler.ClientHandler,
	vendorH *handler.VendorHandler,
	invoiceH *handler.InvoiceHandler,
	noteH *handler.CreditNoteHandler,
	billH *handler.BillHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	canWrite := middleware.RequireRole(domain.RoleAdmin, domain.RoleAccountant)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// User management
	users := protected.Group("/users")
	users.Use(adminOnly)
	users.POST("", userH.Create)
	users.GET("", userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", userH.Update)
	users.DELETE("/:id", userH.Delete)

	// Client master data
	clients := protected.Group("/clients")
	clients.POST("", canWrite, clientH.Create)
	clients.GET("", clientH.List)
	clients.GET("/:id", clientH.GetByID)
	clients.PUT("/:id", canWrite, clientH.Update)
	clients.DELETE("/:id", adminOnly, clientH.Delete)

	// Vendor master data
	vendors := protected.Group("/vendors")
	vendors.POST("", canWrite, vendorH.Create)
	vendors.GET("", vendorH.List)
	vendors.GET("/:id", vendorH.GetByID)
	vendors.PUT("/:id", canWrite, vendorH.Update)
	vendors.DELETE("/:id", adminOnly, vendorH.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", canWrite, invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PUT("/:id", canWrite, invoiceH.Update)
	invoices.POST("/:id/issue", canWrite, invoiceH.Issue)
	invoices.POST("/:id/cancel", canWrite, invoiceH.Cancel)
	invoices.POST("/:id/payments", canWrite, invoiceH.RecordPayment)
	invoices.GET("/:id/pdf", invoiceH.DownloadPDF)
	invoices.POST("/:id/email", canWrite, invoiceH.Email)
	invoices.POST("/:id/attachments", canWrite, invoiceH.UploadAttachment)
	invoices.GET("/:id/attachments", invoiceH.ListAttachments)
	invoices.GET("/:id/attachments/:attachmentId", invoiceH.DownloadAttachment)
	invoices.DELETE("/:id/attachments/:attachmentId", canWrite, invoiceH.DeleteAttachment)

	// Credit and debit notes
	notes := protected.Group("/notes")
	notes.POST("", canWrite, noteH.Create)
	notes.GET("", noteH.List)
	notes.GET("/:id", noteH.GetByID)
	notes.PUT("/:id", canWrite, noteH.Update)
	notes.POST("/:id/issue", canWrite, noteH.Issue)
	notes.POST("/:id/cancel", canWrite, noteH.Cancel)

	// Vendor bills
	bills := protected.Group("/bills")
	bills.POST("", canWrite, billH.Create)
	bills.GET("", billH.List)
	bills.GET("/:id", billH.GetByID)
	bills.PUT("/:id", canWrite, billH.Update)
	bills.POST("/:id/payments", canWrite, billH.RecordPayment)
	bills.POST("/:id/cancel", canWrite, billH.Cancel)
	bills.POST("/:id/attachments", canWrite, billH.UploadAttachment)
	bills.GET("/:id/attachments", billH.ListAttachments)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/tds", reportH.TDS)
	reports.GET("/invoice-register", reportH.InvoiceRegister)
	reports.GET("/gst-summary", reportH.GSTSummary)

	return r
}
