package main

import (
	"fmt"
	"log"

	"gstbill/internal/config"
	noopemail "gstbill/internal/email/noop"
	sesemail "gstbill/internal/email/ses"
	"gstbill/internal/handler"
	"gstbill/internal/pdf"
	"gstbill/internal/port"
	"gstbill/internal/repository/postgres"
	"gstbill/internal/router"
	"gstbill/internal/service"
	s3storage "gstbill/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	vendorRepo := postgres.NewVendorRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	noteRepo := postgres.NewCreditNoteRepo(db)
	billRepo := postgres.NewBillRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)
	seqRepo := postgres.NewSequenceRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Email delivery
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = sesemail.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noopemail.NewNoopSender()
	}

	renderer := pdf.NewRenderer()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	clientSvc := service.NewClientService(clientRepo)
	vendorSvc := service.NewVendorService(vendorRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, tenantRepo, paymentRepo, seqRepo, renderer, emailSender)
	noteSvc := service.NewCreditNoteService(noteRepo, invoiceRepo, clientRepo, tenantRepo, seqRepo)
	billSvc := service.NewBillService(billRepo, vendorRepo, tenantRepo, paymentRepo, seqRepo)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, s3Client, cfg.S3)
	reportSvc := service.NewReportService(reportRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	clientH := handler.NewClientHandler(clientSvc)
	vendorH := handler.NewVendorHandler(vendorSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, attachmentSvc)
	noteH := handler.NewCreditNoteHandler(noteSvc)
	billH := handler.NewBillHandler(billSvc, attachmentSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, userH, clientH, vendorH, invoiceH, noteH, billH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
