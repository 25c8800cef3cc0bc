package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/workerhousing/housing-client/internal/core/store"
	"github.com/workerhousing/housing-client/internal/infrastructure/api"
	"github.com/workerhousing/housing-client/internal/infrastructure/config"
	"github.com/workerhousing/housing-client/internal/infrastructure/tokenstore"
	"github.com/workerhousing/housing-client/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "housingctl",
	Short:         "Client for the worker-housing management backend",
	Long:          "housingctl talks to the worker-housing REST backend: maintenance requests, invoices, grocery catalog and orders, and user management.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// app carries the wired client, built once per invocation in setup.
var app struct {
	cfg         *config.Config
	tokens      *tokenstore.FileStore
	client      *api.Client
	maintenance *store.MaintenanceStore
	invoices    *store.InvoiceStore
	items       *store.GroceryItemStore
	orders      *store.GroceryOrderStore
	users       *store.UserStore
	hydrator    *store.Hydrator
	session     *store.Session
	pdf         *store.PDFService
}

func init() {
	cobra.OnInitialize(setup)

	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		whoamiCmd,
		syncCmd,
		maintenanceCmd,
		invoicesCmd,
		groceryCmd,
		ordersCmd,
		usersCmd,
		pdfCmd,
	)
}

func setup() {
	_ = godotenv.Load()
	app.cfg = config.Load()

	log := logger.Init(logger.Options{
		Level:  app.cfg.LogLevel,
		Pretty: app.cfg.Env == "development",
	})

	app.tokens = tokenstore.New(app.cfg.Token.File)
	app.client = api.New(api.Options{
		BaseURL:      app.cfg.API.BaseURL,
		FallbackURLs: app.cfg.API.FallbackURLs,
		Timeout:      app.cfg.API.Timeout,
		RetryCount:   app.cfg.API.RetryCount,
		Tokens:       app.tokens,
		Logger:       log,
	})

	app.maintenance = store.NewMaintenanceStore(app.client, log)
	app.invoices = store.NewInvoiceStore(app.client, log)
	app.items = store.NewGroceryItemStore(app.client, log)
	app.orders = store.NewGroceryOrderStore(app.client, log)
	app.users = store.NewUserStore(app.client, log)
	app.hydrator = store.NewHydrator(app.maintenance, app.invoices, app.items, app.orders, app.users, log)
	app.session = store.NewSession(app.client, app.tokens, app.hydrator, log)
	app.pdf = store.NewPDFService(app.client, log)
}
