package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/client"
	"github.com/carson-networks/finance-server/internal/handlers/v1/reports"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/taxprofile"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

type Rest struct {
	Logger          *logrus.Logger
	Port            string
	ShutdownTimeout time.Duration
	Service         *service.Service
	Storage         *storage.Storage
	Tokens          auth.TokenValidator
	// APIKey, when set, is required on every /v1 request.
	APIKey string
	// Location is the calendar location request dates are read in.
	Location *time.Location
}

// Handler builds the HTTP handler: /status plus the /v1 huma API.
func (r *Rest) Handler() http.Handler {
	useErrorModel()

	mux := http.NewServeMux()
	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Finance Server", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	config.Security = []map[string][]string{{"bearer": {}}}
	api := humago.New(mux, config)

	api.UseMiddleware(logging.Middleware(r.Logger))
	if r.APIKey != "" {
		api.UseMiddleware(v1Only(auth.APIKeyMiddleware(api, r.APIKey)))
	}
	api.UseMiddleware(v1Only(auth.Middleware(api, r.Tokens)))

	svc := r.Service
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(svc.Transaction, r.Location).Register(api)
	transaction.NewUpdateTransactionHandler(svc.Transaction, r.Location).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)

	client.NewListClientsHandler(svc.Client).Register(api)
	client.NewGetClientHandler(svc.Client).Register(api)
	client.NewCreateClientHandler(svc.Client).Register(api)
	client.NewUpdateClientHandler(svc.Client).Register(api)
	client.NewDeleteClientHandler(svc.Client).Register(api)

	taxprofile.NewHandler(svc.TaxProfile).Register(api)
	reports.NewHandler(svc.Report).Register(api)

	return mux
}

// Serve listens until ctx is done, then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// v1Only applies mw to /v1 operations and lets the OpenAPI and docs routes
// through.
func v1Only(mw func(huma.Context, func(huma.Context))) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if op := ctx.Operation(); op == nil || !strings.HasPrefix(op.Path, "/v1/") {
			next(ctx)
			return
		}
		mw(ctx, next)
	}
}
