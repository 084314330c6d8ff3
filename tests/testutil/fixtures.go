package testutil

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/ateliedalu/caixa/internal/adapter/http"
	"github.com/ateliedalu/caixa/internal/adapter/http/handler"
	"github.com/ateliedalu/caixa/internal/adapter/repository/jsonfile"
	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/usecase"
)

// TestServer wires the full application against a throwaway data file.
// Metrics are left nil: the application registry is process-global and tests
// build many servers per binary.
type TestServer struct {
	Router   http.Handler
	Store    *jsonfile.RetryingStore
	DataFile string
}

// NewTestServer builds a complete server rooted in t.TempDir().
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dataFile := filepath.Join(t.TempDir(), "dados.json")
	store := jsonfile.NewStore(dataFile, zerolog.Nop(), nil)
	retrying := jsonfile.NewRetryingStore(store, zerolog.Nop())
	idGen := jsonfile.NewULIDGenerator()

	ledgerUC := usecase.NewLedgerUseCase(retrying, idGen, nil)
	investmentUC := usecase.NewInvestmentUseCase(retrying, idGen, nil)
	payableUC := usecase.NewPayableUseCase(retrying, idGen, nil)
	receivableUC := usecase.NewReceivableUseCase(retrying, idGen, nil)
	saleUC := usecase.NewSaleUseCase(retrying, idGen, nil)
	purchaseUC := usecase.NewPurchaseUseCase(retrying, idGen, nil)
	reportUC := usecase.NewReportUseCase(retrying)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CaixaHandler:         handler.NewLedgerHandler(ledgerUC, domain.LedgerCaixa),
		InvestimentosHandler: handler.NewLedgerHandler(ledgerUC, domain.LedgerInvestimentos),
		InvestmentHandler:    handler.NewInvestmentHandler(investmentUC),
		PayableHandler:       handler.NewPayableHandler(payableUC),
		ReceivableHandler:    handler.NewReceivableHandler(receivableUC),
		SaleHandler:          handler.NewSaleHandler(saleUC),
		PurchaseHandler:      handler.NewPurchaseHandler(purchaseUC),
		ReportHandler:        handler.NewReportHandler(reportUC),
		HealthHandler:        handler.NewHealthHandler(retrying),
		Logger:               zerolog.Nop(),
		CORSAllowedOrigins:   []string{"*"},
	})

	return &TestServer{
		Router:   router,
		Store:    retrying,
		DataFile: dataFile,
	}
}
