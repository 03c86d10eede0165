//go:build wireinject

package bootstrap

import (
	"context"

	httpserver "jewelquote-service/internal/infrastructure/http"
	lambdahandler "jewelquote-service/internal/infrastructure/lambda"

	"github.com/google/wire"
)

var baseSet = wire.NewSet(
	ProvideLogger,
	ProvideConfig,
	ProvideRegistry,
	ProvideMetrics,
)

var quoteSet = wire.NewSet(
	baseSet,
	ProvideWorkflowRunner,
	ProvideQuoteService,
)

// API injector: builds *httpserver.Server + Cleanup
func InitAPI(ctx context.Context) (*httpserver.Server, func(), error) {
	wire.Build(
		quoteSet,
		ProvideHTTPServer,
	)
	return nil, nil, nil
}

// Quote API Lambda injector
func InitQuoteAPILambda(ctx context.Context) (*lambdahandler.QuoteAPI, func(), error) {
	wire.Build(
		quoteSet,
		ProvideQuoteAPIHandler,
	)
	return nil, nil, nil
}

// Calculator Lambda injector
func InitComputeQuoteLambda() (*lambdahandler.ComputeQuote, func(), error) {
	wire.Build(
		baseSet,
		ProvideCalculatorService,
		ProvideComputeQuoteHandler,
	)
	return nil, nil, nil
}
