package main

import (
	"context"

	"jewelquote-service/internal/bootstrap"
	"jewelquote-service/internal/infrastructure/logx"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

// API Gateway proxy handler: validates the request and runs the quote workflow.
func main() {
	logger := logx.L()
	h, cleanup, err := bootstrap.InitQuoteAPILambda(context.Background())
	if err != nil {
		logger.Fatal("bootstrap quote api", zap.Error(err))
	}
	defer cleanup()
	lambda.Start(h.Handle)
}
