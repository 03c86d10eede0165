package main

import (
	"jewelquote-service/internal/bootstrap"
	"jewelquote-service/internal/infrastructure/logx"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

// Workflow task: prices the declared value of the item.
func main() {
	logger := logx.L()
	h, cleanup, err := bootstrap.InitComputeQuoteLambda()
	if err != nil {
		logger.Fatal("bootstrap compute quote", zap.Error(err))
	}
	defer cleanup()
	lambda.Start(h.Handle)
}
