// Package lambdahandler adapts Lambda invocations to the quote service.
package lambdahandler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	"jewelquote-service/internal/application"
	"jewelquote-service/internal/domain"
	"jewelquote-service/internal/infrastructure/apigw"
	"jewelquote-service/internal/infrastructure/logx"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

const traceHeader = "X-Amzn-Trace-Id"

// QuoteAPI serves API Gateway proxy events.
type QuoteAPI struct {
	svc *application.QuoteService
}

func NewQuoteAPI(svc *application.QuoteService) *QuoteAPI { return &QuoteAPI{svc: svc} }

// Handle never returns an error: every outcome is an HTTP response.
func (h *QuoteAPI) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = invocationContext(ctx)
	if tid := header(req.Headers, traceHeader); tid != "" {
		ctx = logx.ContextWithTraceID(ctx, tid)
	}
	defer h.svc.FlushMetrics()

	var (
		reply application.QuoteReply
		err   error
	)
	body, decErr := requestBody(req)
	if decErr != nil {
		err = application.ErrInvalidJSON
	} else {
		reply, err = h.svc.RequestQuote(ctx, body)
	}
	resp := apigw.FromReply(reply, err)

	log := logx.WithFields(ctx).With(zap.Int("status", resp.StatusCode))
	if err != nil {
		log.Info("quote_api.rejected", zap.Error(err))
	} else {
		log.Info("quote_api.ok")
	}
	return resp, nil
}

// ComputeQuote serves the calculator step of the state machine.
type ComputeQuote struct {
	svc *application.QuoteService
}

func NewComputeQuote(svc *application.QuoteService) *ComputeQuote { return &ComputeQuote{svc: svc} }

// Handle prices the incoming state. Input that is not a JSON object prices at zero.
func (h *ComputeQuote) Handle(ctx context.Context, event json.RawMessage) (domain.QuoteResult, error) {
	ctx = invocationContext(ctx)
	defer h.svc.FlushMetrics()

	var state map[string]any
	dec := json.NewDecoder(bytes.NewReader(event))
	dec.UseNumber()
	if err := dec.Decode(&state); err != nil {
		logx.WithFields(ctx).Warn("compute_quote.bad_input", zap.Error(err))
		state = nil
	}
	res := h.svc.Compute(ctx, state)
	logx.WithFields(ctx).Info("compute_quote.ok", zap.Float64("quote", res.Quote))
	return res, nil
}

func invocationContext(ctx context.Context) context.Context {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		ctx = logx.ContextWithRequestID(ctx, lc.AwsRequestID)
	}
	return ctx
}

func requestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func header(h map[string]string, name string) string {
	for k, v := range h {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
