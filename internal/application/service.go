package application

import (
	"bytes"
	"context"
	"encoding/json"

	"jewelquote-service/internal/domain"

	"go.uber.org/zap"
)

const (
	MetricPremium  = "quote.premium"
	MetricRequests = "quote.request"

	DefaultAppTag = "jewelers-mutual-clone"

	unknownCustomer = "unknown"
)

// QuoteReply is the success payload of the quote API. The quote is relayed
// exactly as the workflow returned it.
type QuoteReply struct {
	Quote json.RawMessage `json:"quote"`
}

type QuoteService struct {
	runner     WorkflowRunner
	workflowID string
	metrics    BestEffort
	appTag     string
	log        *zap.Logger
}

type Option func(*QuoteService)

func WithMetrics(m Metrics) Option    { return func(s *QuoteService) { s.metrics.m = m } }
func WithLogger(l *zap.Logger) Option { return func(s *QuoteService) { s.log = l } }
func WithAppTag(tag string) Option    { return func(s *QuoteService) { s.appTag = tag } }

// NewQuoteService builds the service. An empty workflowID is allowed: every
// quote request then fails with ErrNotConfigured.
func NewQuoteService(runner WorkflowRunner, workflowID string, opts ...Option) *QuoteService {
	s := &QuoteService{
		runner:     runner,
		workflowID: workflowID,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.appTag == "" {
		s.appTag = DefaultAppTag
	}
	s.metrics = NewBestEffort(s.metrics.m, s.log)
	return s
}

// Configured reports whether a workflow identifier is set.
func (s *QuoteService) Configured() bool { return s.workflowID != "" }

// Compute prices the declared value carried by a workflow state. It never fails.
func (s *QuoteService) Compute(ctx context.Context, event map[string]any) domain.QuoteResult {
	res := domain.Quote(event["value"])

	customer := unknownCustomer
	if name, ok := event["name"].(string); ok && name != "" {
		customer = name
	}
	s.metrics.Emit(ctx, Sample{
		Name:  MetricPremium,
		Kind:  KindGauge,
		Value: res.Quote,
		Tags:  []string{Tag("app", s.appTag), Tag("customer", customer)},
	})
	return res
}

// FlushMetrics pushes buffered samples; call it at the end of an invocation.
func (s *QuoteService) FlushMetrics() { s.metrics.Flush() }

// RequestQuote validates a raw request body, runs the quote workflow
// synchronously and extracts the quote from its output. Every failure is an *Error.
func (s *QuoteService) RequestQuote(ctx context.Context, body []byte) (QuoteReply, error) {
	s.metrics.Emit(ctx, Sample{
		Name:  MetricRequests,
		Kind:  KindCount,
		Value: 1,
		Tags:  []string{Tag("app", s.appTag)},
	})

	req, err := ParseQuoteRequest(body)
	if err != nil {
		return QuoteReply{}, err
	}

	if s.workflowID == "" || s.runner == nil {
		return QuoteReply{}, ErrNotConfigured
	}

	input, err := json.Marshal(req)
	if err != nil {
		return QuoteReply{}, WorkflowFailed(err)
	}
	log := s.log.With(zap.String("workflow", s.workflowID))
	res, err := s.runner.RunSync(ctx, s.workflowID, input)
	if err != nil {
		log.Error("quote.workflow_failed", zap.Error(err))
		return QuoteReply{}, WorkflowFailed(err)
	}
	log = log.With(zap.String("execution", res.ExecutionID), zap.String("status", res.Status))

	if res.Output == "" {
		log.Warn("quote.workflow_no_output", zap.String("error", res.Error), zap.String("cause", res.Cause))
		return QuoteReply{}, ErrNoOutput
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal([]byte(res.Output), &out); err != nil || out == nil {
		log.Warn("quote.workflow_malformed_output", zap.Error(err))
		return QuoteReply{}, ErrMalformedOutput
	}
	quote, ok := out["quote"]
	if !ok || isNull(quote) {
		log.Warn("quote.workflow_no_quote")
		return QuoteReply{}, ErrNoQuote
	}
	return QuoteReply{Quote: quote}, nil
}

// ParseQuoteRequest decodes and validates a quote request body.
// An empty body counts as an empty object. name and email must be non-empty
// strings; value may be any JSON value except null.
func ParseQuoteRequest(body []byte) (domain.QuoteRequest, error) {
	if len(body) == 0 {
		body = []byte("{}")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return domain.QuoteRequest{}, ErrInvalidJSON
	}

	name, nameOK := stringField(fields["name"])
	email, emailOK := stringField(fields["email"])
	value := fields["value"]
	if !nameOK || !emailOK || value == nil || isNull(value) {
		return domain.QuoteRequest{}, ErrMissingFields
	}
	return domain.QuoteRequest{Name: name, Email: email, Value: value}, nil
}

func stringField(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, s != ""
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
