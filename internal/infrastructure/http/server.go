package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"

	"jewelquote-service/internal/application"
	"jewelquote-service/internal/infrastructure/apigw"
	"jewelquote-service/internal/infrastructure/ratelimit"

	"github.com/aws/aws-lambda-go/events"
)

const maxBodyBytes = 1 << 20

var ErrNotConfigured = errors.New("workflow not configured")

type Server struct {
	svc     *application.QuoteService
	ping    func(ctx context.Context) error
	metrics http.Handler
	limiter *ratelimit.MapLimiter
}

func NewServer(svc *application.QuoteService) *Server {
	s := &Server{svc: svc}
	s.ping = func(context.Context) error {
		if !svc.Configured() {
			return ErrNotConfigured
		}
		return nil
	}
	return s
}

// SetReadyCheck replaces the readiness probe.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ping = fn }

// SetMetricsHandler exposes h on GET /metrics.
func (s *Server) SetMetricsHandler(h http.Handler) { s.metrics = h }

// SetRateLimiter enables per-client rate limiting; nil disables it.
func (s *Server) SetRateLimiter(l *ratelimit.MapLimiter) { s.limiter = l }

func (s *Server) RequestQuote(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeResponse(w, apigw.FromReply(application.QuoteReply{}, application.ErrInvalidJSON))
		return
	}
	reply, err := s.svc.RequestQuote(r.Context(), body)
	writeResponse(w, apigw.FromReply(reply, err))
}

// Preflight answers browser CORS preflight requests for the quote endpoint.
func (s *Server) Preflight(w http.ResponseWriter, _ *http.Request) {
	h := w.Header()
	h.Set(apigw.HeaderAllowOrigin, "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeResponse(w, apigw.Message(status, msg))
}
