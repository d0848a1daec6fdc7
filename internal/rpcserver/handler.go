package rpcserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/xbridge-witness/xbwd/internal/rpccall"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xbwd_rpc_requests_total",
		Help: "The total number of admin rpc requests received",
	}, []string{"method"})
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xbwd_rpc_errors_total",
		Help: "The total number of admin rpc requests answered with an error",
	}, []string{"error"})
)

// Error codes returned in the result of a failed request.
const (
	ErrInvalidParams     = "invalidParams"
	ErrUnknownCmd        = "unknownCmd"
	ErrInvalidAPIVersion = "invalid_API_version"
	ErrSlowDown          = "slowDown"
	ErrInternal          = "internal"
)

var apiVersionMessage = fmt.Sprintf(
	"API version must be an integer between %d and %d.",
	rpccall.APIMinimumSupportedVersion, rpccall.APIMaximumSupportedVersion)

var errorMessages = map[string]string{
	ErrInvalidParams:     "Invalid parameters.",
	ErrUnknownCmd:        "Unknown method.",
	ErrInvalidAPIVersion: apiVersionMessage,
	ErrSlowDown:          "You are placing too much load on the server.",
	ErrInternal:          "Internal error.",
}

// unknownMethod is the metrics label of requests without a known method.
const unknownMethod = "unknown"

type methodFunc func(context.Context, rpccall.Request) (map[string]any, string)

// methods returns the admin methods this server implements.
func (s *Server) methods() map[string]methodFunc {
	return map[string]methodFunc{
		rpccall.MethodServerInfo: s.serverInfo,
		rpccall.MethodStop:       s.stopServer,
	}
}

func (s *Server) serverInfo(ctx context.Context, _ rpccall.Request) (map[string]any, string) {
	info, err := s.info.ServerInfo(ctx)
	if err != nil {
		s.log.Error("couldn't get server info", slog.Any("error", err))
		return nil, ErrInternal
	}
	return map[string]any{"info": info}, ""
}

func (s *Server) stopServer(_ context.Context, _ rpccall.Request) (map[string]any, string) {
	s.stop()
	return map[string]any{"message": "xbwd server stopping"}, ""
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	log := s.log.With(slog.String("requestID", requestID))
	// set up tracing
	ctx, span := otel.Tracer(pkgName).Start(r.Context(), "rpc",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("rpc.request_id", requestID)))
	defer span.End()
	if r.Method != http.MethodPost {
		s.reply(w, log, http.StatusMethodNotAllowed,
			s.errorResult(ErrInvalidParams, nil))
		return
	}
	if !s.limiter.Allow() {
		requestsTotal.WithLabelValues(unknownMethod).Inc()
		log.Warn("rate limited admin request")
		s.reply(w, log, http.StatusServiceUnavailable,
			s.errorResult(ErrSlowDown, nil))
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRequestSize))
	if err != nil {
		log.Warn("couldn't read request body", slog.Any("error", err))
		s.reply(w, log, http.StatusBadRequest, s.errorResult(ErrInvalidParams, nil))
		return
	}
	var req rpccall.Request
	if err = json.Unmarshal(data, &req); err != nil || req == nil {
		requestsTotal.WithLabelValues(unknownMethod).Inc()
		log.Debug("couldn't unmarshal request", slog.Any("error", err))
		s.reply(w, log, http.StatusOK, s.errorResult(ErrInvalidParams, nil))
		return
	}
	method := req.Method()
	span.SetAttributes(attribute.String("rpc.method", method))
	log = log.With(slog.Any("request", req))
	fn, ok := s.methods()[method]
	if !ok {
		requestsTotal.WithLabelValues(unknownMethod).Inc()
		if method == "" {
			log.Debug("request without method")
			s.reply(w, log, http.StatusOK, s.errorResult(ErrInvalidParams, req))
			return
		}
		log.Debug("unknown method")
		s.reply(w, log, http.StatusOK, s.errorResult(ErrUnknownCmd, req))
		return
	}
	requestsTotal.WithLabelValues(method).Inc()
	if !validAPIVersion(req) {
		log.Debug("invalid api version")
		s.reply(w, log, http.StatusOK, s.errorResult(ErrInvalidAPIVersion, req))
		return
	}
	result, code := fn(ctx, req)
	if code != "" {
		s.reply(w, log, http.StatusOK, s.errorResult(code, req))
		return
	}
	result[rpccall.FieldStatus] = rpccall.StatusSuccess
	log.Info("admin request handled")
	s.reply(w, log, http.StatusOK, result)
}

// validAPIVersion returns true if the request has no api_version, or has an
// integral api_version in the supported range.
func validAPIVersion(req rpccall.Request) bool {
	raw, ok := req[rpccall.FieldAPIVersion]
	if !ok {
		return true
	}
	v, ok := raw.(float64)
	if !ok || v != math.Trunc(v) {
		return false
	}
	return v >= rpccall.APIMinimumSupportedVersion &&
		v <= rpccall.APIMaximumSupportedVersion
}

func (s *Server) errorResult(code string, req rpccall.Request) map[string]any {
	errorsTotal.WithLabelValues(code).Inc()
	result := map[string]any{
		rpccall.FieldError:        code,
		rpccall.FieldErrorMessage: errorMessages[code],
		rpccall.FieldStatus:       rpccall.StatusError,
	}
	if req != nil {
		result[rpccall.FieldRequest] = req
	}
	return result
}

func (s *Server) reply(w http.ResponseWriter, log *slog.Logger, status int,
	result map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(rpccall.Response{rpccall.FieldResult: result})
	if err != nil {
		log.Warn("couldn't write response", slog.Any("error", err))
	}
}
