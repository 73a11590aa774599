package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/commonblockchain/internal/cbi"
	"github.com/goodnatureofminers/commonblockchain/pkg/workerpool"
	"go.uber.org/zap"
)

// RPCHandlerConfig bounds the work done for one HTTP request.
type RPCHandlerConfig struct {
	// Timeout applies to every call; zero disables it.
	Timeout     time.Duration
	MaxBodySize int64
	// Workers caps the calls of a batch executed concurrently.
	Workers int
}

// RPCHandler serves the capability table as JSON-RPC 2.0 over HTTP POST.
type RPCHandler struct {
	service Service
	methods map[string]Method
	cfg     RPCHandlerConfig
	metrics HandlerMetrics
	logger  *zap.Logger
}

func NewRPCHandler(service Service, cfg RPCHandlerConfig, metrics HandlerMetrics, logger *zap.Logger) (*RPCHandler, error) {
	if service == nil {
		return nil, errors.New("query service is required")
	}
	if metrics == nil {
		return nil, errors.New("handler metrics is required")
	}
	return &RPCHandler{
		service: service,
		methods: Methods(service),
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("rpcHandler"),
	}, nil
}

// ServeHTTP handles single and batch JSON-RPC requests.
func (h *RPCHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, readErr := h.readBody(r)
	if readErr != nil {
		h.writeJSON(w, errorResponse(nil, readErr))
		return
	}

	calls, isBatch, parseErr := parseBody(body)
	if parseErr != nil {
		h.writeJSON(w, errorResponse(nil, newError(CodeParseError, "parse error: %v", parseErr)))
		return
	}
	if isBatch && len(calls) == 0 {
		h.writeJSON(w, errorResponse(nil, newError(CodeInvalidRequest, "empty batch")))
		return
	}

	responses, err := workerpool.Map(r.Context(), h.cfg.Workers, calls, func(ctx context.Context, raw json.RawMessage) (*response, error) {
		return h.serveCall(ctx, raw), nil
	})
	if err != nil {
		h.logger.Debug("request abandoned", zap.Int("calls", len(calls)), zap.Error(err))
		return
	}

	out := make([]*response, 0, len(responses))
	for _, resp := range responses {
		if resp != nil {
			out = append(out, resp)
		}
	}
	switch {
	case len(out) == 0:
		w.WriteHeader(http.StatusNoContent)
	case isBatch:
		h.writeJSON(w, out)
	default:
		h.writeJSON(w, out[0])
	}
}

func (h *RPCHandler) readBody(r *http.Request) ([]byte, *Error) {
	reader := io.Reader(r.Body)
	if h.cfg.MaxBodySize > 0 {
		reader = io.LimitReader(r.Body, h.cfg.MaxBodySize+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, newError(CodeParseError, "failed to read request body")
	}
	if h.cfg.MaxBodySize > 0 && int64(len(body)) > h.cfg.MaxBodySize {
		return nil, newError(CodeInvalidRequest, "request body too large")
	}
	return body, nil
}

// serveCall runs one call and returns nil for notifications.
func (h *RPCHandler) serveCall(ctx context.Context, raw json.RawMessage) *response {
	started := time.Now()

	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		h.metrics.Observe("", CodeInvalidRequest, started)
		return errorResponse(nil, newError(CodeInvalidRequest, "invalid request: %v", err))
	}

	resp := h.dispatch(ctx, &req)
	code := 0
	if resp.Error != nil {
		code = resp.Error.Code
	}
	method := req.Method
	if _, ok := h.methods[method]; !ok {
		method = ""
	}
	h.metrics.Observe(method, code, started)

	if req.isNotification() {
		return nil
	}
	return resp
}

func (h *RPCHandler) dispatch(ctx context.Context, req *request) *response {
	if err := req.validate(); err != nil {
		return errorResponse(req.ID, newError(CodeInvalidRequest, "invalid request: %v", err))
	}
	method, ok := h.methods[req.Method]
	if !ok {
		return errorResponse(req.ID, newError(CodeMethodNotFound, "method %s not found", req.Method))
	}
	params, err := req.positional()
	if err != nil {
		return errorResponse(req.ID, newError(CodeInvalidParams, "%v", err))
	}
	if rpcErr := method.checkArity(params); rpcErr != nil {
		return errorResponse(req.ID, rpcErr)
	}
	if state := h.service.State(); state != cbi.StateRunning {
		return errorResponse(req.ID, newError(CodeNotRunning, "query service is %s", state))
	}

	if h.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.Timeout)
		defer cancel()
	}

	result, err := method.call(ctx, params)
	if err != nil {
		rpcErr := toRPCError(err)
		if rpcErr.Code == CodeInternalError || rpcErr.Code == CodeUpstreamFailure {
			h.logger.Warn("call failed", zap.String("method", req.Method), zap.Error(err))
		}
		return errorResponse(req.ID, rpcErr)
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("failed to encode result", zap.String("method", req.Method), zap.Error(err))
		return errorResponse(req.ID, newError(CodeInternalError, "failed to encode result"))
	}
	return &response{JSONRPC: jsonrpcVersion, Result: encoded, ID: req.ID}
}

func toRPCError(err error) *Error {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	switch cbi.KindOf(err) {
	case cbi.ErrInvalidArgument:
		return newError(CodeInvalidParams, "%v", err)
	case cbi.ErrNotImplemented:
		return newError(CodeNotImplemented, "%v", err)
	case cbi.ErrNotFound:
		return newError(CodeNotFound, "%v", err)
	case cbi.ErrUpstreamFailure:
		return newError(CodeUpstreamFailure, "%v", err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newError(CodeUpstreamFailure, "%v", err)
	}
	return newError(CodeInternalError, "%v", err)
}

func (h *RPCHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Debug("failed to write response", zap.Error(err))
	}
}
