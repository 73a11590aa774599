// Package transport exposes the query service over gRPC, REST and JSON-RPC.
package transport

import (
	"context"

	"github.com/goodnatureofminers/commonblockchain/internal/cbi"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	service StateReporter
}

// NewExplorerHandler returns an ExplorerHandler reporting the health of service.
func NewExplorerHandler(service StateReporter) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{service: service}
}

// Health reports HEALTHY while the query service is running.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	if state := h.service.State(); state != cbi.StateRunning {
		return nil, status.Errorf(codes.Unavailable, "query service is %s", state)
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: "",
	}, nil
}
