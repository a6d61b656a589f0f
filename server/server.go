// Package server implements the nas gRPC daemon.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/server/pb"
	"github.com/frobware/go-nas/store"
)

// TxnMetadataKey carries a caller-chosen transaction id for log
// correlation.
const TxnMetadataKey = "x-nas-txn"

// Server implements pb.VLANServiceServer on top of a Manager.
type Server struct {
	pb.UnimplementedVLANServiceServer

	mgr    *manager.Manager
	scope  lock.WriterScope
	logger *slog.Logger
}

var _ pb.VLANServiceServer = (*Server)(nil)

// New returns a Server backed by mgr. scope is the writer lock the
// caller holds for as long as the server runs; every mutation is
// made under it.
func New(mgr *manager.Manager, scope lock.WriterScope, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{mgr: mgr, scope: scope, logger: logger.With("component", "server")}
}

// NewGRPCServer returns a gRPC server with the VLAN service and the
// standard health service registered, and the health server so the
// caller can flip its status.
func (s *Server) NewGRPCServer() (*grpc.Server, *health.Server) {
	gs := grpc.NewServer(grpc.UnaryInterceptor(s.loggingInterceptor()))
	pb.RegisterVLANServiceServer(gs, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.VLANService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	return gs, hs
}

// RunConfig configures the daemon listeners.
type RunConfig struct {
	SocketPath string
	// MetricsAddress serves /metrics over HTTP. Empty disables it.
	MetricsAddress string
	// Gatherer backs /metrics. Nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Run serves until ctx is cancelled or a listener fails. Cancellation
// is a clean shutdown and returns nil.
func (s *Server) Run(ctx context.Context, cfg RunConfig) error {
	if err := os.MkdirAll(filepath.Dir(cfg.SocketPath), 0o755); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}
	if err := os.RemoveAll(cfg.SocketPath); err != nil {
		return fmt.Errorf("failed to remove existing socket: %w", err)
	}
	lis, err := net.Listen("unix", cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.SocketPath, err)
	}
	if err := os.Chmod(cfg.SocketPath, 0o660); err != nil {
		lis.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	gs, hs := s.NewGRPCServer()

	var httpSrv *http.Server
	var httpLis net.Listener
	if cfg.MetricsAddress != "" {
		gatherer := cfg.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
		httpSrv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		if httpLis, err = net.Listen("tcp", cfg.MetricsAddress); err != nil {
			lis.Close()
			return fmt.Errorf("failed to listen on %s: %w", cfg.MetricsAddress, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.InfoContext(ctx, "gRPC server listening", "socket", cfg.SocketPath)
		if err := gs.Serve(lis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	if httpSrv != nil {
		g.Go(func() error {
			s.logger.InfoContext(ctx, "metrics listening", "address", httpLis.Addr().String())
			if err := httpSrv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		s.logger.InfoContext(ctx, "shutting down")
		hs.Shutdown()
		gs.GracefulStop()
		if httpSrv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		}
		return nil
	})
	return g.Wait()
}

// loggingInterceptor tags each request with a transaction id, taken
// from the caller's metadata when present, and logs failures.
func (s *Server) loggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		txn := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(TxnMetadataKey); len(v) > 0 {
				txn = v[0]
			}
		}
		if txn == "" {
			txn = uuid.NewString()
		}
		ctx = logging.ContextWithTxnID(ctx, txn)

		resp, err := handler(ctx, req)
		if err != nil {
			s.logger.ErrorContext(ctx, "grpc error", "method", info.FullMethod, "error", err)
			return resp, toStatus(err)
		}
		return resp, nil
	}
}

// toStatus maps domain errors to gRPC status codes.
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, store.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	switch nas.CodeOf(err) {
	case nas.CodeInvalidParameter:
		return status.Error(codes.InvalidArgument, err.Error())
	case nas.CodeInvalidState:
		return status.Error(codes.FailedPrecondition, err.Error())
	case nas.CodeExhausted:
		return status.Error(codes.ResourceExhausted, err.Error())
	case nas.CodeUnsupported:
		return status.Error(codes.Unimplemented, err.Error())
	case nas.CodeHardwareFailure:
		return status.Error(codes.Aborted, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func (s *Server) ListSwitches(context.Context, *pb.ListSwitchesRequest) (*pb.ListSwitchesResponse, error) {
	resp := &pb.ListSwitchesResponse{}
	for _, sw := range s.mgr.Switches() {
		resp.Switches = append(resp.Switches, switchToPB(sw))
	}
	return resp, nil
}

func (s *Server) CreateVLAN(ctx context.Context, req *pb.CreateVLANRequest) (*pb.VLANResponse, error) {
	spec, err := specFromPB(req)
	if err != nil {
		return nil, err
	}
	info, err := s.mgr.CreateVLAN(ctx, s.scope, spec)
	if err != nil {
		return nil, err
	}
	return &pb.VLANResponse{Vlan: vlanToPB(info)}, nil
}

func (s *Server) ModifyVLAN(ctx context.Context, req *pb.ModifyVLANRequest) (*pb.VLANResponse, error) {
	info, err := s.mgr.ModifyVLAN(ctx, s.scope, nas.ObjID(req.GetObjId()), updateFromPB(req))
	if err != nil {
		return nil, err
	}
	return &pb.VLANResponse{Vlan: vlanToPB(info)}, nil
}

func (s *Server) DeleteVLAN(ctx context.Context, req *pb.DeleteVLANRequest) (*pb.DeleteVLANResponse, error) {
	if err := s.mgr.DeleteVLAN(ctx, s.scope, nas.ObjID(req.GetObjId())); err != nil {
		return nil, err
	}
	return &pb.DeleteVLANResponse{}, nil
}

func (s *Server) GetVLAN(_ context.Context, req *pb.GetVLANRequest) (*pb.VLANResponse, error) {
	info, err := s.mgr.GetVLAN(nas.ObjID(req.GetObjId()))
	if err != nil {
		return nil, err
	}
	return &pb.VLANResponse{Vlan: vlanToPB(info)}, nil
}

func (s *Server) LookupVLAN(_ context.Context, req *pb.LookupVLANRequest) (*pb.VLANResponse, error) {
	vid, err := vlanIDFromPB("lookup vlan", req.GetVlanId())
	if err != nil {
		return nil, err
	}
	info, err := s.mgr.LookupVLAN(nas.SwitchID(req.GetSwitchId()), vid)
	if err != nil {
		return nil, err
	}
	return &pb.VLANResponse{Vlan: vlanToPB(info)}, nil
}

func (s *Server) ListVLANs(context.Context, *pb.ListVLANsRequest) (*pb.ListVLANsResponse, error) {
	resp := &pb.ListVLANsResponse{}
	for _, info := range s.mgr.ListVLANs() {
		resp.Vlans = append(resp.Vlans, vlanToPB(info))
	}
	return resp, nil
}

func (s *Server) ListInterfaces(context.Context, *pb.ListInterfacesRequest) (*pb.ListInterfacesResponse, error) {
	resp := &pb.ListInterfacesResponse{}
	for _, intf := range s.mgr.Interfaces() {
		resp.Interfaces = append(resp.Interfaces, interfaceToPB(intf))
	}
	return resp, nil
}
