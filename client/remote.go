package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/server"
	"github.com/frobware/go-nas/server/pb"
	"github.com/frobware/go-nas/store"
	"github.com/frobware/go-nas/vlan"
)

// remoteClient implements Client over gRPC.
type remoteClient struct {
	client pb.VLANServiceClient
	conn   *grpc.ClientConn
	logger *slog.Logger
}

func newRemote(address string, logger *slog.Logger) (Client, error) {
	target := parseAddress(address)

	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", target, err)
	}
	return newRemoteConn(conn, logger), nil
}

func newRemoteConn(conn *grpc.ClientConn, logger *slog.Logger) *remoteClient {
	return &remoteClient{
		client: pb.NewVLANServiceClient(conn),
		conn:   conn,
		logger: logger,
	}
}

// parseAddress normalises an address for gRPC. Absolute paths are
// Unix sockets; anything else is passed through.
func parseAddress(address string) string {
	if strings.HasPrefix(address, "unix://") {
		return address
	}
	if strings.HasPrefix(address, "/") {
		return "unix://" + address
	}
	return address
}

// outgoing forwards the caller's transaction id so daemon logs
// correlate with the client's.
func outgoing(ctx context.Context) context.Context {
	if txn := logging.TxnIDFromContext(ctx); txn != "" {
		return metadata.AppendToOutgoingContext(ctx, server.TxnMetadataKey, txn)
	}
	return ctx
}

func (c *remoteClient) Close() error {
	return c.conn.Close()
}

func (c *remoteClient) Switches(ctx context.Context) ([]manager.SwitchInfo, error) {
	resp, err := c.client.ListSwitches(outgoing(ctx), &pb.ListSwitchesRequest{})
	if err != nil {
		return nil, translateGRPCError(err)
	}
	out := make([]manager.SwitchInfo, 0, len(resp.GetSwitches()))
	for _, sw := range resp.GetSwitches() {
		out = append(out, switchFromPB(sw))
	}
	return out, nil
}

func (c *remoteClient) Interfaces(ctx context.Context) ([]ifmap.Interface, error) {
	resp, err := c.client.ListInterfaces(outgoing(ctx), &pb.ListInterfacesRequest{})
	if err != nil {
		return nil, translateGRPCError(err)
	}
	out := make([]ifmap.Interface, 0, len(resp.GetInterfaces()))
	for _, in := range resp.GetInterfaces() {
		intf, err := interfaceFromPB(in)
		if err != nil {
			return nil, fmt.Errorf("interface %s: %w", in.GetName(), err)
		}
		out = append(out, intf)
	}
	return out, nil
}

func (c *remoteClient) CreateVLAN(ctx context.Context, spec manager.VLANSpec) (vlan.Info, error) {
	resp, err := c.client.CreateVLAN(outgoing(ctx), specToPB(spec))
	if err != nil {
		return vlan.Info{}, translateGRPCError(err)
	}
	return vlanFromPB(resp.GetVlan()), nil
}

func (c *remoteClient) ModifyVLAN(ctx context.Context, id nas.ObjID, upd manager.VLANUpdate) (vlan.Info, error) {
	resp, err := c.client.ModifyVLAN(outgoing(ctx), updateToPB(id, upd))
	if err != nil {
		return vlan.Info{}, translateGRPCError(err)
	}
	return vlanFromPB(resp.GetVlan()), nil
}

func (c *remoteClient) DeleteVLAN(ctx context.Context, id nas.ObjID) error {
	_, err := c.client.DeleteVLAN(outgoing(ctx), &pb.DeleteVLANRequest{ObjId: uint64(id)})
	return translateGRPCError(err)
}

func (c *remoteClient) GetVLAN(ctx context.Context, id nas.ObjID) (vlan.Info, error) {
	resp, err := c.client.GetVLAN(outgoing(ctx), &pb.GetVLANRequest{ObjId: uint64(id)})
	if err != nil {
		return vlan.Info{}, translateGRPCError(err)
	}
	return vlanFromPB(resp.GetVlan()), nil
}

func (c *remoteClient) LookupVLAN(ctx context.Context, sw nas.SwitchID, vlanID uint16) (vlan.Info, error) {
	resp, err := c.client.LookupVLAN(outgoing(ctx), &pb.LookupVLANRequest{SwitchId: uint32(sw), VlanId: uint32(vlanID)})
	if err != nil {
		return vlan.Info{}, translateGRPCError(err)
	}
	return vlanFromPB(resp.GetVlan()), nil
}

func (c *remoteClient) ListVLANs(ctx context.Context) ([]vlan.Info, error) {
	resp, err := c.client.ListVLANs(outgoing(ctx), &pb.ListVLANsRequest{})
	if err != nil {
		return nil, translateGRPCError(err)
	}
	out := make([]vlan.Info, 0, len(resp.GetVlans()))
	for _, v := range resp.GetVlans() {
		out = append(out, vlanFromPB(v))
	}
	return out, nil
}

// translateGRPCError restores the error classification the server
// mapped onto a status code.
func translateGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var code nas.Code
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", st.Message(), store.ErrNotFound)
	case codes.InvalidArgument:
		code = nas.CodeInvalidParameter
	case codes.FailedPrecondition:
		code = nas.CodeInvalidState
	case codes.ResourceExhausted:
		code = nas.CodeExhausted
	case codes.Unimplemented:
		code = nas.CodeUnsupported
	case codes.Aborted:
		code = nas.CodeHardwareFailure
	default:
		return err
	}
	return &nas.Error{Code: code, Op: "remote", Err: errors.New(st.Message())}
}
