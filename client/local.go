package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/grpc"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/config"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/logging"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/ndi/sim"
	"github.com/frobware/go-nas/server"
	"github.com/frobware/go-nas/store"
	"github.com/frobware/go-nas/store/sqlite"
	"github.com/frobware/go-nas/vlan"
)

// localClient runs the service in-process behind a private Unix
// socket, so local commands take the same gRPC path as remote ones.
type localClient struct {
	remote     Client
	store      store.Store
	grpcServer *grpc.Server
	tmpDir     string
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// Open restores the stored VLANs onto the driver and returns a
// client served in-process. Stored VLANs that cannot be replayed are
// logged and left in the store. Every mutation made through the
// client runs under scope, so the client must be closed before the
// lock is released.
//
// The returned client must be closed when no longer needed.
func Open(ctx context.Context, scope lock.WriterScope, opts ...Option) (Client, error) {
	if scope == nil {
		return nil, nas.Errorf(nas.CodeInvalidState, "open", "writer lock is not held")
	}
	o := &openOptions{
		logger: logging.Discard(),
		config: config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt.applyOpen(o)
	}
	if o.driver == nil {
		o.driver = sim.New(sim.WithLogger(o.logger))
	}
	return newLocal(ctx, scope, o)
}

func newLocal(ctx context.Context, scope lock.WriterScope, o *openOptions) (Client, error) {
	cfg := o.config
	dirs, err := cfg.RuntimeDirs()
	if err != nil {
		return nil, fmt.Errorf("runtime dirs: %w", err)
	}

	st, err := sqlite.New(ctx, cfg.StorePath(dirs), o.logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	ifaces, err := cfg.Interfaces.Registry(cfg.Switches)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("interfaces: %w", err)
	}
	mgrOpts := []manager.Option{manager.WithMaxIDs(cfg.Objects.MaxIDs), manager.WithInterfaces(ifaces)}
	if o.observer != nil {
		mgrOpts = append(mgrOpts, manager.WithObserver(o.observer))
	}
	mgr, err := manager.New(cfg.Switches, st, o.driver, o.logger, mgrOpts...)
	if err != nil {
		st.Close()
		return nil, err
	}
	if err := mgr.Restore(ctx, scope); err != nil {
		o.logger.WarnContext(ctx, "some stored vlans were not restored", "error", err)
	}

	tmpDir, err := os.MkdirTemp("", "nas-local-")
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("create socket directory: %w", err)
	}
	socketPath := filepath.Join(tmpDir, "nas.sock")
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		st.Close()
		os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("listen on socket %s: %w", socketPath, err)
	}

	grpcServer, _ := server.New(mgr, scope, o.logger).NewGRPCServer()
	c := &localClient{
		store:      st,
		grpcServer: grpcServer,
		tmpDir:     tmpDir,
		logger:     o.logger,
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := grpcServer.Serve(listener); err != nil {
			o.logger.Error("in-process server failed", "error", err)
		}
	}()

	remote, err := newRemote(socketPath, o.logger)
	if err != nil {
		c.shutdown()
		return nil, fmt.Errorf("connect to in-process server: %w", err)
	}
	c.remote = remote
	return c, nil
}

func (c *localClient) shutdown() error {
	c.grpcServer.GracefulStop()
	c.wg.Wait()
	err := c.store.Close()
	if rmErr := os.RemoveAll(c.tmpDir); rmErr != nil {
		c.logger.Warn("failed to remove socket directory", "path", c.tmpDir, "error", rmErr)
	}
	return err
}

// Close stops the in-process server and closes the store.
func (c *localClient) Close() error {
	if c.remote != nil {
		c.remote.Close()
	}
	return c.shutdown()
}

func (c *localClient) Switches(ctx context.Context) ([]manager.SwitchInfo, error) {
	return c.remote.Switches(ctx)
}

func (c *localClient) Interfaces(ctx context.Context) ([]ifmap.Interface, error) {
	return c.remote.Interfaces(ctx)
}

func (c *localClient) CreateVLAN(ctx context.Context, spec manager.VLANSpec) (vlan.Info, error) {
	return c.remote.CreateVLAN(ctx, spec)
}

func (c *localClient) ModifyVLAN(ctx context.Context, id nas.ObjID, upd manager.VLANUpdate) (vlan.Info, error) {
	return c.remote.ModifyVLAN(ctx, id, upd)
}

func (c *localClient) DeleteVLAN(ctx context.Context, id nas.ObjID) error {
	return c.remote.DeleteVLAN(ctx, id)
}

func (c *localClient) GetVLAN(ctx context.Context, id nas.ObjID) (vlan.Info, error) {
	return c.remote.GetVLAN(ctx, id)
}

func (c *localClient) LookupVLAN(ctx context.Context, sw nas.SwitchID, vlanID uint16) (vlan.Info, error) {
	return c.remote.LookupVLAN(ctx, sw, vlanID)
}

func (c *localClient) ListVLANs(ctx context.Context) ([]vlan.Info, error) {
	return c.remote.ListVLANs(ctx)
}
