package server_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/config"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/lock"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/ndi/sim"
	"github.com/frobware/go-nas/server"
	"github.com/frobware/go-nas/server/pb"
	"github.com/frobware/go-nas/store/sqlite"
)

// testLogger discards output unless NAS_TEST_VERBOSE is set.
func testLogger() *slog.Logger {
	if os.Getenv("NAS_TEST_VERBOSE") != "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testTopology = config.Topology{
	{ID: 0, NPUs: []nas.NpuID{0, 1}},
}

type testFixture struct {
	Server  *server.Server
	Manager *manager.Manager
	Driver  *sim.Driver
	Client  pb.VLANServiceClient
	Conn    *grpc.ClientConn
}

// testInterfaces registers e0 and e1 on ports 1 and 2 of npu 0.
func testInterfaces(t *testing.T) *ifmap.Registry {
	t.Helper()
	reg := ifmap.New()
	require.NoError(t, reg.Register(ifmap.Interface{Name: "e0", Type: ifmap.TypePort, IfIndex: 10, Port: &ifmap.PortAddr{NPU: 0, Port: 1}}))
	require.NoError(t, reg.Register(ifmap.Interface{Name: "e1", Type: ifmap.TypePort, IfIndex: 11, Port: &ifmap.PortAddr{NPU: 0, Port: 2}}))
	require.NoError(t, reg.Register(ifmap.Interface{Name: "bond0", Type: ifmap.TypeLAG, LagID: 7}))
	return reg
}

// holdWriterLock takes a writer lock in a temp dir and holds it until
// the test ends, as the daemon does for its lifetime.
func holdWriterLock(t *testing.T) lock.WriterScope {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".lock")
	scopes := make(chan lock.WriterScope)
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- lock.Run(context.Background(), path, func(_ context.Context, scope lock.WriterScope) error {
			scopes <- scope
			<-release
			return nil
		})
	}()
	select {
	case scope := <-scopes:
		t.Cleanup(func() {
			close(release)
			require.NoError(t, <-done)
		})
		return scope
	case err := <-done:
		t.Fatalf("failed to take writer lock: %v", err)
		return nil
	}
}

func newManager(t *testing.T, driver *sim.Driver, scope lock.WriterScope) *manager.Manager {
	t.Helper()
	ctx := context.Background()
	st, err := sqlite.NewInMemory(ctx, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	mgr, err := manager.New(testTopology, st, driver, testLogger(), manager.WithInterfaces(testInterfaces(t)))
	require.NoError(t, err)
	require.NoError(t, mgr.Restore(ctx, scope))
	return mgr
}

// newTestFixture serves the VLAN service over an in-process bufconn
// listener.
func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	driver := sim.New()
	scope := holdWriterLock(t)
	mgr := newManager(t, driver, scope)
	return serve(t, server.New(mgr, scope, testLogger()), mgr, driver)
}

func serve(t *testing.T, srv *server.Server, mgr *manager.Manager, driver *sim.Driver) *testFixture {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	gs, _ := srv.NewGRPCServer()
	go gs.Serve(lis)
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &testFixture{
		Server:  srv,
		Manager: mgr,
		Driver:  driver,
		Client:  pb.NewVLANServiceClient(conn),
		Conn:    conn,
	}
}
