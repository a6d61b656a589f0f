// Package client provides one interface over the VLAN service.
//
// Use Dial to talk to a running nas daemon:
//
//	c, err := client.Dial(client.DefaultSocketPath())
//	c, err := client.Dial("localhost:50051")
//
// Use Open to run the service in-process against the local store and
// a simulated driver. Open replays and mutates the store, so it takes
// the writer lock scope of the runtime tree:
//
//	err := lock.Run(ctx, dirs.Lock(), func(ctx context.Context, scope lock.WriterScope) error {
//		c, err := client.Open(ctx, scope, client.WithConfig(cfg))
//		...
//	})
//
// Both return a Client that can be used identically.
package client

import (
	"context"
	"io"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/ifmap"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/vlan"
)

// Client is the transport-agnostic VLAN API. Errors keep their
// classification across the wire: errors.Is matches nas.ErrInvalidParameter
// and friends, and store.ErrNotFound for unknown objects.
type Client interface {
	io.Closer

	Switches(ctx context.Context) ([]manager.SwitchInfo, error)
	Interfaces(ctx context.Context) ([]ifmap.Interface, error)

	CreateVLAN(ctx context.Context, spec manager.VLANSpec) (vlan.Info, error)
	ModifyVLAN(ctx context.Context, id nas.ObjID, upd manager.VLANUpdate) (vlan.Info, error)
	DeleteVLAN(ctx context.Context, id nas.ObjID) error
	GetVLAN(ctx context.Context, id nas.ObjID) (vlan.Info, error)
	LookupVLAN(ctx context.Context, sw nas.SwitchID, vlanID uint16) (vlan.Info, error)
	ListVLANs(ctx context.Context) ([]vlan.Info, error)
}
