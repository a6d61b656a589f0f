package cli

import (
	"context"
	"strconv"

	"github.com/frobware/go-nas/client"
	"github.com/frobware/go-nas/ifmap"
)

// memberResolver turns --member tokens into port numbers. A number is
// a port; anything else names a registered interface bound to a port.
// The registry is fetched once, on the first name.
type memberResolver struct {
	cl  client.Client
	reg *ifmap.Registry
}

func newMemberResolver(cl client.Client) *memberResolver {
	return &memberResolver{cl: cl}
}

func (r *memberResolver) ports(ctx context.Context, tokens []string) ([]uint32, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]uint32, 0, len(tokens))
	for _, tok := range tokens {
		port, err := r.port(ctx, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, port)
	}
	return out, nil
}

func (r *memberResolver) port(ctx context.Context, tok string) (uint32, error) {
	if n, err := strconv.ParseUint(tok, 10, 32); err == nil {
		return uint32(n), nil
	}
	if r.reg == nil {
		intfs, err := r.cl.Interfaces(ctx)
		if err != nil {
			return 0, err
		}
		reg := ifmap.New()
		for _, intf := range intfs {
			if err := reg.Register(intf); err != nil {
				return 0, err
			}
		}
		r.reg = reg
	}
	addr, err := r.reg.PortOn(tok)
	if err != nil {
		return 0, err
	}
	return addr.Port, nil
}
