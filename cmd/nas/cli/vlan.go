package cli

import (
	"context"
	"fmt"

	"github.com/frobware/go-nas"
	"github.com/frobware/go-nas/client"
	"github.com/frobware/go-nas/manager"
	"github.com/frobware/go-nas/vlan"
)

// VLANCmd groups VLAN subcommands.
type VLANCmd struct {
	Create VLANCreateCmd `cmd:"" help:"Create a VLAN on every NPU of its switch, or on --npu."`
	Set    VLANSetCmd    `cmd:"" help:"Modify a VLAN. Any failure restores the previous state."`
	Delete VLANDeleteCmd `cmd:"" help:"Delete a VLAN."`
	Get    VLANGetCmd    `cmd:"" help:"Show one VLAN."`
	List   VLANListCmd   `cmd:"" default:"withargs" help:"List VLANs."`
}

// VLANCreateCmd creates a VLAN.
type VLANCreateCmd struct {
	OutputFlags
	VlanID           uint16       `arg:"" name:"vlan-id" help:"VLAN id (1-4094)."`
	Switch           nas.SwitchID `name:"switch" short:"s" help:"Owning switch." default:"0"`
	MTU              uint32       `name:"mtu" help:"MTU (68-9216)." default:"1500"`
	LearningDisabled bool         `name:"no-learning" help:"Disable MAC learning."`
	Members          []string     `name:"member" help:"Member port number or interface name (can be repeated or comma separated)."`
	NPUs             []nas.NpuID  `name:"npu" help:"Program only these NPUs instead of following the switch."`
}

func (c *VLANCreateCmd) Run(cli *CLI, ctx context.Context) error {
	var info vlan.Info
	if err := cli.RunWithLock(ctx, func(ctx context.Context, cl client.Client) error {
		members, err := newMemberResolver(cl).ports(ctx, c.Members)
		if err != nil {
			return err
		}
		info, err = cl.CreateVLAN(ctx, manager.VLANSpec{
			SwitchID:         c.Switch,
			VlanID:           c.VlanID,
			MTU:              c.MTU,
			LearningDisabled: c.LearningDisabled,
			Members:          members,
			NPUs:             c.NPUs,
		})
		return err
	}); err != nil {
		return err
	}
	output, err := FormatVLAN(info, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}

// VLANSetCmd modifies a VLAN.
type VLANSetCmd struct {
	OutputFlags
	ObjID         nas.ObjID   `arg:"" name:"object-id" help:"Object id of the VLAN."`
	MTU           uint32      `name:"mtu" help:"New MTU (68-9216)."`
	Learning      string      `name:"learning" help:"MAC learning: on or off."`
	Members       []string    `name:"members" help:"Replace the member list with these ports or interfaces." xor:"members"`
	ClearMembers  bool        `name:"clear-members" help:"Remove every member port." xor:"members"`
	AddMembers    []string    `name:"add-member" help:"Add a member port or interface (can be repeated)."`
	RemoveMembers []string    `name:"remove-member" help:"Remove a member port or interface (can be repeated)."`
	NPUs          []nas.NpuID `name:"npu" help:"Replace the NPU list." xor:"npus"`
	FollowSwitch  bool        `name:"follow-switch" help:"Program every NPU of the switch again." xor:"npus"`
}

// Update translates the flags into a manager.VLANUpdate. Member names
// are resolved through cl, which is only consulted when a name is
// given.
func (c *VLANSetCmd) Update(ctx context.Context, cl client.Client) (manager.VLANUpdate, error) {
	var upd manager.VLANUpdate
	if c.MTU != 0 {
		upd.MTU = &c.MTU
	}
	switch c.Learning {
	case "on":
		disabled := false
		upd.LearningDisabled = &disabled
	case "off":
		disabled := true
		upd.LearningDisabled = &disabled
	case "":
	default:
		return upd, fmt.Errorf("--learning must be on or off, got %q", c.Learning)
	}
	r := newMemberResolver(cl)
	switch {
	case c.ClearMembers:
		upd.Members = &[]uint32{}
	case c.Members != nil:
		members, err := r.ports(ctx, c.Members)
		if err != nil {
			return upd, err
		}
		upd.Members = &members
	}
	var err error
	if upd.AddMembers, err = r.ports(ctx, c.AddMembers); err != nil {
		return upd, err
	}
	if upd.RemoveMembers, err = r.ports(ctx, c.RemoveMembers); err != nil {
		return upd, err
	}
	upd.NPUs = c.NPUs
	upd.FollowSwitch = c.FollowSwitch
	return upd, nil
}

func (c *VLANSetCmd) Run(cli *CLI, ctx context.Context) error {
	var info vlan.Info
	if err := cli.RunWithLock(ctx, func(ctx context.Context, cl client.Client) error {
		upd, err := c.Update(ctx, cl)
		if err != nil {
			return err
		}
		info, err = cl.ModifyVLAN(ctx, c.ObjID, upd)
		return err
	}); err != nil {
		return err
	}
	output, err := FormatVLAN(info, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}

// VLANDeleteCmd deletes a VLAN.
type VLANDeleteCmd struct {
	ObjID nas.ObjID `arg:"" name:"object-id" help:"Object id of the VLAN."`
}

func (c *VLANDeleteCmd) Run(cli *CLI, ctx context.Context) error {
	if err := cli.RunWithLock(ctx, func(ctx context.Context, cl client.Client) error {
		return cl.DeleteVLAN(ctx, c.ObjID)
	}); err != nil {
		return err
	}
	return cli.PrintOutf("Deleted VLAN object %d\n", c.ObjID)
}

// VLANGetCmd shows one VLAN by object id, or by --switch and
// --vlan-id.
type VLANGetCmd struct {
	OutputFlags
	ObjID  nas.ObjID    `arg:"" optional:"" name:"object-id" help:"Object id of the VLAN."`
	Switch nas.SwitchID `name:"switch" short:"s" help:"Switch for a lookup by VLAN id." default:"0"`
	VlanID uint16       `name:"vlan-id" help:"Look the VLAN up by VLAN id instead of object id."`
}

func (c *VLANGetCmd) Run(cli *CLI, ctx context.Context) error {
	if (c.ObjID == 0) == (c.VlanID == 0) {
		return fmt.Errorf("give exactly one of object-id or --vlan-id")
	}
	var info vlan.Info
	if err := cli.RunWithLock(ctx, func(ctx context.Context, cl client.Client) error {
		var err error
		if c.VlanID != 0 {
			info, err = cl.LookupVLAN(ctx, c.Switch, c.VlanID)
		} else {
			info, err = cl.GetVLAN(ctx, c.ObjID)
		}
		return err
	}); err != nil {
		return err
	}
	output, err := FormatVLAN(info, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}

// VLANListCmd lists every VLAN.
type VLANListCmd struct {
	OutputFlags
}

func (c *VLANListCmd) Run(cli *CLI, ctx context.Context) error {
	var infos []vlan.Info
	if err := cli.RunWithLock(ctx, func(ctx context.Context, cl client.Client) error {
		var err error
		infos, err = cl.ListVLANs(ctx)
		return err
	}); err != nil {
		return err
	}
	if len(infos) == 0 && c.Output != OutputFormatJSON {
		return cli.PrintOut("No VLANs found\n")
	}
	output, err := FormatVLANList(infos, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}
