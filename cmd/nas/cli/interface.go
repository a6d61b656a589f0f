package cli

import (
	"context"

	"github.com/frobware/go-nas/client"
	"github.com/frobware/go-nas/ifmap"
)

// IntfCmd groups interface registry subcommands.
type IntfCmd struct {
	List IntfListCmd `cmd:"" default:"withargs" help:"List registered interfaces."`
}

// IntfListCmd lists the interface registry.
type IntfListCmd struct {
	OutputFlags
}

func (c *IntfListCmd) Run(cli *CLI, ctx context.Context) error {
	var intfs []ifmap.Interface
	if err := cli.RunWithLock(ctx, func(ctx context.Context, cl client.Client) error {
		var err error
		intfs, err = cl.Interfaces(ctx)
		return err
	}); err != nil {
		return err
	}
	if len(intfs) == 0 && c.Output != OutputFormatJSON {
		return cli.PrintOut("No interfaces registered\n")
	}
	output, err := FormatInterfaces(intfs, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}
