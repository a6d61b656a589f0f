package cli

import (
	"context"

	"github.com/frobware/go-nas/client"
)

// SwitchCmd groups switch subcommands.
type SwitchCmd struct {
	List SwitchListCmd `cmd:"" default:"withargs" help:"List switches and their NPUs."`
}

// SwitchListCmd lists the configured switches.
type SwitchListCmd struct {
	OutputFlags
}

func (c *SwitchListCmd) Run(cli *CLI, ctx context.Context) error {
	var output string
	if err := cli.RunWithLock(ctx, func(ctx context.Context, cl client.Client) error {
		switches, err := cl.Switches(ctx)
		if err != nil {
			return err
		}
		output, err = FormatSwitches(switches, &c.OutputFlags)
		return err
	}); err != nil {
		return err
	}
	return cli.PrintOut(output)
}
