package cli

import (
	"reflect"

	"github.com/alecthomas/kong"

	"github.com/frobware/go-nas/ndi/sim"
)

// faultMapper creates a Kong mapper for sim.Fault.
func faultMapper() kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("fault", &s); err != nil {
			return err
		}
		f, err := sim.ParseFault(s)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(f))
		return nil
	}
}
