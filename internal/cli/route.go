package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchkit/pkg/core/arrow"
	"github.com/matzehuels/sketchkit/pkg/core/path"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

// routeOpts holds the flags of a one-off route.
type routeOpts struct {
	from   string
	to     string
	kind   string
	offset float64
}

// routeCommand creates the route command. With a scene it prints every
// arrow; with --from and --to it draws a single route.
func (c *CLI) routeCommand() *cobra.Command {
	var flags evalFlags
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route [scene.toml]",
		Short: "Print arrow paths of a scene, or draw one route between two points",
		Example: `  sketchkit route loop.toml
  sketchkit route --from 0,0 --to 100,50 --kind vhv --offset 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				shift := arrow.Shift
				if o := flags.options(cmd); o.Shift != nil {
					shift = *o.Shift
				}
				p, err := opts.build(shift)
				if err != nil {
					return err
				}
				printKeyValue("route", opts.kind)
				printKeyValue("end", formatVector(p.End()))
				fmt.Println(StyleNumber.Render(p.String()))
				return nil
			}
			if opts.from != "" || opts.to != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--from/--to cannot be combined with a scene file")
			}

			out, err := c.evaluateFile(cmd.Context(), args[0], flags.options(cmd))
			if err != nil {
				return err
			}
			if len(out.Result.Arrows) == 0 {
				printInfo("Scene has no arrows")
			} else {
				fmt.Println(arrowTable(out.Result.Arrows))
			}
			printStats(out.Stats.ShapeCount, out.Stats.ArrowCount, out.CacheHit)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start point x,y in px")
	cmd.Flags().StringVar(&opts.to, "to", "", "end point x,y in px")
	cmd.Flags().StringVar(&opts.kind, "kind", string(arrow.RouteStraight), "route: straight, vh, hv, vhv, hvh")
	cmd.Flags().Float64Var(&opts.offset, "offset", 0, "elbow hop of vhv and hvh routes")
	flags.register(cmd)
	return cmd
}

// build draws the one-off route described by the flags.
func (o routeOpts) build(shift vec.Scalar) (path.Path, error) {
	if o.from == "" || o.to == "" {
		return path.Path{}, errors.New(errors.ErrCodeInvalidInput, "need a scene file or both --from and --to")
	}
	start, err := parsePoint(o.from)
	if err != nil {
		return path.Path{}, err
	}
	end, err := parsePoint(o.to)
	if err != nil {
		return path.Path{}, err
	}
	r, err := arrow.ParseRoute(o.kind)
	if err != nil {
		return path.Path{}, err
	}
	if shift < 0 {
		return path.Path{}, errors.New(errors.ErrCodeInvalidInput, "--shift must not be negative")
	}
	return r.Build(start, end, o.offset, shift), nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (vec.Vector2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return vec.Zero, errors.New(errors.ErrCodeInvalidInput, "point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return vec.Zero, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return vec.Zero, errors.Wrap(errors.ErrCodeInvalidInput, err, "point %q", s)
	}
	return vec.XY(x, y), nil
}

func formatVector(v vec.Vector2) string {
	return formatScalar(v.X) + "," + formatScalar(v.Y)
}
