package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchkit/pkg/errors"
	"github.com/matzehuels/sketchkit/pkg/scene"
)

// anchorsCommand creates the anchors command.
func (c *CLI) anchorsCommand() *cobra.Command {
	var flags evalFlags
	var only []string

	cmd := &cobra.Command{
		Use:   "anchors <scene.toml>",
		Short: "Print the anchor points of every shape in a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.evaluateFile(cmd.Context(), args[0], flags.options(cmd))
			if err != nil {
				return err
			}
			shapes, err := selectShapes(out.Result, only)
			if err != nil {
				return err
			}
			for _, s := range shapes {
				fmt.Println(StyleTitle.Render(s.ID) + " " + StyleDim.Render(s.Kind))
				fmt.Println(anchorTable(s, out.Result.Unit))
			}
			printStats(out.Stats.ShapeCount, out.Stats.ArrowCount, out.CacheHit)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&only, "shape", "s", nil, "only print these shape ids (comma-separated)")
	flags.register(cmd)
	return cmd
}

// selectShapes returns the shapes named in ids, in scene order, or every
// shape when ids is empty.
func selectShapes(res *scene.Result, ids []string) ([]scene.ShapeResult, error) {
	if len(ids) == 0 {
		return res.Shapes, nil
	}
	for _, id := range ids {
		if _, ok := res.Shape(id); !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "no shape %q in scene", id)
		}
	}
	var out []scene.ShapeResult
	for _, s := range res.Shapes {
		if slices.Contains(ids, s.ID) {
			out = append(out, s)
		}
	}
	return out, nil
}
