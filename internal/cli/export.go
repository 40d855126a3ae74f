package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/sketchkit/pkg/io"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var flags evalFlags
	var output string

	cmd := &cobra.Command{
		Use:   "export <scene.toml>",
		Short: "Evaluate a scene and write the result as JSON",
		Long: `Evaluate a scene and write shapes, anchors, arrow routes and document
elements as JSON. Use -o - to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.evaluateFile(cmd.Context(), args[0], flags.options(cmd))
			if err != nil {
				return err
			}

			if output == "-" {
				return pkgio.WriteJSON(out.Result, os.Stdout)
			}
			dst := outputPath(output, args[0])
			if err := pkgio.ExportJSON(out.Result, dst); err != nil {
				return err
			}
			printSuccess("Exported %d shapes, %d arrows", out.Stats.ShapeCount, out.Stats.ArrowCount)
			printFile(dst)
			printStats(out.Stats.ShapeCount, out.Stats.ArrowCount, out.CacheHit)
			printNextStep("Inspect anchors", appName+" anchors "+args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: scene name with .json)")
	flags.register(cmd)
	return cmd
}

// outputPath derives the export path: output if set, otherwise the input
// with its extension replaced by .json.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
}
