package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/sketchkit/pkg/io"
	"github.com/matzehuels/sketchkit/pkg/pipeline"
)

// evalFlags are the pipeline flags shared by scene commands.
type evalFlags struct {
	shift   float64
	refresh bool
}

func (f *evalFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.shift, "shift", 0, "arrow trim distance in px (default: 0.75 of the marker glyph)")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

// options converts the flags. An unset --shift keeps the pipeline default.
func (f *evalFlags) options(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{Refresh: f.refresh}
	if cmd.Flags().Changed("shift") {
		shift := f.shift
		opts.Shift = &shift
	}
	return opts
}

// evaluateFile runs the scene file at path through the pipeline.
func (c *CLI) evaluateFile(ctx context.Context, path string, opts pipeline.Options) (*pipeline.Output, error) {
	logger := loggerFromContext(ctx)

	data, err := pkgio.ReadSource(path)
	if err != nil {
		return nil, err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return nil, err
	}
	defer runner.Cache.Close()

	name := filepath.Base(path)
	prog := newProgress(logger)
	opts.Logger = logger
	out, err := runner.Execute(ctx, pipeline.Source{Name: name, Data: data}, opts)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Evaluated %s", name))
	return out, nil
}
