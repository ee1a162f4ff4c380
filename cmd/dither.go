package cmd

import (
	"fmt"

	"github.com/AnyUserName/fsdither/internal/pipeline"
	"github.com/spf13/cobra"
)

func runDither(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	logVerbose("input:  %s", inputPath)
	logVerbose("output: %s", outputPath)

	p := pipeline.New(pipeline.Config{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Verbose:    verbose,
		Logf:       logVerbose,
	})

	r, err := p.Run()
	if err != nil {
		return fmt.Errorf("dither %s: %w", inputPath, err)
	}

	if verbose {
		r.Print(cmd.ErrOrStderr())
	}
	return nil
}
