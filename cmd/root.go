package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fsdither <input_path> <output_path>",
	Short: "Dither an image to black and white with Floyd–Steinberg error diffusion",
	Long: `fsdither — reduces every color channel of an image to 0 or 255 and
spreads the rounding error over neighboring pixels so tones survive as dot
density.

The input may be PNG, JPEG, GIF, BMP, TIFF or WebP. The output format follows
the output file extension: png, jpg/jpeg, gif, bmp, tif/tiff, and webp/avif
when cwebp/avifenc are installed. Alpha is dropped.`,
	Version:       version,
	Args:          cobra.ExactArgs(2),
	RunE:          runDither,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"fsdither %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[fsdither] "+format+"\n", args...)
	}
}
