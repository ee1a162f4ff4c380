package pipeline

import (
	"fmt"

	"github.com/AnyUserName/fsdither/internal/dither"
	"github.com/AnyUserName/fsdither/internal/encoder"
	"github.com/AnyUserName/fsdither/internal/hasher"
	"github.com/AnyUserName/fsdither/internal/imageio"
	"github.com/AnyUserName/fsdither/internal/report"
)

// processResult holds the result of processing the input image.
type processResult struct {
	report *report.Report
}

// process handles the input image: decode, dither, encode, write.
func process(cfg Config, reg *encoder.Registry, logf func(string, ...any)) (processResult, error) {
	var result processResult

	buf, src, err := imageio.Decode(cfg.InputPath)
	if err != nil {
		return result, fmt.Errorf("input: %w", err)
	}
	logf("decoded %s: %s %dx%d", cfg.InputPath, src.Format, buf.Width, buf.Height)
	if src.HasAlpha {
		logf("warning: %s has transparency; alpha is dropped", cfg.InputPath)
	}

	r := &report.Report{
		Input: report.ImageInfo{
			Path:     cfg.InputPath,
			Format:   src.Format,
			Width:    buf.Width,
			Height:   buf.Height,
			Size:     src.Size,
			HasAlpha: src.HasAlpha,
			AvgColor: report.AvgColor(buf),
		},
		Overflow: dither.Saturate,
	}

	r.Dither = dither.Dither(buf)
	if r.Dither.Overflows > 0 {
		logf("%d diffusions left [0,255] (%s)", r.Dither.Overflows, r.Overflow)
	}

	data, format, err := imageio.Encode(reg, buf.ToNRGBA(), cfg.OutputPath)
	if err != nil {
		return result, fmt.Errorf("output: %w", err)
	}
	if err := imageio.WriteFile(cfg.OutputPath, data); err != nil {
		return result, fmt.Errorf("output: %w", err)
	}

	r.Digest = hasher.Digest(data)
	r.Output = report.ImageInfo{
		Path:     cfg.OutputPath,
		Format:   format,
		Width:    buf.Width,
		Height:   buf.Height,
		Size:     int64(len(data)),
		AvgColor: report.AvgColor(buf),
	}
	logf("wrote %s (%s, %d bytes, digest %s)", cfg.OutputPath, format, len(data), r.Digest)

	result.report = r
	return result, nil
}
