package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/AnyUserName/fsdither/internal/encoder"
	"github.com/AnyUserName/fsdither/internal/imageio"
	"github.com/AnyUserName/fsdither/internal/report"
)

// Config holds all parameters for one run.
type Config struct {
	InputPath  string
	OutputPath string
	Verbose    bool

	// Logf receives diagnostics when Verbose is set. Nil discards them.
	Logf func(format string, args ...any)
}

// Pipeline decodes, dithers and encodes a single image.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose && p.cfg.Logf != nil {
		p.cfg.Logf(format, args...)
	}
}

// Run executes the pipeline. The output file is written only if every step
// succeeds. Returned errors wrap an *imageio.Error.
func (p *Pipeline) Run() (*report.Report, error) {
	start := time.Now()
	p.logf("encoders: %s", strings.Join(p.registry.Available(), ", "))

	// Reject an unusable output format before doing any work.
	if _, err := imageio.Select(p.registry, p.cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	res, err := process(p.cfg, p.registry, p.logf)
	if err != nil {
		return nil, err
	}
	res.report.Elapsed = time.Since(start)
	return res.report, nil
}
