// Package pipeline runs one batch: load archives, normalize, write tables.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"campaignetl/internal/config"
	"campaignetl/internal/loader"
	"campaignetl/internal/logger"
	"campaignetl/internal/normalizer"
	"campaignetl/internal/writer"
)

// Result summarizes a successful run.
type Result struct {
	StartedAt time.Time
	RunID     string
	InputDir  string
	OutputDir string
	Files     []writer.FileResult
	Archives  int
	RawRows   int
	Duration  time.Duration
}

// Pipeline runs batches for one configuration.
type Pipeline struct {
	cfg       *config.Config
	log       *logger.Logger
	processor *normalizer.Processor
}

// New validates cfg and builds a pipeline logging under a fresh run id.
func New(cfg *config.Config, log *logger.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Pipeline{
		cfg:       cfg,
		log:       log,
		processor: normalizer.NewProcessor(cfg.Pipeline.AssumedYear),
	}, nil
}

// Run executes the batch once. Any error is fatal and leaves the output
// directory in an undefined state.
func (p *Pipeline) Run() (*Result, error) {
	res := &Result{
		StartedAt: time.Now(),
		RunID:     uuid.NewString(),
		InputDir:  p.cfg.Pipeline.InputDir,
		OutputDir: p.cfg.Pipeline.OutputDir,
	}
	log := p.log.With("run_id", res.RunID)
	ld := loader.NewLoader(p.cfg.Pipeline.ArchivePattern, log)

	log.Info("Phase 1: Loading archives", "input_dir", res.InputDir, "pattern", p.cfg.Pipeline.ArchivePattern)

	raw, archives, err := ld.Load(res.InputDir)
	if err != nil {
		return nil, err
	}

	res.Archives = len(archives)
	res.RawRows = raw.Len()
	log.Info("Loaded", "archives", res.Archives, "rows", res.RawRows, "elapsed", time.Since(res.StartedAt))

	log.Info("Phase 2: Normalizing", "assumed_year", p.cfg.Pipeline.AssumedYear)

	tables, err := p.processor.Process(raw)
	if err != nil {
		return nil, err
	}

	log.Info("Phase 3: Writing tables", "output_dir", res.OutputDir)

	files, err := writer.NewWriter(log).Write(res.OutputDir, tables)
	if err != nil {
		return nil, err
	}

	res.Files = files
	res.Duration = time.Since(res.StartedAt)
	log.Info("Run complete", "duration", res.Duration)

	return res, nil
}

// Run builds a pipeline for cfg and executes it once.
func Run(cfg *config.Config, log *logger.Logger) (*Result, error) {
	p, err := New(cfg, log)
	if err != nil {
		return nil, err
	}

	return p.Run()
}
