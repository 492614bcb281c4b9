// Package normalizer turns the raw campaign table into the three derived tables.
package normalizer

import (
	"fmt"

	"campaignetl/internal/models"
)

// Processor validates a raw table and then transforms it.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a processor dating contacts in assumedYear.
func NewProcessor(assumedYear int) *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(assumedYear),
	}
}

// Process transforms the raw table into normalized tables.
func (p *Processor) Process(tbl *models.Table) (*models.Tables, error) {
	if err := p.validator.Validate(tbl); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tables, err := p.transformer.Transform(tbl)
	if err != nil {
		return nil, fmt.Errorf("transformation failed: %w", err)
	}

	return tables, nil
}
