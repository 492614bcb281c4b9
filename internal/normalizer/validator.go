package normalizer

import (
	"errors"
	"fmt"

	"campaignetl/internal/models"
)

// ErrTransform is the root of every transformation failure.
var ErrTransform = errors.New("transform failed")

// Transformation errors.
var (
	ErrNilTable      = fmt.Errorf("%w: no input table", ErrTransform)
	ErrMissingColumn = fmt.Errorf("%w: missing column", ErrTransform)
	ErrInvalidDay    = fmt.Errorf("%w: invalid day", ErrTransform)
	ErrInvalidDate   = fmt.Errorf("%w: invalid date", ErrTransform)
)

// Validator checks that a raw table carries every column the transformer reads.
type Validator struct {
	required []string
}

// NewValidator creates a validator requiring the full raw column set.
func NewValidator() *Validator {
	return &Validator{required: models.RawColumns}
}

// Validate returns ErrMissingColumn naming the first absent column.
func (v *Validator) Validate(tbl *models.Table) error {
	if tbl == nil {
		return ErrNilTable
	}

	for _, col := range v.required {
		if !tbl.HasColumn(col) {
			return fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	return nil
}
