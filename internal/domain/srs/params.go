package srs

import (
	"fmt"

	"github.com/phrazzld/scry-deck/internal/domain"
)

// Fixed SM-2 rules. Only the ease factors in Params can be tuned.
const (
	// EaseFactorFloor is the lowest ease factor any card may have.
	EaseFactorFloor = 1.3

	// PassingQuality is the lowest rating that counts as a successful recall.
	PassingQuality domain.Quality = 3

	firstInterval   = 1
	secondInterval  = 6
	failureInterval = 1
)

// Params defines the tunable parameters for the SM-2 algorithm
type Params struct {
	// Ease factor floor, applied after every successful review.
	// Never below EaseFactorFloor.
	MinEaseFactor float64

	// Ease factor given to cards added by an import
	InitialEaseFactor float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the default.
type ParamsConfig struct {
	MinEaseFactor     float64
	InitialEaseFactor float64
}

// NewDefaultParams creates a new Params instance with the classic SM-2 values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:     EaseFactorFloor,
		InitialEaseFactor: domain.DefaultEaseFactor,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) (*Params, error) {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.InitialEaseFactor > 0 {
		params.InitialEaseFactor = config.InitialEaseFactor
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// Validate checks that the parameters keep the ease factor at or above
// EaseFactorFloor and that new cards start at or above the configured floor.
func (p *Params) Validate() error {
	if p.MinEaseFactor < EaseFactorFloor {
		return fmt.Errorf("%w: min ease factor must be at least %.1f, got %.2f",
			domain.ErrValidation, EaseFactorFloor, p.MinEaseFactor)
	}
	if p.InitialEaseFactor < p.MinEaseFactor {
		return fmt.Errorf("%w: initial ease factor %.2f is below the minimum %.2f",
			domain.ErrValidation, p.InitialEaseFactor, p.MinEaseFactor)
	}
	return nil
}
