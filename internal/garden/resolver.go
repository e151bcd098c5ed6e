package garden

import (
	"errors"
	"fmt"
)

// Resolution errors.
var (
	ErrUnknownSeason = errors.New("unknown season")
	ErrUnknownPlant  = errors.New("unknown plant type")
)

// ParseResult holds the outcome of resolving one pair of raw inputs.
// An empty Season or Plant means the field was absent or invalid.
// Errors are in season-then-plant order.
type ParseResult struct {
	Season string
	Plant  string
	Errors []error
}

// Resolver maps raw season and plant text to canonical keys.
type Resolver struct {
	seasonAliases map[string]string
	plantAliases  map[string]string
}

// NewResolver creates a resolver backed by the default alias tables.
func NewResolver() *Resolver {
	return &Resolver{
		seasonAliases: SeasonAliases,
		plantAliases:  PlantAliases,
	}
}

// ResolveSeason normalizes raw text and looks it up in the season alias
// table. Unrecognized text yields ErrUnknownSeason wrapped with the raw
// text and the accepted vocabulary.
func (r *Resolver) ResolveSeason(raw string) (string, error) {
	key, ok := r.seasonAliases[Normalize(raw)]
	if !ok {
		return "", fmt.Errorf("%w: %q (try spring, summer, autumn/fall, or winter)", ErrUnknownSeason, raw)
	}

	return key, nil
}

// ResolvePlant normalizes raw text and looks it up in the plant alias
// table. Unrecognized text yields ErrUnknownPlant wrapped with the raw
// text and the accepted vocabulary.
func (r *Resolver) ResolvePlant(raw string) (string, error) {
	key, ok := r.plantAliases[Normalize(raw)]
	if !ok {
		return "", fmt.Errorf("%w: %q (try flower or vegetable)", ErrUnknownPlant, raw)
	}

	return key, nil
}

// Resolve validates both fields independently. A nil field is absent
// and simply skipped. Errors accumulate rather than short-circuiting,
// so both problems can be reported in one pass.
func (r *Resolver) Resolve(rawSeason, rawPlant *string) ParseResult {
	var result ParseResult

	if rawSeason != nil {
		key, err := r.ResolveSeason(*rawSeason)
		if err != nil {
			result.Errors = append(result.Errors, err)
		} else {
			result.Season = key
		}
	}

	if rawPlant != nil {
		key, err := r.ResolvePlant(*rawPlant)
		if err != nil {
			result.Errors = append(result.Errors, err)
		} else {
			result.Plant = key
		}
	}

	return result
}
