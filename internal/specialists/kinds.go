// Package specialists defines the closed catalog of prompt-optimization
// specialists. Each specialist carries a routing description, an evaluator
// framing, and a weighted scoring rubric used by the pipeline.
package specialists

import (
	"encoding/json"
	"slices"
)

// Kind identifies a specialist in the catalog.
type Kind string

// Valid specialist kinds.
const (
	KindCoding   Kind = "coding"
	KindCreative Kind = "creative"
	KindAnalyst  Kind = "analyst"
	KindGeneral  Kind = "general"
)

// DefaultKind is the specialist selected when classification cannot
// produce a confident match.
const DefaultKind = KindGeneral

var kinds = []Kind{
	KindCoding,
	KindCreative,
	KindAnalyst,
	KindGeneral,
}

// Kinds returns the list of valid specialist kinds in catalog order.
func Kinds() []Kind {
	return kinds
}

// UnmarshalJSON validates that the decoded string is a known kind value.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Kind(raw)
	if !slices.Contains(kinds, v) {
		return ErrInvalidKind
	}
	*k = v
	return nil
}

// ParseKind validates a string as a known specialist kind.
// Returns ErrInvalidKind if the value is not recognized.
func ParseKind(s string) (Kind, error) {
	v := Kind(s)
	if !slices.Contains(kinds, v) {
		return "", ErrInvalidKind
	}
	return v, nil
}
