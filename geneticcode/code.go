// Package geneticcode defines the genetic codes a codon can be read with.
//
// Each code is described by its differences with the universal code.
// Relevant documentation:
//
//    https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
//
package geneticcode

import (
	"fmt"
	"strings"

	"github.com/feliixx/gotranslate/aminoacid"
)

// Variant is a genetic code
type Variant int

const (
	// Universal is the standard genetic code. UGA is a stop codon
	Universal Variant = iota
	// Mitochondrial is the vertebrate mitochondrial code
	Mitochondrial
	// SECIS is the universal code with UGA recoded to selenocysteine,
	// as happens when a SECIS element is present in the mRNA
	SECIS
)

// release marks a codon forced to stop the translation
const release = '*'

var (
	// UGA is listed as a selenocysteine codon in the catalog, so
	// it has to be disabled explicitly
	universalDiff = map[string]byte{
		"UGA": release,
	}

	mitochondrialDiff = map[string]byte{
		"AGA": release,
		"AGG": release,
		"AUA": 'M',
		"UGA": 'W',
	}

	secisDiff = map[string]byte{
		"UGA": 'U',
	}

	variants = [...]Variant{Universal, Mitochondrial, SECIS}

	names = map[string]Variant{
		"universal":      Universal,
		"standard":       Universal,
		"1":              Universal,
		"mitochondrial":  Mitochondrial,
		"mito":           Mitochondrial,
		"2":              Mitochondrial,
		"secis":          SECIS,
		"selenocysteine": SECIS,
	}
)

// All returns all the supported genetic codes
func All() []Variant {
	all := make([]Variant, len(variants))
	copy(all, variants[:])
	return all
}

// Parse returns the genetic code matching name. It accepts
// the code name, and the NCBI table id when there is one
func Parse(name string) (Variant, error) {
	v, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Universal, fmt.Errorf("invalid genetic code: %s", name)
	}
	return v, nil
}

func (v Variant) diff() map[string]byte {
	switch v {
	case Mitochondrial:
		return mitochondrialDiff
	case SECIS:
		return secisDiff
	default:
		return universalDiff
	}
}

// Assigns reports whether codon encodes aa in this genetic code.
//
// codon has to be an uppercase codon over the RNA alphabet
func (v Variant) Assigns(codon string, aa aminoacid.AminoAcid) bool {
	if symbol, ok := v.diff()[codon]; ok {
		return symbol == aa.Symbol
	}
	return aa.Encodes(codon)
}

// NCBIID returns the id of the matching NCBI translation table,
// or 0 if NCBI doesn't define one
func (v Variant) NCBIID() int {
	switch v {
	case Universal:
		return 1
	case Mitochondrial:
		return 2
	}
	return 0
}

func (v Variant) String() string {
	switch v {
	case Universal:
		return "universal"
	case Mitochondrial:
		return "mitochondrial"
	case SECIS:
		return "secis"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// UnmarshalFlag implements flags.Unmarshaler, so a Variant
// can be used directly as a command line option
func (v *Variant) UnmarshalFlag(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalFlag implements flags.Marshaler
func (v Variant) MarshalFlag() (string, error) {
	return v.String(), nil
}
