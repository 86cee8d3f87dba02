// Package codon resolves codons to the unit reading them during
// translation, and builds the complete codon tables of a genetic code.
package codon

import (
	"fmt"
	"strings"

	"github.com/feliixx/gotranslate/aminoacid"
	"github.com/feliixx/gotranslate/geneticcode"
)

const (
	// RNAAlphabet is the alphabet of mRNA codons
	RNAAlphabet = "UCAG"
	// DNAAlphabet is the alphabet of coding DNA codons
	DNAAlphabet = "TCAG"

	// Stop is the symbol of a release unit
	Stop = '*'
)

// Unit reads a codon during translation. It is either a tRNA carrying
// an amino acid, or a release factor ending the translation
type Unit struct {
	Codon     string
	aminoAcid aminoacid.AminoAcid
	carrier   bool
}

// AminoAcid returns the amino acid carried by the unit. ok is false
// for release units
func (u Unit) AminoAcid() (aa aminoacid.AminoAcid, ok bool) {
	return u.aminoAcid, u.carrier
}

// IsRelease reports whether the unit stops the translation
func (u Unit) IsRelease() bool {
	return !u.carrier
}

// Symbol returns the one-letter symbol of the carried amino acid, or '*'
func (u Unit) Symbol() byte {
	if !u.carrier {
		return Stop
	}
	return u.aminoAcid.Symbol
}

func (u Unit) String() string {
	if !u.carrier {
		return u.Codon + " * Stop"
	}
	return fmt.Sprintf("%s %c %s", u.Codon, u.aminoAcid.Symbol, u.aminoAcid.Abbreviation)
}

// InvalidCodonError is returned when a codon is not made of exactly
// three valid nucleotides
type InvalidCodonError struct {
	Codon string
	// Char is the first invalid nucleotide, 0 if the codon has a wrong length
	Char     byte
	Position int
}

func (e *InvalidCodonError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("invalid codon %q: length %d, expected 3", e.Codon, len(e.Codon))
	}
	return fmt.Sprintf("invalid codon %q: invalid nucleotide '%c' at position %d", e.Codon, e.Char, e.Position)
}

// Resolve returns the unit reading codon in the genetic code v.
//
// codon is case insensitive, and has to be written with the RNA
// alphabet. The unit carries the first amino acid of the catalog
// assigned to codon, or is a release unit if there is none.
func Resolve(codon string, v geneticcode.Variant) (Unit, error) {
	codon = strings.ToUpper(codon)
	if err := validate(codon, RNAAlphabet); err != nil {
		return Unit{}, err
	}
	return resolve(codon, codon, v), nil
}

func validate(codon, alphabet string) error {
	if len(codon) != 3 {
		return &InvalidCodonError{Codon: codon}
	}
	for i := 0; i < len(codon); i++ {
		if strings.IndexByte(alphabet, codon[i]) == -1 {
			return &InvalidCodonError{Codon: codon, Char: codon[i], Position: i}
		}
	}
	return nil
}

// resolve assumes that rna is a valid uppercase RNA codon.
// name is the codon as it should appear in the unit
func resolve(name, rna string, v geneticcode.Variant) Unit {
	for _, aa := range aminoacid.All() {
		if v.Assigns(rna, aa) {
			return Unit{Codon: name, aminoAcid: aa, carrier: true}
		}
	}
	return Unit{Codon: name}
}
