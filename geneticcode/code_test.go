package geneticcode_test

import (
	"testing"

	"github.com/feliixx/gotranslate/aminoacid"
	"github.com/feliixx/gotranslate/geneticcode"
)

func TestAssignsExceptions(t *testing.T) {

	tests := []struct {
		name    string
		variant geneticcode.Variant
		codon   string
		aa      aminoacid.AminoAcid
		want    bool
	}{
		{"universal UGA is not Sec", geneticcode.Universal, "UGA", aminoacid.Sec, false},
		{"universal UGA is not Trp", geneticcode.Universal, "UGA", aminoacid.Trp, false},
		{"universal AGA is Arg", geneticcode.Universal, "AGA", aminoacid.Arg, true},
		{"universal AUA is Ile", geneticcode.Universal, "AUA", aminoacid.Ile, true},
		{"universal AUG is Met", geneticcode.Universal, "AUG", aminoacid.Met, true},
		{"secis UGA is Sec", geneticcode.SECIS, "UGA", aminoacid.Sec, true},
		{"secis UGA is not Trp", geneticcode.SECIS, "UGA", aminoacid.Trp, false},
		{"secis GGG is Gly", geneticcode.SECIS, "GGG", aminoacid.Gly, true},
		{"mito AGA is not Arg", geneticcode.Mitochondrial, "AGA", aminoacid.Arg, false},
		{"mito AGG is not Arg", geneticcode.Mitochondrial, "AGG", aminoacid.Arg, false},
		{"mito UGA is Trp", geneticcode.Mitochondrial, "UGA", aminoacid.Trp, true},
		{"mito UGA is not Sec", geneticcode.Mitochondrial, "UGA", aminoacid.Sec, false},
		{"mito AUA is Met", geneticcode.Mitochondrial, "AUA", aminoacid.Met, true},
		{"mito AUA is not Ile", geneticcode.Mitochondrial, "AUA", aminoacid.Ile, false},
		{"mito CGA is Arg", geneticcode.Mitochondrial, "CGA", aminoacid.Arg, true},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			if got := test.variant.Assigns(test.codon, test.aa); got != test.want {
				t.Errorf("expected %v but got %v", test.want, got)
			}
		})
	}
}

// for a given code, a codon is never assigned to more than one amino acid
func TestAssignsIsPartialFunction(t *testing.T) {

	const alphabet = "UCAG"

	for _, v := range geneticcode.All() {
		for _, n1 := range alphabet {
			for _, n2 := range alphabet {
				for _, n3 := range alphabet {
					codon := string([]rune{n1, n2, n3})
					matches := 0
					for _, aa := range aminoacid.All() {
						if v.Assigns(codon, aa) {
							matches++
						}
					}
					if matches > 1 {
						t.Errorf("%s: codon %s is assigned to %d amino acids", v, codon, matches)
					}
				}
			}
		}
	}
}

func TestParse(t *testing.T) {

	tests := []struct {
		name    string
		want    geneticcode.Variant
		wantErr bool
	}{
		{"universal", geneticcode.Universal, false},
		{"Standard", geneticcode.Universal, false},
		{"1", geneticcode.Universal, false},
		{"MITO", geneticcode.Mitochondrial, false},
		{"2", geneticcode.Mitochondrial, false},
		{" secis ", geneticcode.SECIS, false},
		{"selenocysteine", geneticcode.SECIS, false},
		{"yeast", geneticcode.Universal, true},
		{"", geneticcode.Universal, true},
	}

	for _, tt := range tests {
		got, err := geneticcode.Parse(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: expected error=%v but got %v", tt.name, tt.wantErr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %s but got %s", tt.name, tt.want, got)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {

	for _, v := range geneticcode.All() {
		var parsed geneticcode.Variant
		if err := parsed.UnmarshalFlag(v.String()); err != nil {
			t.Errorf("%s: %v", v, err)
		}
		if parsed != v {
			t.Errorf("expected %s but got %s", v, parsed)
		}
	}
}

func TestNCBIID(t *testing.T) {

	if id := geneticcode.Universal.NCBIID(); id != 1 {
		t.Errorf("expected 1 but got %d", id)
	}
	if id := geneticcode.Mitochondrial.NCBIID(); id != 2 {
		t.Errorf("expected 2 but got %d", id)
	}
	if id := geneticcode.SECIS.NCBIID(); id != 0 {
		t.Errorf("expected 0 but got %d", id)
	}
}
