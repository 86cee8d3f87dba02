package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/klauspost/pgzip"

	"github.com/feliixx/gotranslate/geneticcode"
	"github.com/feliixx/gotranslate/translate"
)

const testFasta = ">seq1 first test sequence\nAUGGCCUAGAUGUAAGGG\n>seq2\nAUGAGAUGAAUACCC\n"

func TestRun(t *testing.T) {

	dir, err := ioutil.TempDir("", toolName)
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "test.fna")
	if err := ioutil.WriteFile(in, []byte(testFasta), 0644); err != nil {
		t.Fatal(err)
	}

	gzIn := filepath.Join(dir, "test.fna.gz")
	var gzBuf bytes.Buffer
	zw := pgzip.NewWriter(&gzBuf)
	zw.Write([]byte(testFasta))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(gzIn, gzBuf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	expected := ">seq1_1 first test sequence\nMA*M*G\n>seq2_1\nMR*IP\n"

	for _, input := range []string{in, gzIn} {

		out := filepath.Join(dir, "test.prot")
		options := GlobalOptions{Required: Required{Sequence: input, Outseq: out}}

		if err := run(options, nil, nil); err != nil {
			t.Fatalf("%s: %v", input, err)
		}
		got, err := ioutil.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != expected {
			t.Errorf("%s: expected\n%s\nbut got\n%s", input, expected, got)
		}
	}
}

func TestRunStdinStdout(t *testing.T) {

	options := GlobalOptions{
		Required: Required{Sequence: "-", Outseq: "-"},
		Options:  translate.Options{Code: geneticcode.Mitochondrial, Stop: true},
	}

	var out bytes.Buffer
	err := run(options, strings.NewReader(testFasta), &out)
	if err != nil {
		t.Fatal(err)
	}
	if want, got := ">seq1_1 first test sequence\nMA\n>seq2_1\nM\n", out.String(); want != got {
		t.Errorf("expected\n%s\nbut got\n%s", want, got)
	}
}

func TestRunMissingParameters(t *testing.T) {

	tests := []struct {
		name    string
		options GlobalOptions
		message string
	}{
		{"no sequence", GlobalOptions{Required: Required{Outseq: "-"}}, "missing required parameter -s | --sequence"},
		{"no outseq", GlobalOptions{Required: Required{Sequence: "-"}}, "missing required parameter -o | --outseq"},
		{"missing file", GlobalOptions{Required: Required{Sequence: "does/not/exist.fna", Outseq: "-"}}, "does/not/exist.fna"},
	}

	for _, tt := range tests {
		err := run(tt.options, strings.NewReader(""), ioutil.Discard)
		if err == nil || !strings.Contains(err.Error(), tt.message) {
			t.Errorf("%s: expected error containing %q but got %v", tt.name, tt.message, err)
		}
	}
}

func TestRunPrintTable(t *testing.T) {

	options := GlobalOptions{
		Options: translate.Options{Code: geneticcode.SECIS},
		General: General{PrintTable: true},
	}

	var out bytes.Buffer
	if err := run(options, nil, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "UGA U Sec\n") {
		t.Errorf("expected UGA to be read as Sec, got\n%s", out.String())
	}
	if n := strings.Count(out.String(), "\n"); n != 64 {
		t.Errorf("expected 64 lines but got %d", n)
	}
}

func TestParseOptionsWithConfig(t *testing.T) {

	dir, err := ioutil.TempDir("", toolName)
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	config := filepath.Join(dir, "gotranslate.ini")
	ini := "[Application Options]\nframe = 2\ncode = mitochondrial\nstop = true\n"
	if err := ioutil.WriteFile(config, []byte(ini), 0644); err != nil {
		t.Fatal(err)
	}

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	err = parseOptions(p, []string{"--config", config, "-f", "3", "-s", "in.fna", "-o", "out.prot"})
	if err != nil {
		t.Fatal(err)
	}

	if options.Frame != translate.Third {
		t.Errorf("command line should override config: expected frame 3 but got %s", options.Frame)
	}
	if options.Code != geneticcode.Mitochondrial {
		t.Errorf("expected mitochondrial code from config but got %s", options.Code)
	}
	if !options.Stop {
		t.Error("expected stop to be read from config")
	}
	if options.Sequence != "in.fna" || options.Outseq != "out.prot" {
		t.Errorf("wrong files: %s %s", options.Sequence, options.Outseq)
	}
}

func BenchmarkTranslate(b *testing.B) {

	seq := strings.Repeat("AUGGCCAGAUGAUAA\n", 1000)
	for n := 0; n < b.N; n++ {
		_, err := translate.TranslateString(seq, translate.First, geneticcode.Universal, false)
		if err != nil {
			b.Fatal(err)
		}
	}
}
