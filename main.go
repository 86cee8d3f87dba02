package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/klauspost/pgzip"
	"github.com/op/go-logging"

	"github.com/feliixx/gotranslate/translate"
)

const (
	version  = "0.1.0"
	toolName = "gotranslate"
)

var (
	log       = logging.MustGetLogger(toolName)
	formatter = logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`)
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Required          `group:"required"`
	translate.Options `group:"optional"`
	General           `group:"general"`
}

// Required struct to store required command line args
type Required struct {
	Sequence string `short:"s" long:"sequence" value-name:"<filename>" description:"Nucleotide sequence(s) filename, '-' for stdin. Files ending with .gz are decompressed"`
	Outseq   string `short:"o" long:"outseq" value-name:"<filename>" description:"Protein sequence filename, '-' for stdout"`
}

// General struct to store general command line args
type General struct {
	Config     string `long:"config" value-name:"<filename>" description:"Read options from an ini file. Options from the command line take precedence"`
	PrintTable bool   `long:"table" description:"Print the codon table of the selected genetic code and exit"`
	Verbose    bool   `long:"verbose" description:"Print debug information to stderr"`
	Help       bool   `short:"h" long:"help" description:"Show this help message"`
	Version    bool   `short:"v" long:"version" description:"Print the tool version and exit"`
}

// parseOptions reads the config file if there is one, and then the
// command line args
func parseOptions(p *flags.Parser, args []string) error {

	var pre struct {
		Config string `long:"config"`
	}
	_, err := flags.NewParser(&pre, flags.IgnoreUnknown).ParseArgs(args)
	if err != nil {
		return err
	}
	if pre.Config != "" {
		err = flags.NewIniParser(p).ParseFile(pre.Config)
		if err != nil {
			return fmt.Errorf("fail to read config file %s: %v", pre.Config, err)
		}
	}
	_, err = p.ParseArgs(args)
	return err
}

func setupLogging(verbose bool) {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), formatter))
	backend.SetLevel(logging.WARNING, "")
	if verbose {
		backend.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(backend)
}

func run(options GlobalOptions, stdin io.Reader, stdout io.Writer) error {

	if options.PrintTable {
		_, err := options.Options.Table().WriteTo(stdout)
		return err
	}

	if options.Sequence == "" {
		return fmt.Errorf("missing required parameter -s | --sequence, try %s --help for details", toolName)
	}
	if options.Outseq == "" {
		return fmt.Errorf("missing required parameter -o | --outseq, try %s --help for details", toolName)
	}

	in, err := openInput(options.Sequence, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	if options.Outseq == "-" {
		return translate.TranslateFasta(in, stdout, options.Options)
	}

	out, err := os.Create(options.Outseq)
	if err != nil {
		return err
	}
	log.Debugf("translating %s to %s", options.Sequence, options.Outseq)

	err = translate.TranslateFasta(in, out, options.Options)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}

func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {

	if name == "-" {
		return ioutil.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, ".gz") {
		return f, nil
	}

	// using parallel pgzip for better performance on large files
	zr, err := pgzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fail to read gzip file %s: %v", name, err)
	}
	return &gzipFile{Reader: zr, f: f}, nil
}

type gzipFile struct {
	*pgzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if fErr := g.f.Close(); err == nil {
		err = fErr
	}
	return err
}

func main() {

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	err := parseOptions(p, os.Args[1:])
	if err != nil {
		fmt.Printf("wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	setupLogging(options.Verbose)

	err = run(options, os.Stdin, os.Stdout)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "fail to translate file:\n%v\n", err)
		os.Exit(1)
	}
}
