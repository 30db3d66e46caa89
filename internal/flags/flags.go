package flags

import (
	"bytes"
	"flag"

	"github.com/johnstarich/go/sourcelink/internal/options"
	"github.com/pkg/errors"
)

// StdStream is the path used to read from stdin or write to stdout
const StdStream = "-"

// Args contains all command-line options for sourcelink
type Args struct {
	InputPath     string
	OutputPath    string
	OptionsPath   string
	HTMLPath      string
	IncludeInHead FileContents
	Verbose       bool

	// OptionOverrides holds plugin option values set on the command line. These take precedence over the options file.
	OptionOverrides map[string]string
}

// Parse parses the given command line arguments into Args values and returns any output to send to the user.
// Every option declared in opts is also accepted as a flag.
func Parse(opts *options.Options, osArgs ...string) (Args, string, error) {
	var args Args
	commandLine := flag.NewFlagSet("sourcelink", flag.ContinueOnError)
	commandLine.StringVar(&args.InputPath, "in", "", `Path to the documentation model JSON file. Use "-" to read from stdin.`)
	commandLine.StringVar(&args.OutputPath, "out", StdStream, `Output path for the rewritten documentation model JSON. Use "-" to write to stdout.`)
	commandLine.StringVar(&args.OptionsPath, "options", "", "Path to a JSON, YAML, or TOML file of plugin option values. Flags take precedence over the file.")
	commandLine.StringVar(&args.HTMLPath, "html", "", "Also write an HTML index of all source links to this path")
	commandLine.Var(&args.IncludeInHead, "include-head", "Includes the given HTML file's contents in the HTML index's '<head></head>'. Must be valid HTML.")
	commandLine.BoolVar(&args.Verbose, "verbose", false, "Enable debug logging")
	if opts != nil {
		opts.AddFlags(commandLine)
	}

	var output bytes.Buffer
	commandLine.SetOutput(&output)
	err := commandLine.Parse(osArgs) // prints usage if fails
	if err != nil {
		return args, output.String(), err
	}
	if args.InputPath == "" {
		commandLine.Usage()
		return args, output.String(), errors.New("Flag -in is required")
	}

	if opts != nil {
		commandLine.Visit(func(f *flag.Flag) {
			if _, err := opts.GetValue(f.Name); err != nil {
				return
			}
			if args.OptionOverrides == nil {
				args.OptionOverrides = make(map[string]string)
			}
			args.OptionOverrides[f.Name] = f.Value.String()
		})
	}
	return args, output.String(), nil
}
