package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/johnstarich/go/sourcelink/cmd"
	"github.com/johnstarich/go/sourcelink/internal/flags"
	"github.com/johnstarich/go/sourcelink/internal/generate"
	"github.com/johnstarich/go/sourcelink/internal/host"
	"github.com/johnstarich/go/sourcelink/internal/pipe"
	"github.com/johnstarich/go/sourcelink/internal/plugin/sourcefile"
	"github.com/pkg/errors"
)

func main() {
	mainArgs(run, os.Args[1:]...)
}

// plugins are loaded into every Application, in order
var plugins = []host.Plugin{
	sourcefile.Load,
}

func newApp() *host.Application {
	app := host.New()
	if err := app.Load(plugins...); err != nil {
		panic(errors.Wrap(err, "Failed to load plugins"))
	}
	return app
}

func mainArgs(
	runner func(*host.Application, flags.Args) error,
	osArgs ...string,
) {
	app := newApp()
	args, usageOutput, err := flags.Parse(app.Options, osArgs...)
	switch err {
	case nil:
	case flag.ErrHelp:
		fmt.Print(usageOutput)
		return
	default:
		fmt.Fprintln(os.Stderr, err.Error())
		fmt.Print(usageOutput)
		cmd.Exit(2)
	}

	host.SetupLogging(os.Stderr, args.Verbose)
	if err := runner(app, args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		cmd.Exit(1)
	}
}

func run(app *host.Application, args flags.Args) error {
	fs := osfs.New("")
	return pipe.ChainFuncs(
		func() error {
			return app.Bootstrap(fs, args.OptionsPath, args.OptionOverrides)
		},
		func() error {
			return generate.Links(app, fs, fs, args, generate.Streams{In: os.Stdin, Out: os.Stdout})
		},
	).Do()
}
