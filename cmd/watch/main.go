// Command watch rewrites source links and starts an HTTP endpoint to serve the results. Also runs a file watcher on the input model and options file to rewrite again on change events.
//
// watch is useful for trying out link prefixes against a live documentation build.
// Accepts the same flags as sourcelink. Output paths are served from memory at http://localhost:8080/<path>.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/johnstarich/go/sourcelink/cmd"
	"github.com/johnstarich/go/sourcelink/internal/flags"
	"github.com/johnstarich/go/sourcelink/internal/generate"
	"github.com/johnstarich/go/sourcelink/internal/host"
	"github.com/johnstarich/go/sourcelink/internal/pipe"
	"github.com/johnstarich/go/sourcelink/internal/plugin/sourcefile"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	defaultOutputPath = "model.json"
	defaultHTMLPath   = "index.html"
	debounce          = 2 * time.Second
)

var log = logging.MustGetLogger("watch")

func main() {
	app := host.New()
	if err := app.Load(sourcefile.Load); err != nil {
		panic(err)
	}
	args, usageOutput, err := flags.Parse(app.Options, os.Args[1:]...)
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
	args = serveArgs(args)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pages := newPageServer(memfs.New(), args.HTMLPath)
	err = watch(ctx, watchedFiles(args), debounce, func() error {
		return pages.Update(func(fs billy.Filesystem) error {
			return rewrite(app, osfs.New(""), fs, args)
		})
	})
	if err != nil {
		panic(err)
	}

	server := http.Server{
		Addr:    ":8080",
		Handler: pages,
	}
	fmt.Println("Starting watch server on :8080...")
	_ = server.ListenAndServe()
}

// serveArgs replaces stdout paths with paths to serve, since watch has no stdout to write to
func serveArgs(args flags.Args) flags.Args {
	if args.OutputPath == flags.StdStream {
		args.OutputPath = defaultOutputPath
	}
	if args.HTMLPath == "" || args.HTMLPath == flags.StdStream {
		args.HTMLPath = defaultHTMLPath
	}
	return args
}

func watchedFiles(args flags.Args) []string {
	var files []string
	if args.InputPath != flags.StdStream {
		files = append(files, args.InputPath)
	}
	if args.OptionsPath != "" {
		files = append(files, args.OptionsPath)
	}
	return files
}

// rewrite reloads options from scratch, so edits to the options file take effect, then rewrites the model into fs
func rewrite(app *host.Application, src, fs billy.Filesystem, args flags.Args) error {
	return pipe.ChainFuncs(
		func() error {
			app.Options.Reset()
			return app.Bootstrap(src, args.OptionsPath, args.OptionOverrides)
		},
		func() error {
			return generate.Links(app, src, fs, args, generate.Streams{})
		},
	).Do()
}

// pageServer serves the latest rewrite results. Updates and reads are serialized.
type pageServer struct {
	mu          sync.RWMutex
	fs          billy.Filesystem
	indexPath   string
	lastUpdated string
}

func newPageServer(fs billy.Filesystem, indexPath string) *pageServer {
	return &pageServer{fs: fs, indexPath: indexPath}
}

// Update runs do against the served file system
func (p *pageServer) Update(do func(billy.Filesystem) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := do(p.fs)
	if err == nil {
		p.lastUpdated = time.Now().Format(time.RFC3339)
	}
	return errors.Wrap(err, "Failed to update pages")
}
