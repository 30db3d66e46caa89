// Package generate reads a documentation model, runs the loaded plugins over it, and writes the results
package generate

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/johnstarich/go/sourcelink/internal/flags"
	"github.com/johnstarich/go/sourcelink/internal/host"
	"github.com/johnstarich/go/sourcelink/internal/model"
	"github.com/johnstarich/go/sourcelink/internal/pipe"
	"github.com/johnstarich/go/sourcelink/internal/render"
	"github.com/pkg/errors"
)

// Streams are used in place of files for paths set to flags.StdStream
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// Links converts the model at args.InputPath in src with app's plugins and writes it to args.OutputPath in fs.
// If args.HTMLPath is set, an HTML index of the model's source links is written there too.
func Links(app *host.Application, src, fs billy.Filesystem, args flags.Args, streams Streams) error {
	var project *model.Project
	return pipe.ChainFuncs(
		func() error {
			var err error
			project, err = readModel(src, args.InputPath, streams.In)
			return errors.Wrapf(err, "Failed to read documentation model %q", args.InputPath)
		},
		func() error {
			return app.Convert(project)
		},
		func() error {
			err := writeFile(fs, args.OutputPath, streams.Out, project.Encode)
			return errors.Wrapf(err, "Failed to write documentation model %q", args.OutputPath)
		},
		func() error {
			if args.HTMLPath == "" {
				return nil
			}
			err := writeFile(fs, args.HTMLPath, streams.Out, func(w io.Writer) error {
				return render.SourceIndex(project, args.IncludeInHead.Contents(), w)
			})
			return errors.Wrapf(err, "Failed to write HTML index %q", args.HTMLPath)
		},
		func() error {
			app.Logger.Infof("Processed documentation model %q", project.Name)
			return nil
		},
	).Do()
}

func readModel(fs billy.Filesystem, path string, stdin io.Reader) (*model.Project, error) {
	if path == flags.StdStream {
		return model.Decode(stdin)
	}
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return model.Decode(file)
}

func writeFile(fs billy.Filesystem, path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == flags.StdStream {
		return write(stdout)
	}
	var buf bytes.Buffer
	return pipe.ChainFuncs(
		func() error {
			return write(&buf)
		},
		func() error {
			dir := filepath.Dir(path)
			if dir == "." {
				return nil
			}
			return fs.MkdirAll(dir, 0700)
		},
		func() error {
			return util.WriteFile(fs, path, buf.Bytes(), 0600)
		},
	).Do()
}
