// Package sourcefile points each documented symbol's source links at an external repository browser.
//
// Links are built by concatenation: the URL prefix, the source file's relative path, then the line prefix and line number.
// For example, with a URL prefix of "https://git.example.com/repo/blob/main/" and the default line prefix,
// a symbol declared on line 42 of src/foo.ts links to "https://git.example.com/repo/blob/main/src/foo.ts#L-42".
package sourcefile

import (
	"strconv"

	"github.com/johnstarich/go/sourcelink/internal/converter"
	"github.com/johnstarich/go/sourcelink/internal/host"
	"github.com/johnstarich/go/sourcelink/internal/model"
	"github.com/johnstarich/go/sourcelink/internal/options"
	"github.com/johnstarich/go/sourcelink/internal/pipe"
)

const (
	OptionURLPrefix  = "sourcefile-url-prefix"
	OptionLinePrefix = "sourcefile-line-prefix"

	DefaultLinePrefix = "#L-"
)

// Load declares the URL and line prefix options and rewrites source links once the model is resolved
func Load(app *host.Application) error {
	err := pipe.ChainFuncs(
		func() error {
			return app.Options.AddDeclaration(options.Declaration{
				Name:         OptionURLPrefix,
				Help:         "Prefix for url of link to source file, e.g. https://www.your-repository.org/",
				Type:         options.String,
				DefaultValue: "",
			})
		},
		func() error {
			return app.Options.AddDeclaration(options.Declaration{
				Name:         OptionLinePrefix,
				Help:         "Prefix to use to indicate a specific line in the repository, e.g. #L-",
				Type:         options.String,
				DefaultValue: DefaultLinePrefix,
			})
		},
	).Do()
	if err != nil {
		return err
	}

	app.Converter.On(converter.EventResolveEnd, func(ctx *converter.Context) error {
		urlPrefix := app.Options.GetString(OptionURLPrefix)
		if urlPrefix == "" {
			app.Logger.Debugf("Skipping source link rewrite, %s is not set", OptionURLPrefix)
			return nil
		}
		count := Rewrite(ctx.Project, urlPrefix, app.Options.GetString(OptionLinePrefix))
		app.Logger.Debugf("Rewrote %d source links", count)
		return nil
	})
	return nil
}

// Rewrite sets the URL of every source reference with a file name in project and returns how many were set.
// Every reflection is rewritten regardless of its kind. An empty urlPrefix disables rewriting.
//
// URLs are computed from file names alone, so repeating a rewrite with the same prefixes yields the same URLs.
// File names that already hold a full URL are not detected and get the prefix prepended again.
func Rewrite(project *model.Project, urlPrefix, linePrefix string) int {
	if urlPrefix == "" {
		return 0
	}
	count := 0
	for _, reflection := range project.Reflections() {
		for _, source := range reflection.Sources {
			if source == nil || source.FileName == "" {
				continue
			}
			source.URL = URL(source.FileName, source.Line, urlPrefix, linePrefix)
			count++
		}
	}
	return count
}

// URL returns the link to line of fileName. The line is omitted if linePrefix is empty.
func URL(fileName string, line int, urlPrefix, linePrefix string) string {
	url := urlPrefix + fileName
	if linePrefix != "" {
		url += linePrefix + strconv.Itoa(line)
	}
	return url
}
