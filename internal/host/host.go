// Package host wires plugins into the option registry and converter lifecycle
package host

import (
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/johnstarich/go/sourcelink/internal/converter"
	"github.com/johnstarich/go/sourcelink/internal/model"
	"github.com/johnstarich/go/sourcelink/internal/options"
	"github.com/johnstarich/go/sourcelink/internal/pipe"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const loggerName = "sourcelink"

// Plugin registers options and event listeners on an Application
type Plugin func(*Application) error

// Application holds the shared state plugins register against
type Application struct {
	Options   *options.Options
	Converter *converter.Converter
	Logger    *logging.Logger
}

// New returns an Application without any plugins loaded
func New() *Application {
	return &Application{
		Options:   options.New(),
		Converter: converter.New(),
		Logger:    logging.MustGetLogger(loggerName),
	}
}

// Load runs each plugin's registration in order, stopping at the first error
func (a *Application) Load(plugins ...Plugin) error {
	ops := make([]pipe.OpFunc, len(plugins))
	for i := range plugins {
		plugin := plugins[i]
		ops[i] = func() error {
			return errors.Wrap(plugin(a), "Failed to load plugin")
		}
	}
	return pipe.ChainFuncs(ops...).Do()
}

// Bootstrap reads the options file at optionsPath, if provided, then applies overrides on top of it
func (a *Application) Bootstrap(fs billy.Filesystem, optionsPath string, overrides map[string]string) error {
	if optionsPath != "" {
		a.Logger.Debugf("Reading options file %s", optionsPath)
		if err := a.Options.ReadFile(fs, optionsPath); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := a.Options.SetValue(name, overrides[name]); err != nil {
			return err
		}
	}
	return nil
}

// Convert runs the converter lifecycle over project
func (a *Application) Convert(project *model.Project) error {
	a.Logger.Debugf("Converting project %q", project.Name)
	return a.Converter.Convert(project)
}
