// Package options is a registry of named, typed configuration values declared by plugins
package options

import (
	"flag"
	"fmt"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// ParameterType is the value type of a declared option
type ParameterType int

const (
	String ParameterType = iota
	Boolean
	Number
)

func (p ParameterType) String() string {
	switch p {
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	default:
		return fmt.Sprintf("ParameterType(%d)", int(p))
	}
}

// Declaration describes an option before any value is set
type Declaration struct {
	Name         string
	Help         string
	Type         ParameterType
	DefaultValue interface{}
}

type option struct {
	Declaration
	value interface{}
}

// Options holds declared options and their current values
type Options struct {
	options map[string]*option
}

// New returns an empty option registry
func New() *Options {
	return &Options{
		options: make(map[string]*option),
	}
}

// AddDeclaration registers a new option. Names must be non-empty and unique.
func (o *Options) AddDeclaration(decl Declaration) error {
	if decl.Name == "" {
		return errors.New("Option name must not be empty")
	}
	if _, exists := o.options[decl.Name]; exists {
		return errors.Errorf("Option %q is already declared", decl.Name)
	}
	defaultValue, err := convert(decl.Type, decl.DefaultValue)
	if err != nil {
		return errors.Wrapf(err, "Invalid default value for option %q", decl.Name)
	}
	decl.DefaultValue = defaultValue
	o.options[decl.Name] = &option{Declaration: decl, value: defaultValue}
	return nil
}

// Declarations returns all declared options sorted by name
func (o *Options) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(o.options))
	for _, opt := range o.options {
		decls = append(decls, opt.Declaration)
	}
	sort.Slice(decls, func(a, b int) bool {
		return decls[a].Name < decls[b].Name
	})
	return decls
}

// IsSet returns true if the option exists and its value differs from the default
func (o *Options) IsSet(name string) bool {
	opt, exists := o.options[name]
	return exists && opt.value != opt.DefaultValue
}

// GetValue returns the current value of the named option
func (o *Options) GetValue(name string) (interface{}, error) {
	opt, exists := o.options[name]
	if !exists {
		return nil, errors.Errorf("Unknown option %q", name)
	}
	return opt.value, nil
}

// GetString returns the named string option's value, or an empty string if it isn't a declared string option
func (o *Options) GetString(name string) string {
	value, _ := o.GetValue(name)
	s, _ := value.(string)
	return s
}

// SetValue sets the named option. Values are converted to the declared type, e.g. "true" for a Boolean option.
func (o *Options) SetValue(name string, value interface{}) error {
	opt, exists := o.options[name]
	if !exists {
		return errors.Errorf("Unknown option %q", name)
	}
	converted, err := convert(opt.Type, value)
	if err != nil {
		return errors.Wrapf(err, "Invalid value for option %q", name)
	}
	opt.value = converted
	return nil
}

// Reset restores every option to its default value
func (o *Options) Reset() {
	for _, opt := range o.options {
		opt.value = opt.DefaultValue
	}
}

// AddFlags adds a flag for each declared option to set
func (o *Options) AddFlags(set *flag.FlagSet) {
	for _, decl := range o.Declarations() {
		set.Var(&optionFlag{options: o, name: decl.Name}, decl.Name, decl.Help)
	}
}

type optionFlag struct {
	options *Options
	name    string
}

func (f *optionFlag) String() string {
	if f == nil || f.options == nil {
		return ""
	}
	value, _ := f.options.GetValue(f.name)
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func (f *optionFlag) Set(s string) error {
	return f.options.SetValue(f.name, s)
}

func (f *optionFlag) IsBoolFlag() bool {
	opt, exists := f.options.options[f.name]
	return exists && opt.Type == Boolean
}

func convert(paramType ParameterType, value interface{}) (interface{}, error) {
	switch paramType {
	case String:
		switch v := value.(type) {
		case nil:
			return "", nil
		case string:
			return v, nil
		}
	case Boolean:
		switch v := value.(type) {
		case nil:
			return false, nil
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			return b, errors.Wrapf(err, "Expected a boolean, got %q", v)
		}
	case Number:
		switch v := value.(type) {
		case nil:
			return float64(0), nil
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			return f, errors.Wrapf(err, "Expected a number, got %q", v)
		}
	default:
		return nil, errors.Errorf("Unknown parameter type: %s", paramType)
	}
	return nil, errors.Errorf("Expected a %s, got %T", paramType, value)
}
