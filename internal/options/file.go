package options

import (
	"encoding/json"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-git/go-billy/v5"
	"github.com/johnstarich/go/sourcelink/internal/pipe"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReadFile sets option values from a JSON, YAML, or TOML file. The format is chosen by file extension.
// Every key must be a declared option.
func (o *Options) ReadFile(fs billy.Filesystem, path string) error {
	var contents []byte
	var values map[string]interface{}
	err := pipe.ChainFuncs(
		func() error {
			var err error
			contents, err = readFile(fs, path)
			return errors.Wrapf(err, "Failed to read options file %q", path)
		},
		func() error {
			var err error
			values, err = decodeFile(path, contents)
			return errors.Wrapf(err, "Failed to parse options file %q", path)
		},
	).Do()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	ops := make([]pipe.OpFunc, 0, len(names))
	for _, name := range names {
		name := name
		ops = append(ops, func() error {
			return errors.Wrapf(o.SetValue(name, values[name]), "Failed to load options file %q", path)
		})
	}
	return pipe.ChainFuncs(ops...).Do()
}

func decodeFile(path string, contents []byte) (map[string]interface{}, error) {
	var values map[string]interface{}
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(contents, &values)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(contents, &values)
	case ".toml":
		err = toml.Unmarshal(contents, &values)
	default:
		err = errors.Errorf("Unsupported options file type %q, must be one of: .json, .yaml, .yml, .toml", ext)
	}
	return values, err
}

func readFile(fs billy.Filesystem, path string) ([]byte, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
