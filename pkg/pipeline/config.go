package pipeline

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sunburst/pkg/errors"
)

// LoadOptions reads a configuration file on top of [DefaultOptions].
// Keys absent from the file keep their default. The format follows the
// extension: .toml, .yaml/.yml or .json. Unknown keys are rejected so typos
// do not pass silently.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if err := errors.ValidatePath(path); err != nil {
		return opts, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &opts)
	case ".yaml", ".yml":
		err = decodeYAML(data, &opts)
	case ".json":
		err = decodeJSON(data, &opts)
	default:
		return opts, errors.New(errors.ErrCodeUnsupported, "unsupported config format %q (want .toml, .yaml or .json)", ext)
	}
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return opts, nil
}

func decodeTOML(data []byte, opts *Options) error {
	md, err := toml.Decode(string(data), opts)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(data []byte, opts *Options) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(opts); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func decodeJSON(data []byte, opts *Options) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(opts)
}

// WriteConfig encodes opts as TOML. The output can be edited and passed back
// through [LoadOptions].
func WriteConfig(w io.Writer, opts Options) error {
	if err := toml.NewEncoder(w).Encode(opts); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}
