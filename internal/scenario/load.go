package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/castdemo/internal/demo"
	"github.com/shinji-kodama/castdemo/internal/model"
)

// File is a parsed scenario file.
type File struct {
	// Name is an optional display name for the scenario.
	Name string `json:"name" yaml:"name"`

	// Cases are executed in order.
	Cases []Case `json:"cases" yaml:"cases"`
}

// Case describes one widget and the conversion applied to it.
type Case struct {
	// Name becomes the widget's name.
	Name string `json:"name" yaml:"name"`

	// Kind selects the concrete widget type: "widget" or "special".
	Kind string `json:"kind" yaml:"kind"`

	// Type is the special widget's type. Empty means model.DefaultType.
	// Plain widgets must leave it empty.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Conversion is "readonly" or "narrow".
	Conversion string `json:"conversion" yaml:"conversion"`
}

// Load reads and decodes a scenario file. The format is chosen by file
// extension; unknown extensions are decoded as JSONC.
//
// Returns a CLIError with ExitScenarioNotFound if the file does not exist
// and ExitInvalidScenario if it cannot be decoded.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.WrapCLIError(
				model.ExitScenarioNotFound,
				fmt.Sprintf("scenario file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	f, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidScenario,
			fmt.Sprintf("failed to parse scenario file %s", path),
			err,
		)
	}
	return f, nil
}

// Decode parses scenario bytes. ext is a file extension such as ".yaml";
// anything other than .yaml or .yml is treated as JSONC.
func Decode(data []byte, ext string) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}
	return &f, nil
}

// Validate checks every case and returns the first problem found, wrapped
// as a CLIError with ExitInvalidScenario.
func Validate(f *File) error {
	if len(f.Cases) == 0 {
		return model.NewCLIError(model.ExitInvalidScenario, "scenario has no cases")
	}
	for i, c := range f.Cases {
		if err := c.validate(); err != nil {
			return model.WrapCLIError(model.ExitInvalidScenario,
				fmt.Sprintf("scenario case %d", i+1), err)
		}
	}
	return nil
}

func (c Case) validate() error {
	if c.Name == "" {
		return errors.New("name must not be empty")
	}
	kind, err := model.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	if kind == model.KindWidget && c.Type != "" {
		return fmt.Errorf("%q: type is only allowed on special widgets", c.Name)
	}
	if kind == model.KindWidget && c.Conversion == demo.ConversionReadOnly {
		return fmt.Errorf("%q: plain widgets have no read-only view", c.Name)
	}
	switch c.Conversion {
	case demo.ConversionReadOnly, demo.ConversionNarrow:
		return nil
	default:
		return fmt.Errorf("%q: invalid conversion %q (valid: %s, %s)",
			c.Name, c.Conversion, demo.ConversionReadOnly, demo.ConversionNarrow)
	}
}
