package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	Items []Item `yaml:"items" validate:"required,min=1,dive"`
}

// LoadFile reads a YAML catalog of the form:
//
//	items:
//	  - name: Camiseta básica
//	    href: /products/1
func LoadFile(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	s, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return s, nil
}

func Decode(r io.Reader) (*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileFormat
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if len(f.Items) == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return NewSnapshot(f.Items)
}
