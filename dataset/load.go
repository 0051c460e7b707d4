package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed districts.yaml
var defaultDistricts []byte

// Parse decodes a YAML dataset from r and validates it.
// Unknown keys are rejected so typos in hand-written files surface early.
func Parse(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}
		return nil, fmt.Errorf("dataset: failed to decode yaml: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// LoadFile reads and parses the dataset at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = path
	}

	return ds, nil
}

// Default returns a fresh copy of the built-in central-region dataset:
// nine districts and twelve roads.
func Default() *Dataset {
	var ds Dataset
	if err := yaml.Unmarshal(defaultDistricts, &ds); err != nil {
		panic(fmt.Sprintf("dataset: embedded districts.yaml is malformed: %v", err))
	}

	return &ds
}

// Write encodes d as YAML.
func (d *Dataset) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("dataset: failed to encode yaml: %w", err)
	}

	return enc.Close()
}
