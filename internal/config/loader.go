package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a procfile from the provided path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open procfile: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a procfile definition from YAML.
func Parse(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc File
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode procfile: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate enforces schema invariants.
func (f *File) Validate() error {
	if f.Version == "" {
		return fmt.Errorf("version is required")
	}
	if len(f.Processes) == 0 {
		return fmt.Errorf("at least one process must be defined")
	}
	for name, proc := range f.Processes {
		if proc == nil {
			return fmt.Errorf("process %q is null", name)
		}
		if len(proc.Command) == 0 {
			return fmt.Errorf("process %s missing command", name)
		}
		if proc.Command[0] == "" {
			return fmt.Errorf("process %s has empty executable", name)
		}
	}
	return nil
}
