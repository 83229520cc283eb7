package keymap

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// keymapFile is the YAML structure for user keybinding files.
type keymapFile struct {
	Bindings []Binding `yaml:"bindings"`
}

// LoadFile loads binding overrides from a YAML file.
// A missing file is not an error; it returns no bindings.
func LoadFile(path string) ([]Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader loads binding overrides from a reader.
func LoadReader(r io.Reader) ([]Binding, error) {
	var file keymapFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	for i, b := range file.Bindings {
		if b.Keys == "" {
			return nil, fmt.Errorf("keymap binding %d: empty keys", i)
		}
		if b.Action == "" {
			return nil, fmt.Errorf("keymap binding %d (%s): empty action", i, b.Keys)
		}
	}

	return file.Bindings, nil
}
