package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"servicemart/internal/payload"
)

// loadForm reads raw form state from path. Files ending in .toml are
// decoded as TOML, everything else as JSON. "-" reads JSON from stdin.
func loadForm(path string, stdin io.Reader) (payload.Form, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return payload.ParseForm(data)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var form map[string]any
		if _, err := toml.DecodeFile(path, &form); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		if form == nil {
			form = map[string]any{}
		}
		return payload.Form(form), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return payload.ParseForm(data)
}
