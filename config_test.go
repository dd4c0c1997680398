package scriptlang_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kolkov/scriptlang"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	want := scriptlang.Config{
		Filename: "main.sl",
		Format:   scriptlang.FormatJSON,
		Color:    true,
		TabWidth: 8,
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "scriptlang.toml",
			content: `filename = "main.sl"
format = "json"
color = true
tab_width = 8
`,
		},
		{
			name: "yaml",
			file: "scriptlang.yaml",
			content: `filename: main.sl
format: json
color: true
tab_width: 8
`,
		},
		{
			name: "yml upper case format",
			file: "scriptlang.yml",
			content: `filename: main.sl
format: JSON
color: true
tab_width: 8
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := scriptlang.LoadConfig(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadConfig error: %v", err)
			}
			if *config != want {
				t.Errorf("got %+v, want %+v", *config, want)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := scriptlang.LoadConfig(writeFile(t, "empty.toml", ""))
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if config.Format != scriptlang.FormatSExpr {
		t.Errorf("Format = %q, want %q", config.Format, scriptlang.FormatSExpr)
	}
	if config.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", config.TabWidth)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown extension", "config.ini", "format = json\n"},
		{"bad format", "config.toml", "format = \"xml\"\n"},
		{"invalid toml", "config.toml", "format = \n"},
		{"invalid yaml", "config.yaml", "format: [json\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := scriptlang.LoadConfig(writeFile(t, tt.file, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := scriptlang.LoadConfig(filepath.Join(t.TempDir(), "none.toml")); err == nil {
			t.Error("expected error")
		}
	})
}
