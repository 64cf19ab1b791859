package shared

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Library.Path != "~/Music/Library.xml" {
			t.Errorf("expected library path ~/Music/Library.xml, got %s", config.Library.Path)
		}

		if config.Output.Path != "~/Documents/SortedMusicByDecade.csv" {
			t.Errorf("expected output path ~/Documents/SortedMusicByDecade.csv, got %s", config.Output.Path)
		}

		if config.Output.Format != "csv" {
			t.Errorf("expected output format csv, got %s", config.Output.Format)
		}

		if config.Database.Path != "./libsort.db" {
			t.Errorf("expected database path ./libsort.db, got %s", config.Database.Path)
		}

		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Output.Path != defaultConfig.Output.Path {
			t.Errorf("created config output path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[library]
path = "/exports/Library.xml"

[output]
path = "/reports/decades.md"
format = "markdown"

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Library.Path != "/exports/Library.xml" {
			t.Errorf("expected library path /exports/Library.xml, got %s", config.Library.Path)
		}

		if config.Output.Format != "markdown" {
			t.Errorf("expected output format markdown, got %s", config.Output.Format)
		}

		if config.Database.Path != "./libsort.db" {
			t.Errorf("expected missing database section to keep default, got %s", config.Database.Path)
		}
	})

	t.Run("LoadConfig rejects unknown format", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[output]\nformat = \"xlsx\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig rejects invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[output\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tt := []struct {
		name string
		in   string
		want string
	}{
		{name: "tilde prefix", in: "~/Documents/out.csv", want: filepath.Join(home, "Documents/out.csv")},
		{name: "bare tilde", in: "~", want: home},
		{name: "absolute path", in: "/tmp/out.csv", want: "/tmp/out.csv"},
		{name: "tilde in the middle", in: "/tmp/~/out.csv", want: "/tmp/~/out.csv"},
		{name: "other user", in: "~bob/out.csv", want: "~bob/out.csv"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExpandPath(tc.in); got != tc.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tt := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatCSV},
		{in: "CSV", want: FormatCSV},
		{in: "md", want: FormatMarkdown},
		{in: " markdown ", want: FormatMarkdown},
		{in: "text", want: FormatText},
		{in: "txt", want: FormatText},
		{in: "json", wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidFormat) || !strings.Contains(err.Error(), "json") {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if got != tc.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
