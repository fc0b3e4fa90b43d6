package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/config"
)

func TestRunInit(t *testing.T) {
	t.Parallel()

	t.Run("writes default config", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		env, stdout, _ := newTestEnv()
		if err := runInit([]string{path}, env); err != nil {
			t.Fatalf("runInit() error: %v", err)
		}
		if !strings.Contains(stdout.String(), "Created "+path) {
			t.Errorf("stdout = %q", stdout.String())
		}

		cfg, err := config.LoadConfig(path)
		if err != nil {
			t.Fatalf("written config does not load: %v", err)
		}
		if *cfg != *config.DefaultConfig() {
			t.Errorf("loaded config = %+v, want defaults", cfg)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "mdsite.yaml")
		writeFiles(t, filepath.Dir(path), map[string]string{"mdsite.yaml": "keep: me"})

		env, _, _ := newTestEnv()
		err := runInit([]string{path}, env)
		if !errors.Is(err, ErrConfigExists) {
			t.Fatalf("runInit() error = %v, want ErrConfigExists", err)
		}
		if got := readFile(t, path); got != "keep: me" {
			t.Errorf("file changed to %q", got)
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "mdsite.yaml")
		writeFiles(t, filepath.Dir(path), map[string]string{"mdsite.yaml": "keep: me"})

		env, _, _ := newTestEnv()
		if err := runInit([]string{"--force", path}, env); err != nil {
			t.Fatalf("runInit() error: %v", err)
		}
		if got := readFile(t, path); !strings.Contains(got, "content:") {
			t.Errorf("file not overwritten: %q", got)
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()

		env, _, _ := newTestEnv()
		err := runInit([]string{"a.yaml", "b.yaml"}, env)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("runInit() error = %v, want ErrUsage", err)
		}
	})
}
