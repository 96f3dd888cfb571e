package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/zbiljic/jskit/pkg/commit"
	"github.com/zbiljic/jskit/pkg/delegate"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %s", err)
	}

	v, err := cfg.Vocabulary()
	if err != nil {
		t.Fatal(err)
	}
	if v != commit.DefaultVocabulary() {
		t.Error("default config should use the default vocabulary")
	}
	if got := cfg.RequiredEnv(); !reflect.DeepEqual(got, []string{"GITHUB_TOKEN", "NPM_TOKEN"}) {
		t.Errorf("RequiredEnv = %v", got)
	}
}

func TestLoadFileV1(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "jskit.json", `{
  "version": "1",
  "types": [
    {"name": "feat", "description": "A feature", "release": "minor"},
    {"name": "fix", "release": "patch"},
    {"name": "chore", "release": "none"}
  ],
  "release": {"branch": "main", "required_env": ["NPM_TOKEN"]},
  "tools": {"lint": {"name": "npx", "args": ["eslint", "src"]}},
  "suggest": {"provider": "claude"}
}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %s", err)
	}

	v, err := cfg.Vocabulary()
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Names(); !reflect.DeepEqual(got, []string{"feat", "fix", "chore"}) {
		t.Errorf("Names = %v", got)
	}
	if d, _ := v.Lookup("feat"); d.Release != commit.Minor || d.Description != "A feature" {
		t.Errorf("feat = %+v", d)
	}

	if cfg.Release.Branch != "main" || !reflect.DeepEqual(cfg.RequiredEnv(), []string{"NPM_TOKEN"}) {
		t.Errorf("release = %+v", cfg.Release)
	}
	if cfg.Suggest.Provider != "claude" {
		t.Errorf("suggest = %+v", cfg.Suggest)
	}

	lint := cfg.Tool(ToolLint, delegate.ESLint)
	if lint.Name != "npx" || !reflect.DeepEqual(lint.Args, []string{"eslint", "src"}) {
		t.Errorf("lint tool = %+v", lint)
	}
	if format := cfg.Tool(ToolFormat, delegate.Prettier); format.Name != "prettier" {
		t.Errorf("format tool = %+v", format)
	}
}

func TestLoadFileV0Migration(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "jskit.json", `{
  "version": "0",
  "branch": "develop",
  "types": {"Feature": "minor", "Bugfix": "patch", "Docs": "none", "Api": "major", "Build": "none"}
}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %s", err)
	}

	if cfg.Version != configVersionV1 {
		t.Errorf("Version = %s; want %s", cfg.Version, configVersionV1)
	}
	if cfg.Release.Branch != "develop" {
		t.Errorf("Branch = %s", cfg.Release.Branch)
	}

	v, err := cfg.Vocabulary()
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"Build", "Docs", "Bugfix", "Feature", "Api"}
	if got := v.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Names = %v; want %v", got, expected)
	}
}

func TestLoadFileV0Empty(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "jskit.json", `{"version": "0"}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %s", err)
	}
	if !reflect.DeepEqual(cfg, NewDefault()) {
		t.Errorf("empty v0 config should migrate to defaults, got %+v", cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Unknown version", content: `{"version": "7"}`},
		{name: "Unknown release type", content: `{"version": "1", "types": [{"name": "feat", "release": "huge"}]}`},
		{name: "Missing type name", content: `{"version": "1", "types": [{"release": "minor"}]}`},
		{name: "Unknown tool", content: `{"version": "1", "tools": {"test": {"name": "jest"}}}`},
		{name: "Unknown provider", content: `{"version": "1", "suggest": {"provider": "phind"}}`},
		{name: "Invalid v0 release type", content: `{"version": "0", "types": {"Feature": "huge"}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "jskit.json", tc.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestVocabularyDuplicateTypes(t *testing.T) {
	cfg := NewDefault()
	cfg.Types = []CommitTypeConfig{
		{Name: "feat", Release: commit.Minor},
		{Name: "feat", Release: commit.Patch},
	}

	if _, err := cfg.Vocabulary(); err == nil {
		t.Error("expected an error for duplicate commit types")
	}
}

func TestMigrateV0Defaults(t *testing.T) {
	cfg, err := newConfigV0().migrate()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Types) != 0 || cfg.Version != configVersionV1 {
		t.Errorf("unexpected migration result: %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "jskit.json")

	cfg := NewDefault()
	cfg.Types = []CommitTypeConfig{{Name: "feat", Release: commit.Minor}}
	cfg.Release.Branch = "main"

	t.Cleanup(ResetCache)
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save returned error: %s", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %s", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("loaded = %+v; want %+v", loaded, cfg)
	}

	if err := Save(nil, path); err == nil {
		t.Error("expected an error for a nil config")
	}
}

func TestGetSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	project := filepath.Join(home, "src", "project")
	if err := os.MkdirAll(project, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(project)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	src := filepath.Dir(cwd)

	expected := []string{
		filepath.Join(cwd, ".jskit.json"),
		filepath.Join(cwd, "jskit.json"),
		filepath.Join(src, ".jskit.json"),
		filepath.Join(src, "jskit.json"),
		filepath.Join(home, ".config", "jskit", "jskit.json"),
		filepath.Join(home, ".jskit.json"),
	}
	if paths := GetSearchPaths(); !reflect.DeepEqual(paths, expected) {
		t.Errorf("GetSearchPaths = %v; want %v", paths, expected)
	}
	if GetDefaultPath() != filepath.Join(home, ".config", "jskit", "jskit.json") {
		t.Errorf("GetDefaultPath = %s", GetDefaultPath())
	}
}

func TestGetSearchPathsStopsAtRepositoryRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	repo := filepath.Join(home, "src", "repo")
	pkg := filepath.Join(repo, "packages", "ui")
	for _, dir := range []string{filepath.Join(repo, ".git"), pkg} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(pkg)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	root := filepath.Dir(filepath.Dir(cwd))

	paths := GetSearchPaths()
	if len(paths) != 8 {
		t.Fatalf("unexpected paths: %v", paths)
	}
	if paths[5] != filepath.Join(root, "jskit.json") {
		t.Errorf("last project path = %s; want the repository root", paths[5])
	}
	if paths[6] != GetDefaultPath() {
		t.Errorf("user config path = %s", paths[6])
	}
}

func TestFindFileAndLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	project := filepath.Join(home, "project")
	if err := os.MkdirAll(project, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(project)
	t.Cleanup(ResetCache)

	if _, err := FindFile(); !os.IsNotExist(err) {
		t.Errorf("FindFile error = %v; want not exist", err)
	}

	ResetCache()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %s", err)
	}
	if !reflect.DeepEqual(cfg, NewDefault()) {
		t.Errorf("Load without a file = %+v; want defaults", cfg)
	}
	if _, ok := Path(); ok {
		t.Error("Path should report no file")
	}

	writeConfig(t, project, "jskit.json", `{"version": "1", "release": {"branch": "main"}}`)
	path, err := FindFile()
	if err != nil {
		t.Fatalf("FindFile returned error: %s", err)
	}
	if filepath.Base(path) != "jskit.json" {
		t.Errorf("FindFile = %s", path)
	}

	ResetCache()
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load returned error: %s", err)
	}
	if cfg.Release.Branch != "main" {
		t.Errorf("Branch = %s", cfg.Release.Branch)
	}
	if loadedPath, ok := Path(); !ok || loadedPath != path {
		t.Errorf("Path = %s, %v; want %s", loadedPath, ok, path)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "jskit.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
