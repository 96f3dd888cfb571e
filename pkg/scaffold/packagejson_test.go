package scaffold

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

func TestAddScripts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
		added    []string
	}{
		{
			name:     "No scripts section",
			input:    `{"name":"demo"}`,
			expected: map[string]string{"lint": "jskit lint", "format": "jskit format"},
			added:    []string{"lint", "format"},
		},
		{
			name:     "Existing script is kept",
			input:    `{"name":"demo","scripts":{"lint":"eslint ."}}`,
			expected: map[string]string{"lint": "eslint .", "format": "jskit format"},
			added:    []string{"format"},
		},
		{
			name:     "Nothing to add",
			input:    `{"scripts":{"lint":"x","format":"y"}}`,
			expected: map[string]string{"lint": "x", "format": "y"},
			added:    nil,
		},
	}

	scripts := []Script{
		{Name: "lint", Command: "jskit lint"},
		{Name: "format", Command: "jskit format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, added, err := AddScripts([]byte(tc.input), scripts)
			if err != nil {
				t.Fatalf("AddScripts returned error: %s", err)
			}
			if !reflect.DeepEqual(added, tc.added) {
				t.Errorf("added = %v; want %v", added, tc.added)
			}
			for name, cmd := range tc.expected {
				if got := gjson.GetBytes(doc, "scripts."+name).String(); got != cmd {
					t.Errorf("scripts.%s = %q; want %q", name, got, cmd)
				}
			}
		})
	}
}

func TestAddScriptsKeepsOtherFields(t *testing.T) {
	doc, _, err := AddScripts([]byte(`{"name":"demo","version":"1.0.0","dependencies":{"a":"^1"}}`), []Script{{Name: "release", Command: "jskit release"}})
	if err != nil {
		t.Fatal(err)
	}

	if gjson.GetBytes(doc, "name").String() != "demo" || gjson.GetBytes(doc, "dependencies.a").String() != "^1" {
		t.Errorf("unexpected document: %s", doc)
	}
}

func TestAddScriptsEscapesNames(t *testing.T) {
	doc, _, err := AddScripts([]byte(`{}`), []Script{{Name: "lint.fix", Command: "jskit lint --fix"}})
	if err != nil {
		t.Fatal(err)
	}

	if got := gjson.GetBytes(doc, `scripts.lint\.fix`).String(); got != "jskit lint --fix" {
		t.Errorf("unexpected document: %s", doc)
	}
}

func TestAddScriptsInvalidJSON(t *testing.T) {
	if _, _, err := AddScripts([]byte(`{"name":`), nil); err == nil {
		t.Error("expected an error")
	}
}

func TestUpdatePackageJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), PackageJSON)
	if err := os.WriteFile(path, []byte(`{"name":"demo"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	added, err := UpdatePackageJSON(path, []Script{{Name: "lint", Command: "jskit lint"}})
	if err != nil {
		t.Fatalf("UpdatePackageJSON returned error: %s", err)
	}
	if !reflect.DeepEqual(added, []string{"lint"}) {
		t.Errorf("added = %v", added)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if gjson.GetBytes(data, "scripts.lint").String() != "jskit lint" {
		t.Errorf("package.json = %s", data)
	}

	if _, err := UpdatePackageJSON(filepath.Join(t.TempDir(), PackageJSON), nil); err == nil {
		t.Error("expected an error for a missing package.json")
	}
}
