package scaffold

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// PackageJSON is the npm manifest scripts are added to.
const PackageJSON = "package.json"

// Script is an npm script entry.
type Script struct {
	Name    string
	Command string
}

var errInvalidPackageJSON = errors.New("package.json is not valid JSON")

var pathReplacer = strings.NewReplacer(`\`, `\\`, ".", `\.`, "*", `\*`, "?", `\?`)

// AddScripts adds scripts to a package.json document. A script whose name is
// already defined is left untouched. It returns the updated document and the
// names that were added.
func AddScripts(doc []byte, scripts []Script) ([]byte, []string, error) {
	if !gjson.ValidBytes(doc) {
		return nil, nil, errInvalidPackageJSON
	}

	var added []string
	for _, s := range scripts {
		path := "scripts." + pathReplacer.Replace(s.Name)
		if gjson.GetBytes(doc, path).Exists() {
			continue
		}

		var err error
		doc, err = sjson.SetBytes(doc, path, s.Command)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to add script %s: %w", s.Name, err)
		}
		added = append(added, s.Name)
	}

	return doc, added, nil
}

// UpdatePackageJSON adds scripts to the package.json file at path in place.
func UpdatePackageJSON(path string, scripts []Script) ([]string, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	updated, added, err := AddScripts(doc, scripts)
	if err != nil {
		return nil, err
	}
	if len(added) == 0 {
		return nil, nil
	}

	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", path, err)
	}

	return added, nil
}
