// Package envfile merges a local .env file over the process environment and
// checks that required variables are present.
package envfile

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// DefaultPath is the .env file looked up in the working directory.
const DefaultPath = ".env"

// Env is a set of environment variables.
type Env map[string]string

// FromEnviron builds an Env from "KEY=value" pairs as returned by
// os.Environ.
func FromEnviron(environ []string) Env {
	env := make(Env, len(environ))
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Read returns the process environment with the variables of the .env file
// at path merged on top. A missing file is not an error.
func Read(path string) (Env, error) {
	env := FromEnviron(os.Environ())

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return env, nil
		}
		return nil, err
	}

	parsed, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s file: %w", path, err)
	}

	for k, v := range parsed {
		env[k] = v
	}

	return env, nil
}

// Environ returns the variables as sorted "KEY=value" pairs, suitable for
// exec.Cmd.Env.
func (e Env) Environ() []string {
	keys := lo.Keys(e)
	sort.Strings(keys)

	return lo.Map(keys, func(k string, _ int) string {
		return k + "=" + e[k]
	})
}

// Missing returns the names from required that are not defined, keeping
// their order. A variable set to the empty string counts as defined.
func (e Env) Missing(required ...string) []string {
	return lo.Filter(required, func(name string, _ int) bool {
		_, ok := e[name]
		return !ok
	})
}

// Validate returns a *MissingVarsError when any of the required variables
// is not defined.
func Validate(env Env, required ...string) error {
	missing := env.Missing(required...)
	if len(missing) > 0 {
		return &MissingVarsError{Names: missing}
	}
	return nil
}

// MissingVarsError lists required environment variables that are not
// defined.
type MissingVarsError struct {
	Names []string
}

func (e *MissingVarsError) Error() string {
	return "the following env vars must be defined in order to execute this command: " + strings.Join(e.Names, ", ")
}

// Help returns guidance on defining the missing variables, locally through a
// .env file or in CI.
func (e *MissingVarsError) Help() string {
	var sb strings.Builder

	sb.WriteString("If you are running this command locally, you can define those env vars for this project by creating a file called .env at the project root with the format:\n\n")
	sb.WriteString("// .env\n\n")
	for _, name := range e.Names {
		fmt.Fprintf(&sb, "%s = value\n", name)
	}
	sb.WriteString("\nIf you are running this command within a CI environment, make sure that those env vars are properly injected into the CI runner")

	return sb.String()
}
