package delegate

// Tool is a wrapped binary together with its default arguments.
type Tool struct {
	Name string
	Args []string
}

// Default tool invocations. Extra command line arguments are appended.
var (
	ESLint = Tool{
		Name: "eslint",
		Args: []string{"--ext", ".js,.jsx,.ts,.tsx", "--ignore-path", ".gitignore", "."},
	}

	Prettier = Tool{
		Name: "prettier",
		Args: []string{"**/*.+(js|json|less|css|ts|tsx|md)", "--write", "--ignore-path", ".gitignore"},
	}

	// SemanticRelease runs with "--ci false" so a release can be cut locally.
	SemanticRelease = Tool{
		Name: "semantic-release",
		Args: []string{"--allow-same-version", "--ci", "false"},
	}

	Lerna = Tool{
		Name: "lerna",
		Args: []string{"publish", "--yes", "--conventional-commits", "--changelog-preset", "eslint"},
	}
)

// Options returns run options for the tool with extra arguments forwarded.
func (t Tool) Options(extraArgs ...string) *Options {
	return &Options{
		Name:      t.Name,
		Args:      append([]string(nil), t.Args...),
		ExtraArgs: extraArgs,
	}
}

// Override returns a copy of t with non-empty fields replaced.
func (t Tool) Override(name string, args []string) Tool {
	if name != "" {
		t.Name = name
	}
	if args != nil {
		t.Args = args
	}
	return t
}
