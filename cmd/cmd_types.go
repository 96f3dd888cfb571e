package cmd

import (
	"fmt"
	"io"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zbiljic/jskit/pkg/commit"
	"github.com/zbiljic/jskit/pkg/release"
)

var typesCmd = &cobra.Command{
	Use:         "types",
	Short:       "List the commit types",
	Long:        `Lists the commit types of the vocabulary with the release each one triggers.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runTypesE,
}

var typesFlags = typesOptions{}

func typesAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&typesFlags.Rules, "release-rules", false, "Print the semantic-release releaseRules for the vocabulary")
}

func init() {
	typesAddFlags(typesCmd)

	rootCmd.AddCommand(typesCmd)
}

type typesOptions struct {
	Rules bool
}

func writeTypes(w io.Writer, v *commit.Vocabulary) {
	width := lo.Max(lo.Map(v.Names(), func(name string, _ int) int {
		return len(name)
	}))

	for _, e := range v.Entries() {
		fmt.Fprintf(w, "%s  %s  %s\n",
			picocolors.Cyan(strutil.PadEnd(e.Name, width, " ")),
			strutil.PadEnd(e.Release.ID(), len("minor"), " "),
			e.Description,
		)
	}
}

func runTypesE(cmd *cobra.Command, args []string) error {
	v, err := appConfig.Vocabulary()
	if err != nil {
		return err
	}

	if !typesFlags.Rules {
		writeTypes(cmd.OutOrStdout(), v)
		return nil
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"releaseRules": release.Rules(v)}); err != nil {
		return err
	}
	return enc.Close()
}
