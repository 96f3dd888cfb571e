package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

// addCommonLLMFlags adds the common LLM provider and model flags to a command
func addCommonLLMFlags(cmd *cobra.Command, provider *ProviderType, model *string) {
	cmd.Flags().VarP(enumflag.New(provider, "provider", ProviderIds, enumflag.EnumCaseInsensitive), "provider", "p", "LLM provider to use (openai, claude, googleai)")
	cmd.Flags().StringVarP(model, "model", "m", "", "Specific model to use for the selected provider")
}

// addMessageFileFlag adds the flag naming the file holding a commit message
func addMessageFileFlag(cmd *cobra.Command, file *string) {
	cmd.Flags().StringVarP(file, "file", "f", "", "Read the commit message from this file (defaults to .git/COMMIT_EDITMSG)")
}

// addFormatFlag adds the output format flag to a command
func addFormatFlag(cmd *cobra.Command, format *OutputFormat) {
	cmd.Flags().VarP(enumflag.New(format, "format", OutputFormatIds, enumflag.EnumCaseInsensitive), "format", "o", "Output format (text, json)")
}
