package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilegrid/pkg/pipeline"
	"github.com/matzehuels/tilegrid/pkg/render/styles"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for tilegrid.

Load it for the current session:

  bash:        source <(tilegrid completion bash)
  zsh:         source <(tilegrid completion zsh)
  fish:        tilegrid completion fish | source
  powershell:  tilegrid completion powershell | Out-String | Invoke-Expression

To load it for every session, write the script to your shell's completion
directory, e.g. tilegrid completion zsh > "${fpath[1]}/_tilegrid".

Besides subcommands and flags, values of --mode, --order, --aspect,
--format and --style are completed.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// commonAspects are offered for --aspect; any W:H is accepted.
var commonAspects = []string{
	"5:8\tdefault",
	"1:1\tsquare",
	"2:3\tportrait photo",
	"3:4\tportrait",
	"4:3\tlandscape",
	"16:9\twidescreen",
}

// registerValueCompletions adds value completion to whichever option flags
// cmd defines.
func registerValueCompletions(cmd *cobra.Command) {
	fixed := map[string][]string{
		"mode":   {"best\tlargest tiles", "columns\tfixed column count", "rows\tfixed row count"},
		"order":  {"row\tfill rows first", "column\tfill columns first"},
		"aspect": commonAspects,
		"style":  styles.Names(),
	}
	for name, values := range fixed {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}

	if cmd.Flags().Lookup("format") != nil {
		_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	}
}

// completeFormats completes the last element of a comma-separated list,
// skipping formats already given.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	used := map[string]bool{}
	for _, f := range pipeline.ParseFormats(prefix) {
		used[f] = true
	}

	var out []string
	for _, f := range pipeline.ValidFormats {
		if !used[f] {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
