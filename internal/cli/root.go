// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/profilehunt/internal/app"
	"github.com/law-makers/profilehunt/internal/config"
	"github.com/law-makers/profilehunt/internal/reqctx"
	"github.com/law-makers/profilehunt/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "profilehunt",
	Short: "Discover LinkedIn profiles of a company's staff through search engines",
	Long: `Profilehunt queries search engines for LinkedIn profile pages that mention a
company name or domain and extracts candidate names and profile URLs.

Two independent sources are available:
- ddg walks the DuckDuckGo deep result feed (no credentials needed)
- serper calls the Serper search API with several templated queries`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	rootCmd.SetArgs(NormalizeArgs(os.Args[1:], commandNames(rootCmd)))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	// Lazily initialize the application before running commands (avoid starting app for -h/help)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetAppFromCmd(cmd) != nil {
			return nil
		}

		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		appCtx, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		cmd.SetContext(reqctx.WithRunContext(cmd.Context()))
		SetApp(cmd, appCtx)

		reqctx.Logger(cmd.Context()).Debug().
			Str("command", cmd.CommandPath()).
			Str("user_agent", cfg.UserAgent).
			Msg("Configuration loaded")
		return nil
	}

	// Ensure app is closed after command runs
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		appCtx := GetAppFromCmd(cmd)
		if appCtx == nil {
			return
		}
		_ = appCtx.Close(cmd.Context())
		SetApp(cmd, nil)
	}

	// Register centralized flags
	config.RegisterFlags(rootCmd)

	rootCmd.Flags().BoolP("help", "h", false, "Help for profilehunt")
	rootCmd.Flags().Bool("version", false, "Version for profilehunt")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpFunc(customHelpFunc)
	rootCmd.SetUsageFunc(customUsageFunc)
}

func commandNames(cmd *cobra.Command) []string {
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
		names = append(names, c.Aliases...)
	}
	return names
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s%s%s\n", ui.ColorBold+ui.ColorWhite, title, ui.ColorReset)
}

// customHelpFunc provides a colorized help output
func customHelpFunc(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "\n%s%s%s\n", ui.ColorBold+ui.ColorCyan, strings.ToUpper(cmd.Name()), ui.ColorReset)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s\n", cmd.Short)
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Fprintf(w, "\n%s\n", wrapText(cmd.Long, 80))
	}

	printUsageLines(w, cmd)

	if cmd.HasExample() {
		section(w, "Examples")
		lastWasCommand := false
		for _, example := range strings.Split(cmd.Example, "\n") {
			trimmed := strings.TrimSpace(example)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				if lastWasCommand {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "  %s%s%s\n", ui.ColorDim, trimmed, ui.ColorReset)
				lastWasCommand = false
				continue
			}
			fmt.Fprintf(w, "  %s$ %s%s\n", ui.ColorGreen, trimmed, ui.ColorReset)
			lastWasCommand = true
		}
	}

	printCommands(w, cmd)

	if cmd.HasAvailableLocalFlags() {
		section(w, "Flags")
		printFlagsTo(w, cmd.LocalFlags().FlagUsages())
	}
	if cmd.HasAvailableInheritedFlags() {
		section(w, "Global Flags")
		printFlagsTo(w, cmd.InheritedFlags().FlagUsages())
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "\n%sUse \"%s%s%s %s<command>%s %s--help%s\" for more information about a command.%s\n",
			ui.ColorDim,
			ui.ColorCyan, cmd.CommandPath(), ui.ColorReset+ui.ColorDim,
			ui.ColorYellow, ui.ColorReset+ui.ColorDim,
			ui.ColorGreen, ui.ColorReset+ui.ColorDim,
			ui.ColorReset)
	}
	fmt.Fprintln(w)
}

// customUsageFunc provides a colorized usage output
func customUsageFunc(cmd *cobra.Command) error {
	w := cmd.ErrOrStderr()

	printUsageLines(w, cmd)
	printCommands(w, cmd)

	if cmd.HasAvailableLocalFlags() {
		section(w, "Flags")
		printFlagsTo(w, cmd.LocalFlags().FlagUsages())
	}

	fmt.Fprintf(w, "\n%sUse \"%s%s%s %s--help%s\" for more information.%s\n",
		ui.ColorDim,
		ui.ColorCyan, cmd.CommandPath(), ui.ColorReset+ui.ColorDim,
		ui.ColorGreen, ui.ColorReset+ui.ColorDim,
		ui.ColorReset)
	return nil
}

func printUsageLines(w io.Writer, cmd *cobra.Command) {
	section(w, "Usage")
	if cmd.Runnable() {
		fmt.Fprintf(w, "  %s%s%s\n", ui.ColorCyan, cmd.UseLine(), ui.ColorReset)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "  %s%s%s %s<command>%s %s[flags]%s\n",
			ui.ColorCyan, cmd.CommandPath(), ui.ColorReset,
			ui.ColorYellow, ui.ColorReset,
			ui.ColorDim, ui.ColorReset)
	}
}

func printCommands(w io.Writer, cmd *cobra.Command) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	section(w, "Commands")

	maxLen := 0
	var available []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() && c.Name() != "help" {
			available = append(available, c)
			if len(c.Name()) > maxLen {
				maxLen = len(c.Name())
			}
		}
	}

	for _, c := range available {
		padding := strings.Repeat(" ", maxLen-len(c.Name())+2)
		fmt.Fprintf(w, "  %s%s%s%s%s%s%s\n",
			ui.ColorCyan, c.Name(), ui.ColorReset,
			padding,
			ui.ColorDim, c.Short, ui.ColorReset)
	}
}

// printFlagsTo prints flag usages with color formatting to the specified writer
func printFlagsTo(w io.Writer, flagUsages string) {
	lines := strings.Split(flagUsages, "\n")

	maxFlagLen := 28
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "-") {
			flagPart := strings.TrimSpace(strings.SplitN(trimmed, "  ", 2)[0])
			if len(flagPart) > maxFlagLen {
				maxFlagLen = len(flagPart)
			}
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")

		if !strings.HasPrefix(trimmed, "-") {
			// Continuation line (description continues)
			fmt.Fprintf(w, "%s%s%s%s\n", strings.Repeat(" ", maxFlagLen+4), ui.ColorDim, trimmed, ui.ColorReset)
			continue
		}

		parts := strings.SplitN(trimmed, "  ", 2)
		if len(parts) != 2 {
			fmt.Fprintf(w, "  %s%s%s\n", ui.ColorGreen, trimmed, ui.ColorReset)
			continue
		}
		flagPart := strings.TrimSpace(parts[0])
		descPart := strings.TrimSpace(parts[1])
		fmt.Fprintf(w, "  %s%s%s%s%s%s%s\n",
			ui.ColorGreen, flagPart, ui.ColorReset,
			strings.Repeat(" ", maxFlagLen-len(flagPart)+2),
			ui.ColorDim, descPart, ui.ColorReset)
	}
}

// wrapText wraps text at the specified width while preserving paragraphs and list items
func wrapText(text string, width int) string {
	var paragraphs []string

	for _, para := range strings.Split(text, "\n\n") {
		var wrapped []string

		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
				wrapped = append(wrapped, line)
				continue
			}

			var current strings.Builder
			for _, word := range strings.Fields(line) {
				switch {
				case current.Len() == 0:
					current.WriteString(word)
				case current.Len()+1+len(word) <= width:
					current.WriteString(" ")
					current.WriteString(word)
				default:
					wrapped = append(wrapped, current.String())
					current.Reset()
					current.WriteString(word)
				}
			}
			if current.Len() > 0 {
				wrapped = append(wrapped, current.String())
			}
		}

		if len(wrapped) > 0 {
			paragraphs = append(paragraphs, strings.Join(wrapped, "\n"))
		}
	}

	return strings.Join(paragraphs, "\n\n")
}
