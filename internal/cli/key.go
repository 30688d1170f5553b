// internal/cli/key.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/law-makers/profilehunt/internal/credentials"
	"github.com/law-makers/profilehunt/internal/ui"
)

// keyCmd groups the API key management commands
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the Serper API key stored in the OS keyring",
	Long: `Stores the Serper API key in the operating system keyring so it does not
have to be exported in every shell. SERPER_API_KEY still takes precedence
when it is set.`,
}

var keySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Save the API key (prompts when no argument is given)",
	Example: `  # Prompt without echoing the key
  profilehunt key set

  # Pipe the key from a secret store
  pass show serper | profilehunt key set`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeySet,
}

var keyDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credentials.Delete(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("✓ API key removed"))
		return nil
	},
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the API key would be read from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		key, err := credentials.Resolve()
		if err != nil {
			fmt.Fprintf(w, "%s %s\n", ui.Info("No API key configured."), "Set "+credentials.EnvVar+" or run 'profilehunt key set'.")
			return nil
		}
		fmt.Fprintf(w, "  %s %s\n", ui.Bold("Source:"), credentials.GetSource())
		fmt.Fprintf(w, "  %s %s\n", ui.Bold("Key:"), credentials.Mask(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keySetCmd, keyDeleteCmd, keyStatusCmd)
}

func runKeySet(cmd *cobra.Command, args []string) error {
	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		read, err := readKey(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		key = read
	}

	if err := credentials.Store(key); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success("✓ API key saved to the OS keyring"))
	return nil
}

// readKey prompts on a terminal without echo, or reads the first line of piped input
func readKey(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Serper API key: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read key: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
