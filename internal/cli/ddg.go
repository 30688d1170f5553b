// internal/cli/ddg.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/law-makers/profilehunt/internal/app"
	"github.com/law-makers/profilehunt/internal/reqctx"
	"github.com/law-makers/profilehunt/internal/utils/output"
)

var (
	ddgName   string
	ddgPaired bool
	ddgRender bool
)

// ddgCmd represents the deep feed command
var ddgCmd = &cobra.Command{
	Use:   "ddg --name <company>",
	Short: "Walk the DuckDuckGo deep result feed for LinkedIn profiles",
	Long: `Loads the DuckDuckGo results page for "site:linkedin.com/in <company>",
follows the preloaded deep result script and every continuation page it
advertises, then prints the names and profile URLs found.

The chain stops when a page has no continuation, when a page adds nothing
new, or when the page limit (PROFILEHUNT_DDG_MAX_PAGES) is reached.`,
	Example: `  # Search by company name
  profilehunt ddg --name "Acme Corp"

  # Legacy spelling is still accepted
  profilehunt -Name "Acme Corp"

  # Print each URL with the name found next to it
  profilehunt ddg --name "Acme Corp" --paired

  # Render the front page in headless Chrome and export to CSV
  profilehunt ddg --name "Acme Corp" --render -o acme.csv`,
	Args: cobra.NoArgs,
	RunE: runDDG,
}

func init() {
	rootCmd.AddCommand(ddgCmd)

	ddgCmd.Flags().StringVar(&ddgName, "name", "", "Company name to search for")
	ddgCmd.Flags().BoolVar(&ddgPaired, "paired", false, "Print each URL with the name from the same record")
	ddgCmd.Flags().BoolVar(&ddgRender, "render", false, "Load the front page in headless Chrome")
	ddgCmd.MarkFlagRequired("name")
}

func runDDG(cmd *cobra.Command, args []string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}
	ctx := cmd.Context()
	logger := reqctx.Logger(ctx)

	client := a.NewDDG(app.DDGOptions{Render: ddgRender})
	logger.Info().Str("name", ddgName).Bool("render", ddgRender).Msg("Searching deep result feed")

	rs, err := client.Search(ctx, ddgName)
	if err != nil {
		return reqctx.NewRunError(ctx, err)
	}

	if err := output.WriteDeepText(cmd.OutOrStdout(), rs, ddgPaired); err != nil {
		return err
	}
	return export(cmd, a, rs)
}
