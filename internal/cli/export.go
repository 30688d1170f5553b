package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/law-makers/profilehunt/internal/app"
	"github.com/law-makers/profilehunt/internal/ui"
	"github.com/law-makers/profilehunt/internal/utils/output"
	"github.com/law-makers/profilehunt/pkg/models"
)

// export saves rs to the --output path, if one was given
func export(cmd *cobra.Command, a *app.Application, rs *models.ResultSet) error {
	path := a.Config.Output
	if path == "" {
		return nil
	}
	if err := output.Save(rs, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	if a.Config.LogLevel != "error" {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("✓ Saved to "+path))
	}
	return nil
}
