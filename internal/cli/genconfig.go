package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/xml2conf/pkg/config"
	"github.com/arthur-debert/xml2conf/pkg/filesystem"
	"github.com/arthur-debert/xml2conf/pkg/ui/styles"
)

// newGenConfigCmd creates the gen-config command
func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !write {
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			path, err := config.WriteUserConfig(filesystem.NewOS())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, MsgConfigWritten, styles.NewTheme(out).Render("FilePath", path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
