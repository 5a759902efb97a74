package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/xml2conf/pkg/logging"
	"github.com/arthur-debert/xml2conf/pkg/ui/styles"
)

// Run executes the root command and maps its outcome to an exit status.
// Failures are reported as one "Error: <message>" line on stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	defer func() { _ = logging.Close() }()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		theme := styles.NewTheme(stderr)
		_, _ = fmt.Fprintf(stderr, "%s %v\n", theme.Render("Error", MsgErrorPrefix), err)
		return 1
	}
	return 0
}
