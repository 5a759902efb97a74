package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Translate an XML configuration into key = value; syntax"
	MsgGenConfigShort = "Print the default configuration"

	// Status messages
	MsgTranslated    = "Translation completed successfully. Output saved to %s."
	MsgDryRunNotice  = "DRY RUN MODE - %s was not written"
	MsgConfigWritten = "Configuration written to %s\n"
	MsgErrorPrefix   = "Error:"

	// Flag descriptions
	MsgFlagOutput  = "Path of the configuration file to write (required)"
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Print the translated configuration instead of writing it"
	MsgFlagConfig  = "Settings file layered over the defaults and user config"
	MsgFlagWrite   = "Write the configuration to the user config location"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
