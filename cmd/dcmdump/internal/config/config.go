// Package config defines the CLI flag surface shared between kong's parser
// and the command that runs against it.
package config

// GlobalConfig holds flags that apply regardless of which operation runs.
// dcmdump has only one operation, but the split from DumpCmd's own flags
// keeps logging/output concerns separate from DICOM parsing concerns, the
// same separation the command-group CLI this tool is descended from used.
type GlobalConfig struct {
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error"`
	Debug    bool   `name:"debug" help:"Enable debug mode (report caller in logs)"`
	Pretty   bool   `name:"pretty" help:"Pretty-print logs instead of JSON" default:"true" negatable:""`
}
