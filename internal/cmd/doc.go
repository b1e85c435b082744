// Package cmd provides the command-line interface implementation for sugarctl.
//
// Each Sugar operation is implemented in its own constructor returning a
// *cobra.Command. Commands translate their flags into the matching
// sugar parameter struct and call the façade built by the shared App, which
// forwards to the exec or remote backend. Nested operations such as
// "collection set" or "freeze thaw" are grouped under parent commands.
//
// The root command groups subcommands into deployment, candy machine
// management and utility sections, and Fang renders the help output.
package cmd
