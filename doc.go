// Package main provides the sugarctl command-line interface.
//
// sugarctl is a thin client for the Sugar candy machine tool suite. Every
// Sugar operation is exposed as a subcommand whose flags map one-to-one onto
// the operation's parameters; flags that are not given are passed on as
// absent so the implementation applies its own defaults.
//
// Commands are forwarded to one of two backends:
//   - exec: run the sugar binary as a subprocess (the default)
//   - remote: send the call over a Unix socket to "sugarctl serve"
//
// Configuration comes from SUGARCTL_* environment variables, with command-line
// flags taking precedence.
package main
