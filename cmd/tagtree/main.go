package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌─┐┌┬┐┬─┐┌─┐┌─┐
   │ ├─┤│ ┬ │ ├┬┘├┤ ├┤
   ┴ ┴ ┴└─┘ ┴ ┴└─└─┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "tagtree",
		Short: "Build, preview and publish markup documents",
		Long: `Tagtree renders declarative document definitions to markup.

A document is described in YAML as a tree of tagged nodes with attributes
and content. Tagtree builds the tree, escapes reserved characters, and
serializes it:

  • tagtree build    renders the document to a file
  • tagtree serve    previews it locally with live reload
  • tagtree publish  uploads the rendered document to S3

Project defaults live in tagtree.json next to the document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		buildCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the tagtree ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
