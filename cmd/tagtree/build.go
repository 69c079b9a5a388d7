package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree/internal/config"
	"github.com/tagtree-dev/tagtree/pkg/doc"
)

func buildCmd() *cobra.Command {
	var (
		docPath   string
		output    string
		separator string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the document definition to a file",
		Long: `Render the document definition to a markup file.

Examples:
  tagtree build
  tagtree build -f pages/home.yaml -o dist/home.html
  tagtree build --separator=""`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if docPath == "" {
				docPath = cfg.Document
			}
			if output == "" {
				output = cfg.Output
			}
			sep := cfg.Separator
			if cmd.Flags().Changed("separator") {
				sep = separator
			}

			html, err := renderDocument(docPath, sep)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
				return err
			}

			success("wrote %s (%d bytes)", output, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&docPath, "file", "f", "", "Document definition file (default from tagtree.json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default from tagtree.json)")
	cmd.Flags().StringVar(&separator, "separator", "", "Fragment separator (default from tagtree.json)")

	return cmd
}

// renderDocument loads, builds and renders a document definition.
func renderDocument(path, separator string) (string, error) {
	def, err := doc.Load(path)
	if err != nil {
		return "", err
	}
	root, err := def.Build()
	if err != nil {
		return "", err
	}
	return root.Render(separator), nil
}
