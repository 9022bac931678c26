package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template    string
		description string
		port        int
	)

	cmd := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Create markup.json and starter documents",
		Long: `Create markup.json and starter documents in DIR (default: .).

Templates:
  minimal   A config file and one document (default)
  site      Several documents with metrics and local publishing

Examples:
  markup init
  markup init docs-site --template=site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, template, description, port)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "minimal", "Project template ("+strings.Join(templates.List(), ", ")+")")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Render server port")

	return cmd
}

func runInit(cmd *cobra.Command, dir, templateName, description string, port int) error {
	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return err
	}

	cfg := templates.Config{
		ProjectName: filepath.Base(abs),
		Description: description,
		Port:        port,
	}
	if err := tmpl.Create(abs, cfg); err != nil {
		return err
	}

	w := cmd.ErrOrStderr()
	success(w, "Created %s project in %s", tmpl.Name, abs)
	info(w, "markup render %s", filepath.Join(dir, "docs", "index.yaml"))
	info(w, "markup serve --config %s", filepath.Join(dir, "markup.json"))
	return nil
}
