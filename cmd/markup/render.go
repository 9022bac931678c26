package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/vdom"
)

func renderCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a document to HTML",
		Long: `Render a JSON or YAML document to HTML.

FILE may be "-" to read a document from stdin. Without --output the
HTML is written to stdout. The output file is only written when the
whole document rendered.

Examples:
  markup render page.yaml
  markup render page.json -o public/index.html
  cat page.yaml | markup render -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write HTML to this file instead of stdout")

	return cmd
}

func (a *app) runRender(cmd *cobra.Command, file, output string) error {
	root, err := a.load(cmd.InOrStdin(), file)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(render.RendererConfig{Logger: a.logger})

	var buf bytes.Buffer
	stats, err := renderer.Render(&buf, root)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.New("E113").WithDetail(output).Wrap(err)
		}
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return errors.New("E113").WithDetail(output).Wrap(err)
	}

	success(cmd.ErrOrStderr(), "Rendered %s", output)
	info(cmd.ErrOrStderr(), "%d bytes, %d iterations", stats.Bytes, stats.Iterations)
	return nil
}

// load decodes file, or stdin when file is "-".
func (a *app) load(stdin io.Reader, file string) (vdom.Component, error) {
	if file != "-" {
		return a.decoder().DecodeFile(file)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.New("E112").WithDetail("stdin").Wrap(err)
	}
	return a.decoder().Decode(data, "stdin")
}
