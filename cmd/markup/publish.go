package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/publish"
	"github.com/vango-dev/markup/pkg/render"
)

func publishCmd(a *app) *cobra.Command {
	var (
		key  string
		gzip bool
	)

	cmd := &cobra.Command{
		Use:   "publish FILE",
		Short: "Render a document and upload it",
		Long: `Render a document and store the HTML.

Documents go to publish.bucket when it is set, otherwise to the local
publish.dir. S3 credentials are read from AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Without --key the document is stored under a random name.

Examples:
  markup publish page.yaml --key guides/index.html
  markup publish page.yaml --gzip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("gzip") {
				a.cfg.Publish.Gzip = gzip
			}
			return a.runPublish(cmd, args[0], key)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Object key (default: random)")
	cmd.Flags().BoolVar(&gzip, "gzip", false, "Store gzip-compressed HTML (default from markup.json)")

	return cmd
}

func (a *app) runPublish(cmd *cobra.Command, file, key string) error {
	store, err := a.store()
	if err != nil {
		return err
	}

	root, err := a.load(cmd.InOrStdin(), file)
	if err != nil {
		return err
	}

	p := publish.New(store,
		publish.WithGzip(a.cfg.Publish.Gzip),
		publish.WithLogger(a.logger),
		publish.WithRenderer(render.NewRenderer(render.RendererConfig{Logger: a.logger})),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := p.Publish(ctx, key, root)
	if err != nil {
		return err
	}

	success(cmd.ErrOrStderr(), "Published %s", result.Location)
	info(cmd.ErrOrStderr(), "%d bytes stored", result.Size)
	return nil
}

// store picks the configured publish backend.
func (a *app) store() (publish.Store, error) {
	pc := a.cfg.Publish
	if pc.Bucket != "" {
		return publish.NewS3Store(publish.NewS3Client(pc), pc.Bucket, pc.Prefix), nil
	}
	if dir := a.cfg.PublishPath(); dir != "" {
		store, err := publish.NewDiskStore(dir)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, errors.New("E120").
		WithDetail("no publish target configured").
		WithSuggestion("Set publish.bucket or publish.dir in " + config.ConfigFileName)
}
