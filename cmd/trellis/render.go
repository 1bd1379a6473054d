package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trellis-ui/trellis/pkg/errlog"
	"github.com/trellis-ui/trellis/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		pretty bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render a manifest to HTML",
		Long: `Materialize a component manifest and write the rendered HTML.

Output goes to stdout unless --out (or render.output in trellis.json)
names a file.

Examples:
  trellis render
  trellis render app.yaml --pretty
  trellis render app.yaml --out dist/index.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var manifestArg string
			if len(args) > 0 {
				manifestArg = args[0]
			}
			return runRender(manifestArg, pretty, out)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func runRender(manifestArg string, pretty bool, out string) error {
	cfg, m, err := loadProject(manifestArg)
	if err != nil {
		return err
	}
	if pretty {
		cfg.Render.Pretty = true
	}
	if out != "" {
		cfg.Render.Output = out
	}

	log := errlog.New(errlog.NewMemStore(), 0)
	tree := m.Materialize(nil, withEngineObservers(log)...)
	defer tree.Destroy()
	tree.Startup()

	root := tree.Root()
	if root == nil {
		return fmt.Errorf("manifest %q produced no root instance", m.Name)
	}

	r := render.New(render.Config{Pretty: cfg.Render.Pretty, Indent: cfg.Render.Indent})
	html, err := r.ToString(root.Node())
	if err != nil {
		return err
	}

	reportEngineConditions(log)

	if cfg.Render.Output == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(cfg.Render.Output, []byte(html+"\n"), 0o644); err != nil {
		return err
	}
	success("wrote %s (%d bytes)", cfg.Render.Output, len(html))
	return nil
}

// reportEngineConditions surfaces recorded engine conditions (orphaned
// attachments and the like) as warnings.
func reportEngineConditions(log *errlog.Log) {
	entries, err := log.Entries()
	if err != nil {
		return
	}
	for _, e := range entries {
		warn("%s: %s", e.Source, e.Message)
	}
}
