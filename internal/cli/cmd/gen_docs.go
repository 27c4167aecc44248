package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/hotbarscroll/internal/infrastructure/config"
	"github.com/bnema/hotbarscroll/internal/logging"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for every command",
	Long: `Generate reference pages for hotbarscroll and its subcommands.

The root page also documents the settings file and the environment
variables that override it.

Man pages go to $XDG_DATA_HOME/man/man1 unless --output is given, so
'man hotbarscroll' works right away (run 'mandb' if it does not).
Markdown goes to ./docs.

Examples:
  hotbarscroll gen-docs
  hotbarscroll gen-docs --format markdown
  hotbarscroll gen-docs --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

type docWriter struct {
	ext      string
	generate func(root *cobra.Command, dir string) error
}

func docWriterFor(format string) (docWriter, error) {
	switch format {
	case "man":
		header := &doc.GenManHeader{
			Title:   "HOTBARSCROLL",
			Section: "1",
			Source:  "hotbarscroll " + buildInfo.Version,
			Manual:  "hotbarscroll Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		return docWriter{ext: ".1", generate: func(root *cobra.Command, dir string) error {
			return doc.GenManTree(root, header, dir)
		}}, nil
	case "markdown":
		return docWriter{ext: ".md", generate: doc.GenMarkdownTree}, nil
	default:
		return docWriter{}, fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
}

func defaultDocsDir(format string) (string, error) {
	if format == "markdown" {
		return "docs", nil
	}
	dir, err := config.GetManDir()
	if err != nil {
		return "", fmt.Errorf("resolve man directory: %w", err)
	}
	return dir, nil
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	writer, err := docWriterFor(genDocsFormat)
	if err != nil {
		return err
	}

	dir := genDocsOutputDir
	if dir == "" {
		if dir, err = defaultDocsDir(genDocsFormat); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	root := cmd.Root()
	long := root.Long
	root.Long = long + "\n\n" + settingsReference()
	root.DisableAutoGenTag = true
	defer func() { root.Long = long }()

	if err := writer.generate(root, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}
	return listGenerated(cmd.OutOrStdout(), dir, writer.ext)
}

// settingsReference describes the settings file and its environment
// overrides for the root page.
func settingsReference() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Settings file:\n  %s (override with --config)\n\n", config.ConfigFileHint)
	b.WriteString("Environment overrides, applied on top of the settings file:\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, o := range config.EnvOverrides() {
		fmt.Fprintf(tw, "  %s\t%s\t(default %q)\n", o.Name, o.Key, fmt.Sprint(o.Default))
	}
	fmt.Fprintf(tw, "  %s\t%s\n", logging.EnvLevel, "log level before the settings file is read")
	fmt.Fprintf(tw, "  %s\t%s\n", logging.EnvFormat, "log format before the settings file is read")
	_ = tw.Flush()

	return b.String()
}

func listGenerated(w io.Writer, dir, ext string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}

	fmt.Fprintf(w, "Generated docs in %s\n", dir)
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
	if ext == ".1" && genDocsOutputDir == "" {
		fmt.Fprintln(w, "Run 'mandb' if 'man hotbarscroll' does not find them.")
	}
	return nil
}
