// Package iconctl implements the icon command line: render, list and search
// the built-in catalog.
package iconctl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	apperrors "github.com/sunit1986/JioBharatIQ-Server/internal/platform/errors"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/icons"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/theme"
)

type rootFlags struct {
	themeFile string
	json      bool
}

// resolver builds the resolver for one invocation, honoring --theme.
func (f *rootFlags) resolver() (*icons.Resolver, error) {
	if f.themeFile == "" {
		return icons.NewResolver(nil), nil
	}
	th, err := theme.Load(f.themeFile)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeThemeInvalid, "load theme", err)
	}
	return icons.NewResolver(nil, icons.WithTheme(th)), nil
}

// NewRootCmd builds the iconctl command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "iconctl",
		Short:         "Render and browse the icon catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.themeFile, "theme", "", "YAML palette replacing the built-in theme")
	cmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Output in JSON format")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newCatalogCmd())

	return cmd
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "iconctl: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if apperrors.IsCode(err, apperrors.CodeIconNotFound) {
		return 1
	}
	return 2
}

type renderOptions struct {
	color string
	size  string
	style string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Write an icon as styled SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.color, "color", "", "Color token or hex literal")
	cmd.Flags().StringVar(&opts.size, "size", "", "Size token or pixel count")
	cmd.Flags().StringVar(&opts.style, "style", "", "Inline CSS applied last")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions, name string) error {
	resolver, err := root.resolver()
	if err != nil {
		return err
	}
	result := resolver.Resolve(name, theme.NewProps(opts.color, opts.size, opts.style))
	if !result.Found() {
		return apperrors.WithMetadata(apperrors.CodeIconNotFound,
			fmt.Sprintf("icon not found: %s", name),
			map[string]string{"key": string(resolver.Normalize(name))})
	}

	if root.json {
		return writeJSON(cmd.OutOrStdout(), map[string]string{
			"key": string(result.Key()),
			"svg": result.String(),
		})
	}
	if err := result.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("render %s: %w", result.Key(), err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout())
	return err
}

type listOptions struct {
	category string
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List icon keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only list icons in this category")

	return cmd
}

func runList(cmd *cobra.Command, root *rootFlags, opts *listOptions) error {
	defs := icons.Catalog()
	keys := icons.KeysIn(defs, opts.category)
	if root.json {
		return writeJSON(cmd.OutOrStdout(), keys)
	}

	categories := make(map[icons.Key]string, len(defs))
	for _, def := range icons.Unique(defs) {
		categories[def.Key] = def.Category
	}
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tNAME\tCATEGORY")
	for _, key := range keys {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", key, icons.SnakeName(key), categories[key])
	}
	return writer.Flush()
}

type searchOptions struct {
	limit int
}

func newSearchCmd(root *rootFlags) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search icons by name and keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, root, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().IntVar(&opts.limit, "limit", icons.DefaultSearchLimit, "Maximum number of matches")

	return cmd
}

func runSearch(cmd *cobra.Command, root *rootFlags, opts *searchOptions, query string) error {
	result, err := icons.Find(icons.Catalog(), query, opts.limit)
	if err != nil {
		return err
	}
	if root.json {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	if len(result.Matches) == 0 {
		fmt.Fprintf(out, "No icons match %q.\n", result.Query)
		if len(result.MatchingCategories) > 0 {
			fmt.Fprintf(out, "Matching categories: %s\n", strings.Join(result.MatchingCategories, ", "))
		}
		if len(result.Suggestions) > 0 {
			names := make([]string, 0, len(result.Suggestions))
			for _, key := range result.Suggestions {
				names = append(names, icons.SnakeName(key))
			}
			fmt.Fprintf(out, "Did you mean: %s\n", strings.Join(names, ", "))
		}
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tNAME\tCATEGORY\tMATCH")
	for _, match := range result.Matches {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", match.Key, match.Name, match.Category, match.MatchType)
	}
	return writer.Flush()
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the icon catalog as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), icons.CatalogMarkdown())
			return err
		},
	}
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
