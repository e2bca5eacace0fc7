package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/statepane/statepane/color"
	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/icon"
	"github.com/statepane/statepane/internal/scraper"
	"github.com/statepane/statepane/provider"
	"github.com/statepane/statepane/style"
	"github.com/statepane/statepane/util"
	"github.com/statepane/statepane/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and custom sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print names only")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "List custom Lua sources only")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "List built-in sources only")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sources",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if !raw {
				cmd.Println(headerStyle(s))
			}
		}

		list := func(providers []*provider.Provider) {
			for _, p := range providers {
				if raw {
					cmd.Println(p.Name)
					continue
				}
				cmd.Printf("%s %s\n", p.Name, style.Faint(p.Description))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			list(provider.Builtins())
		}

		printCustom := func() {
			h("Custom:")
			list(provider.Customs())
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if !raw {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Name of the custom source to remove")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		sources, err := filesystem.API().ReadDir(where.Sources())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(sources, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, provider.CustomProviderExtension) {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove custom Lua sources",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+provider.CustomProviderExtension)
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInstallCmd)

	sourcesInstallCmd.Flags().StringP("name", "n", "", "Name to install the source under, defaults to the file name in the URL")
}

var sourcesInstallCmd = &cobra.Command{
	Use:   "install URL",
	Short: "Download a Lua source, or update it when it changed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		remote := args[0]

		name := lo.Must(cmd.Flags().GetString("name"))
		if name == "" {
			parsed, err := url.Parse(remote)
			handleErr(err)
			name = util.FileStem(path.Base(parsed.Path))
		}

		name = util.SanitizeFilename(name)
		if name == "" {
			handleErr(fmt.Errorf("cannot derive a source name from %s, use --name", remote))
		}

		local := filepath.Join(where.Sources(), name+provider.CustomProviderExtension)
		updated, err := scraper.Update(context.Background(), remote, local)
		handleErr(err)

		if updated {
			fmt.Printf("%s installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		} else {
			fmt.Printf("%s %s is up to date\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "Name of the new source")
	sourcesGenCmd.Flags().StringP("url", "u", "", "Base URL the source loads from")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a Lua source from a template",
	Long:  `Generate a Lua source that defines ` + constant.LoadFn + `(target) in the sources directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name   string
			URL    string
			LoadFn string
			Author string
		}{
			Name:   lo.Must(cmd.Flags().GetString("name")),
			URL:    lo.Must(cmd.Flags().GetString("url")),
			LoadFn: constant.LoadFn,
			Author: author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+provider.CustomProviderExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))

		cmd.Println(target)
	},
}
