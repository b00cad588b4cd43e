package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"servicemart/internal/catalog"
	"servicemart/internal/domain"
)

var enumsCmd = &cobra.Command{
	Use:   "enums [category]",
	Short: "List enum fields with their tokens and labels",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := catalog.DefaultRegistry()
		schemas := registry.All()
		if len(args) == 1 {
			s := registry.Get(domain.Category(strings.ToUpper(args[0])))
			if s == nil {
				return fmt.Errorf("%w: %s", domain.ErrUnsupportedCategory, args[0])
			}
			schemas = []*catalog.Schema{s}
		}

		if jsonOutput {
			out := make(map[domain.Category]map[string][]catalog.Option, len(schemas))
			for _, s := range schemas {
				fields := make(map[string][]catalog.Option, len(s.Enums))
				for _, name := range s.EnumFieldNames() {
					fields[name] = catalog.Options(s.Category, name)
				}
				out[s.Category] = fields
			}
			return printJSON(cmd.OutOrStdout(), out)
		}

		w := cmd.OutOrStdout()
		for _, s := range schemas {
			fmt.Fprintf(w, "%s (%s)\n", s.Category, s.CategoryObject)
			for _, name := range s.EnumFieldNames() {
				multi := ""
				if s.Enums[name].Multi {
					multi = " [multi]"
				}
				fmt.Fprintf(w, "  %s%s\n", name, multi)
				for _, o := range catalog.Options(s.Category, name) {
					fmt.Fprintf(w, "    %-28s %s\n", o.Value, o.Label)
				}
			}
		}
		return nil
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate <category> <field> <value>",
	Short: "Translate a UI label to its enum token, or a token to its label with --reverse",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		reverse, _ := cmd.Flags().GetBool("reverse")
		category := domain.Category(strings.ToUpper(args[0]))
		if !category.Valid() {
			return fmt.Errorf("%w: %s", domain.ErrUnsupportedCategory, args[0])
		}

		if reverse {
			fmt.Fprintln(cmd.OutOrStdout(), catalog.EnumToLabel(category, args[1], args[2]))
			return nil
		}
		token, ok := catalog.LabelToEnum(category, args[1], args[2])
		if !ok {
			return errors.New("label is empty")
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	translateCmd.Flags().Bool("reverse", false, "translate a token to its label")
}
