package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"servicemart/internal/domain"
	"servicemart/internal/payload"
	"servicemart/internal/validator"
)

var errInvalidListing = errors.New("listing is invalid")

var buildCmd = &cobra.Command{
	Use:   "build <category> <form-file>",
	Short: "Build the canonical payload from a JSON or TOML form file",
	Long: `Build the canonical listing payload from raw form state.

The form file is JSON, or TOML when it ends in .toml. Use "-" to read JSON
from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildFromArgs(cmd, args)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), p)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <category> <form-file>",
	Short: "Build a payload and report every validation error",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildFromArgs(cmd, args)
		if err != nil {
			return err
		}
		res := listingValidator.Validate(p)
		if jsonOutput {
			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
		} else {
			printValidation(cmd.OutOrStdout(), res)
		}
		if !res.IsValid {
			return errInvalidListing
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{buildCmd, validateCmd} {
		c.Flags().String("business", "", "business ID to stamp on the payload")
		c.Flags().StringSlice("image-url", nil, "uploaded image URL (repeatable)")
	}
}

func buildFromArgs(cmd *cobra.Command, args []string) (payload.Payload, error) {
	businessID, _ := cmd.Flags().GetString("business")
	imageURLs, _ := cmd.Flags().GetStringSlice("image-url")

	form, err := loadForm(args[1], cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	category := domain.Category(strings.ToUpper(strings.TrimSpace(args[0])))
	return builder.Build(category, form, businessID, payload.URLImages(imageURLs...))
}

func printValidation(w io.Writer, res validator.ValidationResult) {
	if res.IsValid {
		fmt.Fprintln(w, "valid")
		return
	}
	printErrors(w, "common", res.Errors.Common)
	printErrors(w, "category", res.Errors.Category)
}

func printErrors(w io.Writer, group string, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "%-9s %-22s %s\n", group, f, errs[f])
	}
}
