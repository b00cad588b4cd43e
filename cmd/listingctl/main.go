package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"servicemart/internal/config"
	"servicemart/internal/payload"
	"servicemart/internal/validator"
)

var (
	jsonOutput bool

	cfg              *config.Config
	builder          *payload.Builder
	listingValidator *validator.Validator
)

var rootCmd = &cobra.Command{
	Use:           "listingctl",
	Short:         "Build, validate and inspect marketplace listing payloads offline",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		builder = payload.NewBuilder(payload.Options{
			Currency:    cfg.Listing.DefaultCurrency,
			Country:     cfg.Listing.DefaultCountry,
			City:        cfg.Listing.DefaultCity,
			KnownCities: cfg.Listing.KnownCities,
		})
		listingValidator = validator.Default()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(enumsCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
