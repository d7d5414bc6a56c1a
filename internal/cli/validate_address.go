package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/shiprate/internal/domain"
)

func validateAddressCmd(flags *rootFlags) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "validate-address",
		Short: "Validate and classify a street address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			sess, err := openSession(flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			req, err := sess.loader.LoadAddress(file)
			if err != nil {
				return err
			}

			res, err := sess.client.ValidateAddress(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printAddress(cmd.OutOrStdout(), res, format)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Address YAML file (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("file")
	return c
}

func printAddress(w io.Writer, res domain.AddressValidationResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "pretty", "":
		printPrettyAddress(w, res)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyAddress(w io.Writer, res domain.AddressValidationResult) {
	fmt.Fprintf(w, "Status:         %s\n", statusText(res.Status))
	fmt.Fprintf(w, "Valid:          %s\n", yesNo(res.Valid))
	fmt.Fprintf(w, "Ambiguous:      %s\n", yesNo(res.Ambiguous))
	fmt.Fprintf(w, "No candidates:  %s\n", yesNo(res.NoCandidates))
	if res.Classification.Code != "" {
		fmt.Fprintf(w, "Classification: %s %s\n", res.Classification.Code, res.Classification.Description)
	}
	fmt.Fprintf(w, "Candidates:     %d\n", len(res.Candidates))

	for _, c := range res.Candidates {
		fmt.Fprintf(w, "- %s\n", candidateText(c))
	}
}

func candidateText(c domain.AddressKey) string {
	parts := make([]string, 0, 4)
	if len(c.AddressLines) > 0 {
		parts = append(parts, strings.Join(c.AddressLines, ", "))
	}
	locality := strings.TrimSpace(strings.Join([]string{c.City, c.StateCode}, " "))
	if locality != "" {
		parts = append(parts, locality)
	}
	postal := c.PostalCode
	if c.PostalCodeExtended != "" {
		postal += "-" + c.PostalCodeExtended
	}
	if tail := strings.TrimSpace(postal + " " + c.CountryCode); tail != "" {
		parts = append(parts, tail)
	}
	out := strings.Join(parts, ", ")
	if c.Classification.Description != "" {
		out += " (" + c.Classification.Description + ")"
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
