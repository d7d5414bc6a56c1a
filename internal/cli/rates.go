package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/usecase/units"
)

func ratesCmd(flags *rootFlags) *cobra.Command {
	var file string
	var services []string
	var negotiated bool
	var format string
	var fileUnits string

	c := &cobra.Command{
		Use:   "rates",
		Short: "Rate a shipment for one, several or all services",
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

			desc, err := sess.loader.LoadShipment(file)
			if err != nil {
				return err
			}
			if len(services) > 0 {
				desc.Service = ""
				desc.Services = services
			}
			if strings.TrimSpace(fileUnits) != "" {
				from, err := domain.ParseUnitSystem(strings.TrimSpace(fileUnits))
				if err != nil {
					return err
				}
				convertPackages(&desc, from, sess.settings.Client.UnitSystem)
			}

			res, err := sess.client.Rates(cmd.Context(), desc, domain.RateOptions{NegotiatedRates: negotiated})
			if err != nil {
				var de *domain.DispatchError
				if !errors.As(err, &de) {
					return err
				}
				// Partial result: print what succeeded, still exit non-zero.
				if perr := printRates(cmd.OutOrStdout(), newRatesReport(res, de), format); perr != nil {
					return perr
				}
				return fmt.Errorf("rates incomplete (%d failed call(s))", len(de.FailedIndices))
			}

			return printRates(cmd.OutOrStdout(), newRatesReport(res, nil), format)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Shipment YAML file (required)")
	c.Flags().StringSliceVarP(&services, "service", "s", nil, "Service code to rate; repeatable (overrides the file)")
	c.Flags().BoolVar(&negotiated, "negotiated", false, "Include negotiated rates")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&fileUnits, "units", "", "Unit system the file is written in, when it differs from the client's: imperial|metric")

	_ = c.MarkFlagRequired("file")
	return c
}

func convertPackages(desc *domain.ShipmentDescription, from, to domain.UnitSystem) {
	for i, p := range desc.Packages {
		desc.Packages[i] = units.Convert(p, from, to)
	}
}

type ratesReport struct {
	domain.RateResult
	Failures []callFailure `json:"failures,omitempty"`
}

type callFailure struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind,omitempty"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error"`
}

func newRatesReport(res domain.RateResult, de *domain.DispatchError) ratesReport {
	rep := ratesReport{RateResult: res}
	if de == nil {
		return rep
	}
	for _, i := range de.FailedIndices {
		f := callFailure{Index: i, Error: de.Failures[i].Error()}
		var te *domain.TransportError
		if errors.As(de.Failures[i], &te) {
			f.Kind = string(te.Kind)
			f.Status = te.StatusCode
			if te.Message != "" {
				f.Error = te.Message
			}
		}
		rep.Failures = append(rep.Failures, f)
	}
	return rep
}

func checkFormat(format string) error {
	switch format {
	case "json", "pretty", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printRates(w io.Writer, rep ratesReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "pretty", "":
		printPrettyRates(w, rep)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyRates(w io.Writer, rep ratesReport) {
	fmt.Fprintf(w, "Status: %s\n", statusText(rep.Status))
	fmt.Fprintf(w, "Rates:  %d\n", len(rep.Rates))
	fmt.Fprintln(w)

	for _, r := range rep.Rates {
		name := r.ServiceName
		if name == "" {
			name = "unknown service"
		}
		fmt.Fprintf(w, "- [%s] %s  %s\n", r.ServiceCode, name, moneyText(r.TotalCharges))

		if r.NegotiatedTotal != nil {
			fmt.Fprintf(w, "  negotiated: %s\n", moneyText(*r.NegotiatedTotal))
		}
		if r.BillingWeight.Value != "" {
			fmt.Fprintf(w, "  billing weight: %s %s\n", r.BillingWeight.Value, r.BillingWeight.Unit)
		}
		if r.GuaranteedDaysToDelivery != "" {
			fmt.Fprintf(w, "  guaranteed days: %s\n", r.GuaranteedDaysToDelivery)
		}
		if r.ScheduledDeliveryTime != "" {
			fmt.Fprintf(w, "  delivery by: %s\n", r.ScheduledDeliveryTime)
		}
		if r.SaturdayDelivery {
			fmt.Fprintf(w, "  saturday delivery\n")
		}
		for i, p := range r.Packages {
			fmt.Fprintf(w, "  package %d: %s\n", i+1, moneyText(p.TotalCharges))
		}
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", warn)
		}
	}

	if len(rep.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failed calls: %d\n", len(rep.Failures))
		for _, f := range rep.Failures {
			fmt.Fprintf(w, "- call %d", f.Index)
			if f.Kind != "" {
				fmt.Fprintf(w, " (%s", f.Kind)
				if f.Status != "" {
					fmt.Fprintf(w, " %s", f.Status)
				}
				fmt.Fprint(w, ")")
			}
			fmt.Fprintf(w, ": %s\n", f.Error)
		}
	}
}

func statusText(s domain.Status) string {
	return strings.TrimSpace(s.Code + " " + s.Description)
}

func moneyText(m domain.Money) string {
	if m.IsZero() {
		return "-"
	}
	return strings.TrimSpace(m.Currency + " " + m.Amount)
}
