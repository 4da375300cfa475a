// xeroctl inspecciona y normaliza documentos XML del servicio contable.
//
// Uso:
//
//	xeroctl validate factura.xml   # reporte de líneas; exit 1 si alguna es inválida
//	xeroctl normalize factura.xml  # XML canónico por stdout
//
// Configuración por entorno: APP_ENV, LOG_LEVEL, XERO_TAX_TYPES_FILE, XERO_SUPPRESS_LINE_AMOUNT.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/xero-gateway/internal/application/gateway"
	"github.com/jhoicas/xero-gateway/internal/domain/entity"
	"github.com/jhoicas/xero-gateway/pkg/config"
	"github.com/jhoicas/xero-gateway/pkg/logger"
	"github.com/jhoicas/xero-gateway/pkg/money"
)

// errInvalidLines señala líneas inválidas sin imprimir un error adicional.
var errInvalidLines = errors.New("hay líneas inválidas")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidLines) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xeroctl",
		Short:         "Inspecciona documentos XML de líneas e ítems del servicio contable",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newNormalizeCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <archivo.xml>",
		Short: "Valida las líneas del documento",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			insp, err := buildInspector()
			if err != nil {
				return err
			}
			report, err := inspectFile(insp, args[0])
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			if !report.Valid() {
				return errInvalidLines
			}
			return nil
		},
	}
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <archivo.xml>",
		Short: "Reescribe líneas e ítems en XML canónico",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			insp, err := buildInspector()
			if err != nil {
				return err
			}
			report, err := inspectFile(insp, args[0])
			if err != nil {
				return err
			}
			out, err := insp.Normalize(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
}

func buildInspector() (*gateway.Inspector, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	taxTypes, err := config.LoadTaxTypes(cfg.Gateway.TaxTypesFile)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("env", cfg.App.Env).
		Int("tax_types", len(taxTypes)).
		Bool("suppress_line_amount", cfg.Gateway.SuppressLineAmount).
		Msg("configuración cargada")

	return gateway.NewInspector(log, taxTypes, entity.LineItemOptions{
		SuppressLineAmount: cfg.Gateway.SuppressLineAmount,
	}), nil
}

func inspectFile(insp *gateway.Inspector, path string) (*gateway.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir XML: %w", err)
	}
	defer f.Close()
	return insp.Inspect(f)
}

func printReport(w io.Writer, r *gateway.Report) {
	for _, l := range r.LineItems {
		status := "OK"
		if !l.Valid {
			status = "INVALID"
		}
		amount := "-"
		if la := l.LineItem.LineAmount(); la.Valid {
			amount = money.Format(la.Decimal)
		}
		fmt.Fprintf(w, "line %d\t%s\t%s\t%s\n", l.Index, status, amount, l.LineItem.Description)
		for _, e := range l.Errors {
			fmt.Fprintf(w, "  %s %s\n", e.Field, e.Message)
		}
	}
	fmt.Fprintf(w, "%d line items (%d invalid), %d items\n", len(r.LineItems), r.InvalidCount(), len(r.Items))
}
