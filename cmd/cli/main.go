package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ateliedalu/caixa/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "caixa-cli",
		Short: "Caixa CLI tool",
		Long:  `A command line interface for interacting with the Caixa API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Caixa API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(saldoCmd())
	rootCmd.AddCommand(lancamentosCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func saldoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saldo",
		Short: "Show current balances and open accounts",
		Run: func(cmd *cobra.Command, args []string) {
			var summary dto.SummaryResponse
			if err := getJSON("/api/v1/relatorios/resumo", &summary); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}

			fmt.Printf("Caixa:            %s\n", summary.CaixaBalanceDisplay)
			fmt.Printf("Investimentos:    %s\n", summary.InvestimentosBalanceDisplay)
			fmt.Printf("Contas a pagar:   %s (%d abertas)\n", summary.OpenPayablesDisplay, summary.OpenPayablesCount)
			fmt.Printf("Contas a receber: %s (%d abertas)\n", summary.OpenReceivablesDisplay, summary.OpenReceivablesCount)
		},
	}
}

func lancamentosCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "lancamentos [caixa|investimentos]",
		Short:     "List ledger entries with running balances",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"caixa", "investimentos"},
		Run: func(cmd *cobra.Command, args []string) {
			var listing dto.ListEntriesResponse
			if err := getJSON("/api/v1/"+args[0], &listing); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}

			for _, e := range listing.Entries {
				fmt.Println(formatEntryLine(e))
			}
			fmt.Printf("\nSaldo: %s\n", dto.FormatBRL(listing.Balance.Decimal))
		},
	}
}

// formatEntryLine renders one entry as a fixed-width table row.
func formatEntryLine(e *dto.EntryResponse) string {
	date := "          "
	if !e.Date.IsZero() {
		date = e.Date.Format("2006-01-02")
	}

	sign := "+"
	if e.Direction == "saida" {
		sign = "-"
	}

	return fmt.Sprintf("%s  %s%12s  %12s  %s",
		date, sign, dto.FormatBRL(e.Amount.Decimal), dto.FormatBRL(e.Balance.Decimal), truncate(e.Description, 40))
}

// truncate shortens s to max characters. Descriptions are Portuguese, so the
// cut has to land on a rune boundary.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func getJSON(path string, out any) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
