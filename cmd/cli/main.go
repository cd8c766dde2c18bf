package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clubops/ledger/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "Ledger CLI tool",
		Long:  `A command line interface for the club ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(postCmd())
	rootCmd.AddCommand(reverseCmd())
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(periodsCmd())
	rootCmd.AddCommand(ledgerCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// voucherFile is the YAML shape accepted by the post command.
type voucherFile struct {
	BranchID             string `yaml:"branch_id"`
	PeriodID             string `yaml:"period_id"`
	Reference            string `yaml:"reference"`
	ValueDate            string `yaml:"value_date"`
	PrimaryDescription   string `yaml:"primary_description"`
	SecondaryDescription string `yaml:"secondary_description"`
	Lines                []struct {
		PrincipalAccountID string `yaml:"principal_account_id"`
		ContraAccountID    string `yaml:"contra_account_id"`
		Debit              string `yaml:"debit"`
		Credit             string `yaml:"credit"`
		Description        string `yaml:"description"`
	} `yaml:"lines"`
}

func (f *voucherFile) toRequest() (*dto.PostVoucherRequest, error) {
	valueDate, err := time.Parse("2006-01-02", f.ValueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid value_date %q: %w", f.ValueDate, err)
	}

	req := &dto.PostVoucherRequest{
		BranchID:             f.BranchID,
		PeriodID:             f.PeriodID,
		Reference:            f.Reference,
		ValueDate:            valueDate,
		PrimaryDescription:   f.PrimaryDescription,
		SecondaryDescription: f.SecondaryDescription,
	}

	for i, line := range f.Lines {
		dtoLine := dto.VoucherLineRequest{
			PrincipalAccountID: line.PrincipalAccountID,
			ContraAccountID:    line.ContraAccountID,
			Description:        line.Description,
		}
		if line.Debit != "" {
			dtoLine.DebitAmount, err = decimal.NewFromString(line.Debit)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid debit %q: %w", i+1, line.Debit, err)
			}
		}
		if line.Credit != "" {
			dtoLine.CreditAmount, err = decimal.NewFromString(line.Credit)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid credit %q: %w", i+1, line.Credit, err)
			}
		}
		req.Lines = append(req.Lines, dtoLine)
	}

	return req, nil
}

func postCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <voucher.yaml>",
		Short: "Post a journal voucher from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var file voucherFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("invalid voucher file: %w", err)
			}

			req, err := file.toRequest()
			if err != nil {
				return err
			}

			return doPost("/api/v1/postings", req)
		},
	}
}

func reverseCmd() *cobra.Command {
	var newReference, valueDate, periodID string

	cmd := &cobra.Command{
		Use:   "reverse <reference>",
		Short: "Reverse a posted transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse("2006-01-02", valueDate)
			if err != nil {
				return fmt.Errorf("invalid value-date %q: %w", valueDate, err)
			}

			return doPost("/api/v1/postings/"+args[0]+"/reverse", dto.ReverseRequest{
				NewReference: newReference,
				ValueDate:    date,
				PeriodID:     periodID,
			})
		},
	}

	cmd.Flags().StringVar(&newReference, "new-reference", "", "Reference for the reversal transaction")
	cmd.Flags().StringVar(&valueDate, "value-date", time.Now().Format("2006-01-02"), "Value date of the reversal")
	cmd.Flags().StringVar(&periodID, "period", "", "Post the reversal into a different period")
	_ = cmd.MarkFlagRequired("new-reference")

	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <reference>",
		Short: "Fetch a posted transaction by reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/postings/" + args[0])
		},
	}
}

func balanceCmd() *cobra.Command {
	var periodID string
	var history bool

	cmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/accounts/" + args[0] + "/balance"
			if history {
				path += "/history"
			} else if periodID != "" {
				path += "?period=" + periodID
			}
			return doGet(path)
		},
	}

	cmd.Flags().StringVar(&periodID, "period", "", "Show period-to-date totals for this period")
	cmd.Flags().BoolVar(&history, "history", false, "Show per-entry balance history")

	return cmd
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/accounts?limit=100")
		},
	})

	return cmd
}

func periodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "periods",
		Short: "Posting period operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List posting periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/periods")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "close <period-id>",
		Short: "Close a posting period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/v1/periods/"+args[0]+"/close", nil)
		},
	})

	return cmd
}

func ledgerCmd() *cobra.Command {
	var periodID string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger-wide reports",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check that ledger debits equal credits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/ledger/consistency")
		},
	})

	trialCmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Show the trial balance for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/ledger/trial-balance?period=" + periodID)
		},
	}
	trialCmd.Flags().StringVar(&periodID, "period", "", "Posting period ID")
	_ = trialCmd.MarkFlagRequired("period")
	cmd.AddCommand(trialCmd)

	return cmd
}

func doGet(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func doPost(path string, body any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", reader)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
	} else {
		printJSON(pretty)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
