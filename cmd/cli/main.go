package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fintrack-cli",
		Short: "Fintrack CLI tool",
		Long:  `A command line interface for interacting with the Fintrack API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Fintrack API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(txCmd())
	rootCmd.AddCommand(pendingCmd())
	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(settingsCmd())

	return rootCmd
}

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")
			return doGet(fmt.Sprintf("%s/api/v1/transactions/?limit=%d&offset=%d", baseURL, limit, offset))
		},
	}
	listCmd.Flags().Int("limit", 20, "Max transactions to return")
	listCmd.Flags().Int("offset", 0, "Offset into the result set")

	addCmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a manual transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, _ := cmd.Flags().GetString("direction")
			description, _ := cmd.Flags().GetString("description")
			bank, _ := cmd.Flags().GetString("bank")

			payload := map[string]any{
				"amount": json.Number(args[0]),
			}
			if direction != "" {
				payload["direction"] = direction
			}
			if description != "" {
				payload["description"] = description
			}
			if bank != "" {
				payload["counterparty_bank"] = bank
			}

			return doPost(baseURL+"/api/v1/transactions/", payload)
		},
	}
	addCmd.Flags().String("direction", "", "outflow or inflow (defaults to outflow)")
	addCmd.Flags().String("description", "", "Free-form description")
	addCmd.Flags().String("bank", "", "Counterparty bank name")

	monthCmd := &cobra.Command{
		Use:   "month <year> <month>",
		Short: "List transactions for one calendar month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid month %q", args[1])
			}
			return doGet(fmt.Sprintf("%s/api/v1/transactions/month/%s/%s", baseURL, args[0], args[1]))
		},
	}

	cmd.AddCommand(listCmd, addCmd, monthCmd)

	return cmd
}

func pendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Review queue operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List records awaiting review",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet(baseURL + "/api/v1/pending/")
		},
	}

	confirmCmd := &cobra.Command{
		Use:   "confirm <id>",
		Short: "Confirm a staged record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost(fmt.Sprintf("%s/api/v1/pending/%s/confirm", baseURL, args[0]), nil)
		},
	}

	rejectCmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a staged record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost(fmt.Sprintf("%s/api/v1/pending/%s/reject", baseURL, args[0]), nil)
		},
	}

	cmd.AddCommand(listCmd, confirmCmd, rejectCmd)

	return cmd
}

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <sender> <body>",
		Short: "Submit a raw message for extraction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost(baseURL+"/api/v1/messages", map[string]any{
				"sender": args[0],
				"body":   args[1],
			})
		},
	}

	return cmd
}

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Runtime settings",
	}

	autoConfirmCmd := &cobra.Command{
		Use:   "auto-confirm [true|false]",
		Short: "Show or set the auto-confirm flag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return doGet(baseURL + "/api/v1/settings/auto-confirm")
			}

			enabled, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid flag value %q", args[0])
			}

			return doPut(baseURL+"/api/v1/settings/auto-confirm", map[string]any{
				"enabled": enabled,
			})
		},
	}

	cmd.AddCommand(autoConfirmCmd)

	return cmd
}

func doGet(url string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func doPost(url string, payload any) error {
	return doSend(http.MethodPost, url, payload)
}

func doPut(url string, payload any) error {
	return doSend(http.MethodPut, url, payload)
}

func doSend(method, url string, payload any) error {
	client := &http.Client{Timeout: timeout}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	if len(body) == 0 {
		fmt.Println("OK")
		return nil
	}

	var pretty any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(pretty)
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(data))
}
