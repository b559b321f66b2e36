package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/maasproduction/studio-api/internal/config"
	"github.com/maasproduction/studio-api/internal/sanity"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "studioctl",
	Short: "studioctl - operations CLI for the studio website backend",
	Long: `studioctl talks to the studio API and the content store for
day-to-day operations: checking that the API is up and reviewing the
inquiry leads captured by the website forms.`,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the API is responding",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Checking API health..."
		s.Start()

		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get(apiURL + "/health")
		s.Stop()
		if err != nil {
			return fmt.Errorf("API is unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("API returned status %d", resp.StatusCode)
		}

		fmt.Println("API is healthy.")
		return nil
	},
}

type leadDoc struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Whatsapp    string `json:"whatsapp"`
	WeddingDate string `json:"weddingDate"`
	City        string `json:"city"`
	Source      string `json:"source"`
}

var leadsLimit int

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Work with captured inquiry leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent leads from the content store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.SanityProjectID == "" || cfg.SanityWriteToken == "" {
			return fmt.Errorf("SANITY_PROJECT_ID and SANITY_API_WRITE_TOKEN must be set to read leads")
		}

		// Leads are private documents, so this goes through the
		// authenticated API host, not the CDN.
		store := sanity.NewClient(sanity.Config{
			ProjectID:  cfg.SanityProjectID,
			Dataset:    cfg.SanityDataset,
			APIVersion: cfg.SanityAPIVersion,
			Token:      cfg.SanityWriteToken,
		})

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Fetching leads..."
		s.Start()

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		leads := []leadDoc{}
		err = store.Query(ctx, sanity.RecentLeadsQuery, map[string]interface{}{"limit": leadsLimit}, &leads)
		s.Stop()
		if err != nil {
			return fmt.Errorf("failed to fetch leads: %w", err)
		}

		if len(leads) == 0 {
			fmt.Println("No leads yet.")
			return nil
		}

		for _, lead := range leads {
			date := lead.WeddingDate
			if date == "" {
				date = "-"
			}
			fmt.Printf("%-28s  %-20s  %-12s  %-20s  %s\n",
				lead.Name, lead.Whatsapp, date, lead.City, lead.Source)
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the studio API")
	leadsListCmd.Flags().IntVar(&leadsLimit, "limit", 20, "Maximum number of leads to list")

	leadsCmd.AddCommand(leadsListCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(leadsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
