package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/oceanai/internal/contact"
	"github.com/ziadkadry99/oceanai/internal/db"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Read messages sent through the contact form",
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent contact messages",
	RunE:  runContactList,
}

func init() {
	contactListCmd.Flags().Int("limit", contact.DefaultListLimit, "maximum number of messages")
	contactCmd.AddCommand(contactListCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	subs, err := contact.NewStore(database).List(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("No contact messages yet.")
		return nil
	}

	for _, s := range subs {
		from := s.Email
		if s.Name != "" {
			from = fmt.Sprintf("%s <%s>", s.Name, s.Email)
		}
		subject := s.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		fmt.Printf("%s  %s\n  %s\n", humanize.Time(s.CreatedAt), from, subject)
		fmt.Printf("  %s\n\n", strings.ReplaceAll(s.Message, "\n", "\n  "))
	}
	return nil
}
