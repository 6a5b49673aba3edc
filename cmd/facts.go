package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/oceanai/internal/facts"
	"github.com/ziadkadry99/oceanai/internal/vectordb"
)

var factsCmd = &cobra.Command{
	Use:   "facts [query]",
	Short: "Show a random ocean fact or search them",
	Long: `Without arguments, prints one fact picked the way the site banner picks them.
With a query, semantically searches the facts and gallery captions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFacts,
}

func init() {
	factsCmd.Flags().Int("limit", 5, "maximum number of results")
	factsCmd.Flags().String("source", "", "filter by source: fact, gallery")
	factsCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(factsCmd)
}

func runFacts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(facts.NewRotator(facts.Facts, newSource(cfg.Seed, streamFacts)).Next())
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	source, _ := cmd.Flags().GetString("source")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	docType := vectordb.DocumentType(source)
	switch docType {
	case "", vectordb.DocTypeFact, vectordb.DocTypeGallery:
	default:
		return fmt.Errorf("unknown source %q: use fact or gallery", source)
	}

	ctx := context.Background()
	idx, err := buildIndex(ctx)
	if err != nil {
		return err
	}
	results, err := idx.SearchSource(ctx, args[0], limit, docType)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	for i, r := range results {
		text := r.Text
		if r.Icon != "" {
			text = r.Icon + " " + text
		}
		fmt.Printf("%d. [%s] %s (%.0f%% match)\n", i+1, r.Source, strings.TrimSpace(text), r.Similarity*100)
	}
	return nil
}
