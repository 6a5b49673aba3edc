package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/oceanai/internal/chat"
	"github.com/ziadkadry99/oceanai/internal/contact"
	"github.com/ziadkadry99/oceanai/internal/db"
	"github.com/ziadkadry99/oceanai/internal/effects"
	"github.com/ziadkadry99/oceanai/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Play the headline counters and show site activity",
	Long: `Animates the landing page counters in the terminal, then prints how many
chat sessions and contact messages the site has stored.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Duration("duration", effects.DefaultCounterDuration, "animation length per counter")
	statsCmd.Flags().Bool("no-animate", false, "print the final values only")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	duration, _ := cmd.Flags().GetDuration("duration")
	noAnimate, _ := cmd.Flags().GetBool("no-animate")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reporter := progress.NewReporter(os.Stdout)
	if noAnimate {
		reporter = progress.NewCIReporter(os.Stdout)
	}
	for _, st := range effects.Stats {
		frames := effects.CounterFrames(st.Target, duration, effects.DefaultFrameInterval)
		if noAnimate {
			frames = []int64{st.Target}
		}
		if err := progress.Play(ctx, reporter, st, frames, effects.DefaultFrameInterval); err != nil {
			return err
		}
	}

	if _, err := os.Stat(cfg.DBPath()); err != nil {
		fmt.Println("\nNo site activity yet. Run `oceanai server` first.")
		return nil
	}
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	chatStore := chat.NewStore(database)
	sessions, err := chatStore.CountSessions(ctx)
	if err != nil {
		return err
	}
	questions, err := chatStore.CountMessages(ctx, chat.RoleUser)
	if err != nil {
		return err
	}
	contactStore := contact.NewStore(database)
	messages, err := contactStore.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Chat sessions:    %s (%s questions asked)\n", humanize.Comma(int64(sessions)), humanize.Comma(int64(questions)))
	fmt.Printf("Contact messages: %s\n", humanize.Comma(int64(messages)))
	if recent, err := contactStore.List(ctx, 1); err == nil && len(recent) > 0 {
		fmt.Printf("Last message:     %s\n", humanize.RelTime(recent[0].CreatedAt, time.Now(), "ago", "from now"))
	}
	return nil
}
