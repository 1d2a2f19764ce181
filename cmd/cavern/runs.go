package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cavern/internal/platform/tui"
	"github.com/vovakirdan/cavern/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsBrowse bool
	flagRunsRecent bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs: wins first, then deepest, then fastest.

Examples:
  cavern runs
  cavern runs --recent --limit 20
  cavern runs --browse
  cavern runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Open the interactive runs browser")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "Show the most recent runs instead of the best")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagRunsBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunRunsBrowser(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "Best Runs"
	list := store.TopRuns
	if flagRunsRecent {
		title = "Recent Runs"
		list = store.RecentRuns
	}
	runs, err := list(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Cavern\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cavern play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-8s  %-20s  %s\n", "Rank", "Depth", "Won", "Deaths", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-8s  %-20s  %s\n", "----", "-----", "---", "------", "----", "----", "----")
	for i, r := range runs {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-6d  %-6s  %-7d  %-8s  %-20d  %s\n",
			i+1, r.Depth, won, r.Deaths, tui.FormatTicks(r.Ticks, flagFPS), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Wins: %d  Best depth: %d  Avg depth: %.1f\n",
			stats.Runs, stats.Wins, stats.BestDepth, stats.AvgDepth)
	}
}
