package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/curiolib/curio/library"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// backup
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a backup of the current data file",
	Args:  cobra.NoArgs,
	RunE:  runBackup,
}

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

// clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every item, task, and history entry",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var clearForce bool

func init() {
	rootCmd.AddCommand(backupCmd, statsCmd, clearCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip the confirmation prompt")
}

func runBackup(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	if err := lib.CreateBackup(); err != nil {
		return err
	}

	fmt.Printf("Created backup (%d on disk).\n", lib.BackupCount())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	stats := lib.Stats()

	if statsJSON {
		return encodeJSONToStdout(stats)
	}

	fmt.Printf("Items:            %d\n", stats.TotalItems)
	fmt.Printf("Indexed keywords: %d\n", stats.TotalKeywords)
	fmt.Printf("Unique tags:      %d\n", stats.UniqueTags)
	fmt.Printf("Tasks:            %d (%d overdue)\n", stats.TotalTasks, stats.OverdueTasks)
	fmt.Printf("Recently viewed:  %d\n", stats.RecentlyViewed)
	fmt.Printf("Undo depth:       %d\n", stats.UndoDepth)
	fmt.Printf("Backups:          %d\n", stats.Backups)
	if len(stats.CategoryCounts) > 0 {
		fmt.Println("Categories:")
		for _, category := range sortedKeys(stats.CategoryCounts) {
			fmt.Printf("  %s: %d\n", category, stats.CategoryCounts[category])
		}
	}
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	if !clearForce {
		confirmed, err := confirmClear(lib.Stats())
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	lib.ClearAll()
	if err := lib.Save(); err != nil {
		return err
	}

	fmt.Println("Library cleared.")
	return nil
}

func confirmClear(stats library.Stats) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing to clear without a terminal; pass --force to override")
	}

	fmt.Printf("This deletes %d items and %d tasks. Continue? [y/N] ", stats.TotalItems, stats.TotalTasks)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
