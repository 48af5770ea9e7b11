package main

import (
	"fmt"
	"time"

	"github.com/curiolib/curio/internal/ui"
	"github.com/spf13/cobra"
)

// recent
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently viewed items",
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

var recentJSON bool

// back
var backCmd = &cobra.Command{
	Use:   "back",
	Short: "Step back to the previously viewed item",
	Args:  cobra.NoArgs,
	RunE:  runBack,
}

// undo
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent item mutation",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

// history
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the undo history",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyJSON bool

func init() {
	rootCmd.AddCommand(recentCmd, backCmd, undoCmd, historyCmd)

	recentCmd.Flags().BoolVar(&recentJSON, "json", false, "Output as JSON")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
}

func runRecent(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	items := lib.ListRecentlyViewed()

	if recentJSON {
		return encodeJSONToStdout(items)
	}

	printItemTable(items, time.Now())
	return nil
}

func runBack(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	item, ok := lib.GoBack()
	if !ok {
		fmt.Println("No earlier viewed item.")
		return nil
	}
	if err := lib.Save(); err != nil {
		return err
	}

	printItemDetail(item, itemHighlighter(lib), time.Now())
	return nil
}

func runUndo(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	memento, ok := lib.Undo()
	if !ok {
		fmt.Println("Nothing to undo.")
		return nil
	}
	if err := lib.Save(); err != nil {
		return err
	}

	highlight := itemHighlighter(lib)
	saved := memento.SavedItem()
	fmt.Printf("Undid %s of item %s: %s\n", memento.Op, highlight(saved.ID), saved.Title)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	history := lib.UndoHistory()

	if historyJSON {
		return encodeJSONToStdout(history)
	}

	if len(history) == 0 {
		fmt.Println("No undo history.")
		return nil
	}

	now := time.Now()
	builder := ui.NewTableBuilder([]string{"OP", "AGE", "ITEM", "DESCRIPTION"}, len(history))
	for _, memento := range history {
		saved := memento.SavedItem()
		builder.AddRow([]string{
			string(memento.Op),
			ui.FormatTimeAgeShort(memento.CreatedAt, now),
			ui.TruncateTableCell(saved.Title),
			ui.TruncateTableCell(memento.Description),
		})
	}
	fmt.Print(builder.String())
	return nil
}
