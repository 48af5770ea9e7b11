package main

import (
	"fmt"
	"time"

	"github.com/curiolib/curio/library"
	"github.com/spf13/cobra"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items in the library",
}

// item add
var itemAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemAdd,
}

var (
	itemAddCategory    string
	itemAddTags        []string
	itemAddRating      int
	itemAddDescription string
	itemAddFilePath    string
	itemAddMediaURL    string
	itemAddFileType    string
	itemAddFileSize    int64
)

// item update
var itemUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an item",
	Aliases: []string{
		"edit",
	},
	Args: cobra.ExactArgs(1),
	RunE: runItemUpdate,
}

var (
	itemUpdateTitle       string
	itemUpdateCategory    string
	itemUpdateTags        []string
	itemUpdateRating      int
	itemUpdateDescription string
	itemUpdateFilePath    string
	itemUpdateMediaURL    string
)

// item delete
var itemDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more items",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runItemDelete,
}

// item show
var itemShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about items",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runItemShow,
}

var itemShowJSON bool

// item list
var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items",
	RunE:  runItemList,
}

var (
	itemListCategory string
	itemListTag      string
	itemListJSON     bool
)

// search
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search items by keyword relevance",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var searchJSON bool

func init() {
	rootCmd.AddCommand(itemCmd, searchCmd)
	itemCmd.AddCommand(itemAddCmd, itemUpdateCmd, itemDeleteCmd, itemShowCmd, itemListCmd)

	// item add flags
	itemAddCmd.Flags().StringVarP(&itemAddCategory, "category", "c", "", "Item category")
	itemAddCmd.Flags().StringArrayVarP(&itemAddTags, "tag", "t", nil, "Tag (repeatable)")
	itemAddCmd.Flags().IntVarP(&itemAddRating, "rating", "r", 0, "Rating (0-5)")
	itemAddCmd.Flags().StringVarP(&itemAddDescription, "description", "d", "", "Description")
	itemAddCmd.Flags().StringVar(&itemAddFilePath, "file", "", "Linked file path")
	itemAddCmd.Flags().StringVar(&itemAddMediaURL, "url", "", "Linked media URL")
	itemAddCmd.Flags().StringVar(&itemAddFileType, "file-type", "", "File extension (e.g. .pdf)")
	itemAddCmd.Flags().Int64Var(&itemAddFileSize, "file-size", 0, "File size in bytes")

	// item update flags
	itemUpdateCmd.Flags().StringVar(&itemUpdateTitle, "title", "", "New title")
	itemUpdateCmd.Flags().StringVarP(&itemUpdateCategory, "category", "c", "", "New category")
	itemUpdateCmd.Flags().StringArrayVarP(&itemUpdateTags, "tag", "t", nil, "Replacement tags (repeatable)")
	itemUpdateCmd.Flags().IntVarP(&itemUpdateRating, "rating", "r", 0, "New rating (0-5)")
	itemUpdateCmd.Flags().StringVarP(&itemUpdateDescription, "description", "d", "", "New description")
	itemUpdateCmd.Flags().StringVar(&itemUpdateFilePath, "file", "", "New linked file path")
	itemUpdateCmd.Flags().StringVar(&itemUpdateMediaURL, "url", "", "New linked media URL")

	// item show flags
	itemShowCmd.Flags().BoolVar(&itemShowJSON, "json", false, "Output as JSON")

	// item list flags
	itemListCmd.Flags().StringVarP(&itemListCategory, "category", "c", "", "Filter by category")
	itemListCmd.Flags().StringVarP(&itemListTag, "tag", "t", "", "Filter by tag")
	itemListCmd.Flags().BoolVar(&itemListJSON, "json", false, "Output as JSON")

	// search flags
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	item := library.NewItem(args[0], itemAddCategory)
	item.SetTags(itemAddTags)
	item.Description = itemAddDescription
	item.FilePath = itemAddFilePath
	item.MediaURL = itemAddMediaURL
	item.FileType = itemAddFileType
	item.FileSize = itemAddFileSize
	if cmd.Flags().Changed("rating") {
		if err := item.SetRating(itemAddRating); err != nil {
			return err
		}
	}

	added, err := lib.AddItem(item)
	if err != nil {
		return err
	}
	if err := lib.Save(); err != nil {
		return err
	}

	highlight := itemHighlighter(lib)
	fmt.Printf("Added item %s: %s\n", highlight(added.ID), added.Title)
	return nil
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	id, err := lib.ResolveItemID(args[0])
	if err != nil {
		return err
	}
	item, ok := lib.GetItem(id)
	if !ok {
		return fmt.Errorf("%w: %s", library.ErrItemNotFound, id)
	}

	if cmd.Flags().Changed("title") {
		item.Title = itemUpdateTitle
	}
	if cmd.Flags().Changed("category") {
		item.Category = itemUpdateCategory
	}
	if cmd.Flags().Changed("tag") {
		item.SetTags(itemUpdateTags)
	}
	if cmd.Flags().Changed("rating") {
		if err := item.SetRating(itemUpdateRating); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("description") {
		item.Description = itemUpdateDescription
	}
	if cmd.Flags().Changed("file") {
		item.FilePath = itemUpdateFilePath
	}
	if cmd.Flags().Changed("url") {
		item.MediaURL = itemUpdateMediaURL
	}

	updated, err := lib.UpdateItem(item)
	if err != nil {
		return err
	}
	if err := lib.Save(); err != nil {
		return err
	}

	highlight := itemHighlighter(lib)
	fmt.Printf("Updated item %s: %s\n", highlight(updated.ID), updated.Title)
	return nil
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	highlight := itemHighlighter(lib)
	for _, arg := range args {
		id, err := lib.ResolveItemID(arg)
		if err != nil {
			return err
		}
		deleted, err := lib.DeleteItem(id)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted item %s: %s\n", highlight(deleted.ID), deleted.Title)
	}

	return lib.Save()
}

func runItemShow(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	items := make([]library.Item, 0, len(args))
	for _, arg := range args {
		id, err := lib.ResolveItemID(arg)
		if err != nil {
			return err
		}
		item, ok := lib.GetItem(id)
		if !ok {
			return fmt.Errorf("%w: %s", library.ErrItemNotFound, id)
		}
		items = append(items, item)
	}

	// Viewing items feeds the recently-viewed stack.
	if err := lib.Save(); err != nil {
		return err
	}

	if itemShowJSON {
		return encodeJSONToStdout(items)
	}

	highlight := itemHighlighter(lib)
	now := time.Now()
	for i, item := range items {
		if i > 0 {
			fmt.Println("---")
		}
		printItemDetail(item, highlight, now)
	}
	return nil
}

func runItemList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	var items []library.Item
	switch {
	case itemListCategory != "":
		items = lib.ListItemsByCategory(itemListCategory)
	case itemListTag != "":
		items = lib.ListItemsByTag(itemListTag)
	default:
		items = lib.ListItems()
	}

	if itemListJSON {
		return encodeJSONToStdout(items)
	}

	printItemTable(items, time.Now())
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	results := lib.Search(args[0])

	if searchJSON {
		return encodeJSONToStdout(results)
	}

	if len(results) == 0 {
		fmt.Println("No items found.")
		return nil
	}

	printSearchTable(results, time.Now())
	return nil
}
