package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/curiolib/curio/internal/ui"
	"github.com/curiolib/curio/library"
)

// printItemTable prints items in a table format.
func printItemTable(items []library.Item, now time.Time) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}

	fmt.Print(formatItemTable(items, itemPrefixLengths(items), ui.HighlightID, now))
}

func formatItemTable(items []library.Item, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "CATEGORY", "RATING", "TAGS", "AGE", "TITLE"}, len(items))

	for _, item := range items {
		builder.AddRow([]string{
			highlight(item.ID, ui.PrefixLength(prefixLengths, item.ID)),
			orDash(item.Category),
			ratingStars(item.Rating),
			orDash(strings.Join(item.Tags, ",")),
			ui.FormatTimeAgeShort(item.CreatedAt, now),
			ui.TruncateTableCell(item.Title),
		})
	}

	return builder.String()
}

// printSearchTable prints search results with their relevance scores.
func printSearchTable(results []library.SearchResult, now time.Time) {
	fmt.Print(formatSearchTable(results, ui.HighlightID, now))
}

func formatSearchTable(results []library.SearchResult, highlight func(string, int) string, now time.Time) string {
	items := make([]library.Item, 0, len(results))
	for _, result := range results {
		items = append(items, result.Item)
	}
	prefixLengths := itemPrefixLengths(items)

	builder := ui.NewTableBuilder([]string{"ID", "SCORE", "MATCHES", "CATEGORY", "AGE", "TITLE"}, len(results))
	for _, result := range results {
		item := result.Item
		builder.AddRow([]string{
			highlight(item.ID, ui.PrefixLength(prefixLengths, item.ID)),
			strconv.Itoa(result.Relevance),
			strconv.Itoa(result.KeywordMatches),
			orDash(item.Category),
			ui.FormatTimeAgeShort(item.CreatedAt, now),
			ui.TruncateTableCell(item.Title),
		})
	}

	return builder.String()
}

func printItemDetail(item library.Item, highlight func(string) string, now time.Time) {
	fmt.Printf("%s %s\n", detailHeaderStyle.Render(item.Title), highlight(item.ID))
	fmt.Printf("  Category: %s\n", orDash(item.Category))
	fmt.Printf("  Rating:   %s\n", ratingStars(item.Rating))
	fmt.Printf("  Tags:     %s\n", orDash(strings.Join(item.Tags, ", ")))
	if item.FilePath != "" {
		fmt.Printf("  File:     %s%s\n", item.FilePath, fileSizeSuffix(item.FileSize))
	}
	if item.MediaURL != "" {
		fmt.Printf("  URL:      %s\n", item.MediaURL)
	}
	fmt.Printf("  Created:  %s (%s)\n", item.CreatedAt.Format(time.RFC3339), ui.FormatTimeAgo(item.CreatedAt, now))
	fmt.Printf("  Updated:  %s (%s)\n", item.UpdatedAt.Format(time.RFC3339), ui.FormatTimeAgo(item.UpdatedAt, now))
	if item.Description != "" {
		rendered := renderMarkdownOrDash(item.Description, lineWidth-detailIndent)
		fmt.Println()
		fmt.Println(indentBlock(rendered, detailIndent))
	}
}

func itemPrefixLengths(items []library.Item) map[string]int {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ui.UniqueIDPrefixLengths(ids)
}

func ratingStars(rating int) string {
	if rating <= 0 {
		return "-"
	}
	if rating > library.RatingMax {
		rating = library.RatingMax
	}
	return strings.Repeat("*", rating)
}

func fileSizeSuffix(size int64) string {
	if size <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%s)", formatFileSize(size))
}

func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%dB", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(size)/float64(div), "KMGTPE"[exp])
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
