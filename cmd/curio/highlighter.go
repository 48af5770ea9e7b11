package main

import (
	"github.com/curiolib/curio/internal/ui"
	"github.com/curiolib/curio/library"
)

type itemLister interface {
	ListItems() []library.Item
}

type taskLister interface {
	ListTasks() []library.Task
}

func logHighlighter(prefixLengths map[string]int, highlight func(string, int) string) func(string) string {
	if prefixLengths == nil {
		prefixLengths = map[string]int{}
	}
	return func(id string) string {
		if id == "" {
			return id
		}
		return highlight(id, ui.PrefixLength(prefixLengths, id))
	}
}

func itemHighlighter(lib itemLister) func(string) string {
	items := lib.ListItems()
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return logHighlighter(ui.UniqueIDPrefixLengths(ids), ui.HighlightID)
}

func taskHighlighter(lib taskLister) func(string) string {
	tasks := lib.ListTasks()
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return logHighlighter(ui.UniqueIDPrefixLengths(ids), ui.HighlightID)
}
