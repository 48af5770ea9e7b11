package main

import (
	"fmt"
	"time"

	"github.com/curiolib/curio/library"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the task queue",
}

// task add
var taskAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var (
	taskAddPriority string
	taskAddDeadline string
	taskAddItem     string
	taskAddNotes    string
	taskAddEstimate int
)

// task list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in scheduling order",
	RunE:  runTaskList,
}

var taskListJSON bool

// task next
var taskNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the highest-priority task without removing it",
	Args:  cobra.NoArgs,
	RunE:  runTaskNext,
}

// task pop
var taskPopCmd = &cobra.Command{
	Use:   "pop",
	Short: "Remove and show the highest-priority task",
	Args:  cobra.NoArgs,
	RunE:  runTaskPop,
}

// task done
var taskDoneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark one or more tasks as completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskDone,
}

// task remove
var taskRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove one or more tasks from the queue",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskRemove,
}

// task overdue
var taskOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List open tasks past their deadline",
	Args:  cobra.NoArgs,
	RunE:  runTaskOverdue,
}

var taskOverdueJSON bool

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskNextCmd, taskPopCmd, taskDoneCmd, taskRemoveCmd, taskOverdueCmd)

	// task add flags
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", string(library.PriorityMedium), "Priority (low, medium, high, urgent)")
	taskAddCmd.Flags().StringVar(&taskAddDeadline, "deadline", "", "Deadline (RFC 3339 or YYYY-MM-DD)")
	taskAddCmd.Flags().StringVar(&taskAddItem, "item", "", "Linked item id or prefix")
	taskAddCmd.Flags().StringVar(&taskAddNotes, "notes", "", "Free-text notes")
	taskAddCmd.Flags().IntVar(&taskAddEstimate, "estimate", 0, "Effort estimate in minutes")

	// task list flags
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")

	// task overdue flags
	taskOverdueCmd.Flags().BoolVar(&taskOverdueJSON, "json", false, "Output as JSON")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	var deadline *time.Time
	if taskAddDeadline != "" {
		parsed, err := parseDeadline(taskAddDeadline)
		if err != nil {
			return err
		}
		deadline = &parsed
	}

	task := library.NewTask(args[0], library.TaskPriority(taskAddPriority), deadline)
	task.Notes = taskAddNotes
	task.EstimatedMinutes = taskAddEstimate

	if taskAddItem != "" {
		itemID, err := lib.ResolveItemID(taskAddItem)
		if err != nil {
			return err
		}
		item, ok := lib.GetItem(itemID)
		if !ok {
			return fmt.Errorf("%w: %s", library.ErrItemNotFound, itemID)
		}
		task.ItemID = item.ID
		task.ItemTitle = item.Title
	}

	added, err := lib.AddTask(task)
	if err != nil {
		return err
	}
	if err := lib.Save(); err != nil {
		return err
	}

	highlight := taskHighlighter(lib)
	fmt.Printf("Added task %s: %s\n", highlight(added.ID), added.Description)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	tasks := lib.ListTasks()

	if taskListJSON {
		return encodeJSONToStdout(tasks)
	}

	printTaskTable(tasks, time.Now())
	return nil
}

func runTaskNext(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	task, ok := lib.PeekNextTask()
	if !ok {
		fmt.Println("No tasks in the queue.")
		return nil
	}

	printTaskDetail(task, taskHighlighter(lib), time.Now())
	return nil
}

func runTaskPop(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	highlight := taskHighlighter(lib)
	task, ok := lib.PollNextTask()
	if !ok {
		fmt.Println("No tasks in the queue.")
		return nil
	}
	if err := lib.Save(); err != nil {
		return err
	}

	printTaskDetail(task, highlight, time.Now())
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	highlight := taskHighlighter(lib)
	for _, arg := range args {
		id, err := lib.ResolveTaskID(arg)
		if err != nil {
			return err
		}
		task, ok := lib.GetTask(id)
		if !ok {
			return fmt.Errorf("%w: %s", library.ErrTaskNotFound, id)
		}
		task.Status = library.StatusCompleted
		updated, err := lib.UpdateTask(task)
		if err != nil {
			return err
		}
		fmt.Printf("Completed task %s: %s\n", highlight(updated.ID), updated.Description)
	}

	return lib.Save()
}

func runTaskRemove(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	highlight := taskHighlighter(lib)
	for _, arg := range args {
		id, err := lib.ResolveTaskID(arg)
		if err != nil {
			return err
		}
		removed, err := lib.RemoveTask(id)
		if err != nil {
			return err
		}
		fmt.Printf("Removed task %s: %s\n", highlight(removed.ID), removed.Description)
	}

	return lib.Save()
}

func runTaskOverdue(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	tasks := lib.ListOverdueTasks()

	if taskOverdueJSON {
		return encodeJSONToStdout(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No overdue tasks.")
		return nil
	}

	printTaskTable(tasks, time.Now())
	return nil
}

func parseDeadline(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse deadline %q: expected RFC 3339 or YYYY-MM-DD", value)
	}
	// A bare date means end of that day.
	return parsed.Add(24*time.Hour - time.Second), nil
}
