package library

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// AddTask adds a task to the queue. An unset ID is assigned and empty
// priority/status fields receive their defaults.
func (l *Library) AddTask(task Task) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	task = applyTaskDefaults(task)
	if err := ValidateTask(&task); err != nil {
		return Task{}, err
	}
	if _, exists := l.taskPos[task.ID]; exists {
		return Task{}, fmt.Errorf("%w: %s", ErrDuplicateTask, task.ID)
	}

	stored := task.Clone()
	l.taskPos[stored.ID] = len(l.tasks)
	l.tasks = append(l.tasks, stored)
	return stored.Clone(), nil
}

// GetTask returns the task with the given id.
func (l *Library) GetTask(id string) (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pos, ok := l.taskPos[id]
	if !ok {
		return Task{}, false
	}
	return l.tasks[pos].Clone(), true
}

// RemoveTask removes the task with the given id from the queue.
func (l *Library) RemoveTask(id string) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.removeTaskLocked(id)
}

// UpdateTask replaces an existing task. Priority and deadline changes
// require a full requeue, so the task is removed and reinserted rather
// than mutated in place.
func (l *Library) UpdateTask(task Task) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, err := l.removeTaskLocked(task.ID)
	if err != nil {
		return Task{}, err
	}

	// Creation time survives the requeue.
	task.CreatedAt = existing.CreatedAt
	task = applyTaskDefaults(task)
	if err := ValidateTask(&task); err != nil {
		// Reinsert the prior version so a rejected update changes nothing.
		l.taskPos[existing.ID] = len(l.tasks)
		l.tasks = append(l.tasks, existing)
		return Task{}, err
	}

	stored := task.Clone()
	l.taskPos[stored.ID] = len(l.tasks)
	l.tasks = append(l.tasks, stored)
	return stored.Clone(), nil
}

// PeekNextTask returns the highest effective-priority task without
// removing it.
func (l *Library) PeekNextTask() (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	best, ok := l.nextTaskLocked(time.Now())
	if !ok {
		return Task{}, false
	}
	return l.tasks[best].Clone(), true
}

// PollNextTask removes and returns the highest effective-priority task.
func (l *Library) PollNextTask() (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	best, ok := l.nextTaskLocked(time.Now())
	if !ok {
		return Task{}, false
	}
	task := l.tasks[best]
	removed, err := l.removeTaskLocked(task.ID)
	if err != nil {
		return Task{}, false
	}
	return removed, true
}

// ListTasks returns all tasks in scheduling order, evaluated against
// the clock at call time.
func (l *Library) ListTasks() []Task {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	tasks := cloneTasks(l.tasks)
	sort.Slice(tasks, func(i, j int) bool {
		return taskLess(tasks[i], tasks[j], now)
	})
	return tasks
}

// ListOverdueTasks returns pending or in-progress tasks whose deadline
// has passed, in scheduling order.
func (l *Library) ListOverdueTasks() []Task {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	var overdue []Task
	for _, task := range l.tasks {
		if task.IsOverdue(now) {
			overdue = append(overdue, task.Clone())
		}
	}
	sort.Slice(overdue, func(i, j int) bool {
		return taskLess(overdue[i], overdue[j], now)
	})
	return overdue
}

// nextTaskLocked returns the position of the task that would be
// scheduled first, or false when the queue is empty.
func (l *Library) nextTaskLocked(now time.Time) (int, bool) {
	if len(l.tasks) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(l.tasks); i++ {
		if taskLess(l.tasks[i], l.tasks[best], now) {
			best = i
		}
	}
	return best, true
}

func (l *Library) removeTaskLocked(id string) (Task, error) {
	pos, ok := l.taskPos[id]
	if !ok {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	removed := l.tasks[pos].Clone()
	l.tasks = append(l.tasks[:pos], l.tasks[pos+1:]...)
	delete(l.taskPos, id)
	for i := pos; i < len(l.tasks); i++ {
		l.taskPos[l.tasks[i].ID] = i
	}
	return removed, nil
}

func applyTaskDefaults(task Task) Task {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
	if task.Status == "" {
		task.Status = StatusPending
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	return task
}
