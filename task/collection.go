package task

import "fmt"

// Collection is the ordered, index-addressed set of tasks for one session.
// Indices run 0..Len() in insertion order and are invalidated by Remove and
// Clear. A Collection is not safe for concurrent use.
type Collection struct {
	// Path identifies where the collection's data lives. It is opaque to
	// the collection itself; Load and Save interpret it as a file path.
	Path string `json:"path" yaml:"path"`

	// Tasks holds the tasks in insertion order.
	Tasks []Task `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// NewCollection returns an empty collection bound to path.
func NewCollection(path string) *Collection {
	return &Collection{Path: path}
}

// TaskExists returns true if id addresses a task in the collection.
func (c *Collection) TaskExists(id int) bool {
	return id >= 0 && id < c.Len()
}

// IsEmpty returns true if the collection holds no tasks.
func (c *Collection) IsEmpty() bool {
	return c.Len() == 0
}

// Len returns the number of tasks in the collection.
func (c *Collection) Len() int {
	return len(c.Tasks)
}

// Get returns the task at id for in-place editing.
//
// An empty collection yields ErrNoTasks; an out-of-range id on a non-empty
// collection yields ErrTaskNotFound. The empty check takes precedence.
func (c *Collection) Get(id int) (*Task, error) {
	if c.IsEmpty() {
		return nil, ErrNoTasks
	}
	if !c.TaskExists(id) {
		return nil, taskNotFoundError(id)
	}
	return &c.Tasks[id], nil
}

// Push appends a task to the end of the collection.
func (c *Collection) Push(t Task) {
	c.Tasks = append(c.Tasks, t)
}

// Remove deletes the task at id, shifting later indices down by one.
// Indices held across a Remove are stale.
func (c *Collection) Remove(id int) error {
	if !c.TaskExists(id) {
		return taskNotFoundError(id)
	}
	c.Tasks = append(c.Tasks[:id], c.Tasks[id+1:]...)
	return nil
}

// Clear discards all tasks, returning the collection to its empty state.
// Clearing an already-empty collection yields ErrNoTasks.
func (c *Collection) Clear() error {
	if c.IsEmpty() {
		return ErrNoTasks
	}
	c.Tasks = nil
	return nil
}

func taskNotFoundError(id int) error {
	return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
}
