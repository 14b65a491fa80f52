package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tendhq/tend/internal/editor"
	"github.com/tendhq/tend/task"
)

var fieldFlagNames = []string{"notes", "tag", "when", "deadline", "reminder"}

func anyFlagChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addEdit && addNoEdit {
		return fmt.Errorf("--edit and --no-edit are mutually exclusive")
	}

	hasTitle := len(args) > 0
	useEditor := addEdit || (!hasTitle && !addNoEdit &&
		!anyFlagChanged(cmd, fieldFlagNames...) && editor.IsInteractive())

	var title string
	var opts task.Options

	if useEditor {
		data := editor.DefaultCreateData()
		if hasTitle {
			data.Title = args[0]
		}
		data.Tags = addTags
		data.Notes = addNotes
		data.When = addWhen
		data.Deadline = addDeadline
		data.Reminder = addReminder

		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}
		title = parsed.Title
		opts = parsed.ToOptions()
	} else {
		if !hasTitle {
			return fmt.Errorf("title required (or run interactively to use $EDITOR)")
		}
		title = args[0]

		var err error
		opts.Notes = addNotes
		opts.Tags = addTags
		if opts.When, err = parseDateFlag(addWhen); err != nil {
			return err
		}
		if opts.Deadline, err = parseDateFlag(addDeadline); err != nil {
			return err
		}
		if opts.Reminder, err = parseDateFlag(addReminder); err != nil {
			return err
		}
	}

	if err := task.ValidateTitle(title); err != nil {
		return err
	}

	collection, _, err := loadCollection()
	if err != nil {
		return err
	}

	collection.Push(task.New(title, opts))
	if err := collection.Save(); err != nil {
		return err
	}

	fmt.Printf("Created task %d: %s\n", collection.Len()-1, title)
	return nil
}

func runModify(cmd *cobra.Command, args []string) error {
	if modifyEdit && modifyNoEdit {
		return fmt.Errorf("--edit and --no-edit are mutually exclusive")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	collection, _, err := loadCollection()
	if err != nil {
		return err
	}

	item, err := collection.Get(id)
	if err != nil {
		return err
	}

	flagNames := append([]string{"title"}, fieldFlagNames...)
	hasFlags := anyFlagChanged(cmd, flagNames...)
	useEditor := modifyEdit || (!hasFlags && !modifyNoEdit && editor.IsInteractive())

	var opts task.ModifyOptions

	if useEditor {
		parsed, err := editor.EditTask(item)
		if err != nil {
			return err
		}
		opts = parsed.ToModifyOptions()
	} else {
		if !hasFlags {
			return fmt.Errorf("nothing to modify: supply field flags or run interactively to use $EDITOR")
		}
		if cmd.Flags().Changed("title") {
			if err := task.ValidateTitle(modifyTitle); err != nil {
				return err
			}
			opts.Title = &modifyTitle
		}
		if cmd.Flags().Changed("notes") {
			opts.Notes = &modifyNotes
		}
		if cmd.Flags().Changed("tag") {
			opts.Tags = modifyTags
		}
		if opts.When, err = parseDateFlag(modifyWhen); err != nil {
			return err
		}
		if opts.Deadline, err = parseDateFlag(modifyDeadline); err != nil {
			return err
		}
		if opts.Reminder, err = parseDateFlag(modifyReminder); err != nil {
			return err
		}
	}

	item.Modify(opts)
	if err := collection.Save(); err != nil {
		return err
	}

	fmt.Printf("Modified task %d: %s\n", id, item.Title)
	return nil
}

func runStart(cmd *cobra.Command, args []string) error {
	return transitionAndReport(args, "Started", (*task.Task).Start)
}

func runStop(cmd *cobra.Command, args []string) error {
	return transitionAndReport(args, "Stopped", (*task.Task).Stop)
}

func runDone(cmd *cobra.Command, args []string) error {
	return transitionAndReport(args, "Completed", (*task.Task).Complete)
}

func transitionAndReport(args []string, verb string, fn func(*task.Task)) error {
	ids, err := parseTaskIDs(args)
	if err != nil {
		return err
	}

	collection, _, err := loadCollection()
	if err != nil {
		return err
	}

	for _, id := range ids {
		item, err := collection.Get(id)
		if err != nil {
			return err
		}
		fn(item)
		fmt.Printf("%s task %d: %s\n", verb, id, item.Title)
	}

	return collection.Save()
}

func runRemove(cmd *cobra.Command, args []string) error {
	ids, err := parseTaskIDs(args)
	if err != nil {
		return err
	}

	collection, _, err := loadCollection()
	if err != nil {
		return err
	}

	titles := make(map[int]string, len(ids))
	for _, id := range ids {
		item, err := collection.Get(id)
		if err != nil {
			return err
		}
		titles[id] = item.Title
	}

	// Remove from the highest index down so earlier ids stay valid.
	for i := len(ids) - 1; i >= 0; i-- {
		if err := collection.Remove(ids[i]); err != nil {
			return err
		}
	}

	if err := collection.Save(); err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Printf("Removed task %d: %s\n", id, titles[id])
	}
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	collection, _, err := loadCollection()
	if err != nil {
		return err
	}

	count := collection.Len()
	if err := collection.Clear(); err != nil {
		return err
	}

	if err := collection.Save(); err != nil {
		return err
	}

	if count == 1 {
		fmt.Println("Cleared 1 task")
	} else {
		fmt.Printf("Cleared %d tasks\n", count)
	}
	return nil
}

func runSub(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}
	title := args[1]
	if err := task.ValidateTitle(title); err != nil {
		return err
	}

	collection, _, err := loadCollection()
	if err != nil {
		return err
	}

	item, err := collection.Get(id)
	if err != nil {
		return err
	}

	var opts task.Options
	opts.Notes = subNotes
	opts.Tags = subTags
	if opts.When, err = parseDateFlag(subWhen); err != nil {
		return err
	}
	if opts.Deadline, err = parseDateFlag(subDeadline); err != nil {
		return err
	}
	if opts.Reminder, err = parseDateFlag(subReminder); err != nil {
		return err
	}

	item.AddSubtask(task.New(title, opts))
	if err := collection.Save(); err != nil {
		return err
	}

	fmt.Printf("Added subtask to task %d: %s\n", id, title)
	return nil
}
