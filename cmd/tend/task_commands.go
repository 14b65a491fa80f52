package main

import (
	"github.com/spf13/cobra"
)

// tend add
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task.

With no title and no flags, opens $EDITOR over a TOML representation of
the task when running interactively. Use --no-edit to skip the editor, or
--edit to force opening the editor even when not interactive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addNotes    string
	addTags     []string
	addWhen     string
	addDeadline string
	addReminder string
	addEdit     bool
	addNoEdit   bool
)

// tend modify
var modifyCmd = &cobra.Command{
	Use:   "modify <id>",
	Short: "Modify a task's fields",
	Long: `Modify a task's fields.

Only the flags you supply are applied; everything else is left untouched.
With no flags, opens $EDITOR over a TOML representation of the task when
running interactively.`,
	Aliases: []string{"edit"},
	Args:    cobra.ExactArgs(1),
	RunE:    runModify,
}

var (
	modifyTitle    string
	modifyNotes    string
	modifyTags     []string
	modifyWhen     string
	modifyDeadline string
	modifyReminder string
	modifyEdit     bool
	modifyNoEdit   bool
)

// tend start
var startCmd = &cobra.Command{
	Use:   "start <id>...",
	Short: "Mark one or more tasks as active",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStart,
}

// tend stop
var stopCmd = &cobra.Command{
	Use:   "stop <id>...",
	Short: "Stop working on one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStop,
}

// tend done
var doneCmd = &cobra.Command{
	Use:     "done <id>...",
	Short:   "Mark one or more tasks as complete",
	Aliases: []string{"complete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDone,
}

// tend remove
var removeCmd = &cobra.Command{
	Use:     "remove <id>...",
	Short:   "Remove one or more tasks",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

// tend clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tasks",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

// tend list
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listStatus string
	listJSON   bool
	listYAML   bool
)

// tend show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

// tend sub
var subCmd = &cobra.Command{
	Use:   "sub <id> <title>",
	Short: "Add a subtask to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runSub,
}

var (
	subNotes    string
	subTags     []string
	subWhen     string
	subDeadline string
	subReminder string
)

func init() {
	rootCmd.AddCommand(addCmd, modifyCmd, startCmd, stopCmd, doneCmd,
		removeCmd, clearCmd, listCmd, showCmd, subCmd)

	// tend add flags
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Notes explaining the task")
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag (repeatable)")
	addCmd.Flags().StringVarP(&addWhen, "when", "w", "", "Date to do the task (YYYY-MM-DD [HH:MM])")
	addCmd.Flags().StringVar(&addDeadline, "deadline", "", "Latest acceptable completion date")
	addCmd.Flags().StringVar(&addReminder, "reminder", "", "When a reminder should fire")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no title)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Never open $EDITOR")

	// tend modify flags
	modifyCmd.Flags().StringVar(&modifyTitle, "title", "", "New title")
	modifyCmd.Flags().StringVarP(&modifyNotes, "notes", "n", "", "New notes")
	modifyCmd.Flags().StringArrayVarP(&modifyTags, "tag", "t", nil, "New tags (repeatable, replaces all tags)")
	modifyCmd.Flags().StringVarP(&modifyWhen, "when", "w", "", "New date to do the task")
	modifyCmd.Flags().StringVar(&modifyDeadline, "deadline", "", "New deadline")
	modifyCmd.Flags().StringVar(&modifyReminder, "reminder", "", "New reminder")
	modifyCmd.Flags().BoolVarP(&modifyEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no flags)")
	modifyCmd.Flags().BoolVar(&modifyNoEdit, "no-edit", false, "Never open $EDITOR")

	// tend list flags
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (inbox, pending, active, complete)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output as YAML")

	// tend sub flags
	subCmd.Flags().StringVarP(&subNotes, "notes", "n", "", "Notes explaining the subtask")
	subCmd.Flags().StringArrayVarP(&subTags, "tag", "t", nil, "Tag (repeatable)")
	subCmd.Flags().StringVarP(&subWhen, "when", "w", "", "Date to do the subtask")
	subCmd.Flags().StringVar(&subDeadline, "deadline", "", "Latest acceptable completion date")
	subCmd.Flags().StringVar(&subReminder, "reminder", "", "When a reminder should fire")
}
