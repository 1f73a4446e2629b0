package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sayedbaharun/aura/pkg/models"
)

// completeTaskIDs returns a completion function that lists task IDs,
// optionally filtered to exclude certain statuses.
func completeTaskIDs(excludeStatuses ...models.TaskStatus) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if Tasks == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := Tasks.Load(); err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		tasks, err := Tasks.GetAllTasks()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		exclude := make(map[models.TaskStatus]bool)
		for _, s := range excludeStatuses {
			exclude[s] = true
		}

		var ids []string
		for _, task := range tasks {
			if exclude[task.Status] {
				continue
			}
			if toComplete == "" || strings.HasPrefix(task.ID, toComplete) {
				// Include the title as description for better UX.
				ids = append(ids, task.ID+"\t"+task.Title)
			}
		}

		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeSlots returns completions for slot keys with their time windows.
func completeSlots(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	if Catalog == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var slots []string
	for _, slot := range Catalog.Slots() {
		slots = append(slots, fmt.Sprintf("%s\t%s %s-%s", slot.Key, slot.Label, slot.Start, slot.End))
	}
	return slots, cobra.ShellCompDirectiveNoFileComp
}

// completePriorities returns a completion function for priority values.
func completePriorities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"P0\tCritical",
		"P1\tHigh",
		"P2\tMedium",
		"P3\tLow",
	}, cobra.ShellCompDirectiveNoFileComp
}

// completeStatuses returns a completion function for task status values.
func completeStatuses(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"todo\tQueued for future work",
		"in_progress\tActively being worked on",
		"on_hold\tPaused",
		"done\tCompleted",
		"cancelled\tWill not be done",
	}, cobra.ShellCompDirectiveNoFileComp
}

// completeTypes returns a completion function for task type values.
func completeTypes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"deep_work\tFocused creative or analytical work",
		"admin\tAdministrative chores",
		"habit\tRecurring practice",
		"errand\tOut-and-about task",
	}, cobra.ShellCompDirectiveNoFileComp
}
