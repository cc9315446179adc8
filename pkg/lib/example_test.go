package lib_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Greg-CLD/tcof/pkg/lib"
)

// exampleCatalog is a small success factor catalog the examples run against.
const exampleCatalog = `factors:
  - id: F1
    title: Secure a project champion
    description: A senior sponsor who owns the outcome.
    tasks:
      identification:
        - Name the project champion
      definition:
        - Confirm the champion owns the budget
  - id: F2
    title: Plan the delivery
    tasks:
      delivery:
        - Walk the plan with the delivery team
heuristics:
  - id: H1
    title: Keep the first release boring
`

// This example shows how to create a client with temporary paths for testing.
func Example_testing() {
	ctx := context.Background()

	// Use a temp directory so nothing touches the home directory.
	dir, err := os.MkdirTemp("", "tcof-example-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(catalogPath, []byte(exampleCatalog), 0o644); err != nil {
		panic(err)
	}

	client, err := lib.New(ctx, lib.Config{
		DBPath:      filepath.Join(dir, "tcof.db"),
		CatalogPath: catalogPath,
	})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	// Create a project and reconcile its checklist.
	project, err := client.CreateProject(ctx, "Website relaunch", "Q3 marketing site")
	if err != nil {
		panic(err)
	}

	cl, err := client.Checklist(ctx, project.ID)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Checklist: %d tasks, %d done\n", cl.Len(), cl.CompletedCount())

	// Output:
	// Checklist: 3 tasks, 0 done
}

// This example shows the full checklist lifecycle: create a project,
// reconcile, complete a recommendation, add a custom task.
func Example_lifecycle() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "tcof-example-lifecycle-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(catalogPath, []byte(exampleCatalog), 0o644); err != nil {
		panic(err)
	}

	client, err := lib.New(ctx, lib.Config{
		DBPath:      filepath.Join(dir, "tcof.db"),
		CatalogPath: catalogPath,
	})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	// Create.
	project, err := client.CreateProject(ctx, "Website relaunch", "")
	if err != nil {
		panic(err)
	}
	fmt.Printf("1. Created: %s\n", project.Name)

	// Reconcile.
	cl, err := client.Checklist(ctx, project.ID)
	if err != nil {
		panic(err)
	}
	fmt.Printf("2. Checklist has %d tasks\n", cl.Len())

	// Complete a catalog recommendation. The first edit materializes it into
	// a stored task.
	done, err := client.CompleteTask(ctx, project.ID, cl.Stages[lib.StageIdentification][0].ID)
	if err != nil {
		panic(err)
	}
	fmt.Printf("3. Completed: %s\n", done.Text)

	// Add a custom task.
	added, err := client.AddTask(ctx, project.ID, lib.AddTaskOpts{
		Text:  "Book the launch retrospective",
		Stage: lib.StageClosure,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("4. Added: %s\n", added.Text)

	// Reconcile again.
	cl, err = client.Checklist(ctx, project.ID)
	if err != nil {
		panic(err)
	}
	fmt.Printf("5. Checklist has %d tasks (%d done)\n", cl.Len(), cl.CompletedCount())

	// Output:
	// 1. Created: Website relaunch
	// 2. Checklist has 3 tasks
	// 3. Completed: Name the project champion
	// 4. Added: Book the launch retrospective
	// 5. Checklist has 4 tasks (1 done)
}

// This example shows how to export a checklist as CSV.
func ExampleClient_ExportCSV() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "tcof-example-export-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(catalogPath, []byte(exampleCatalog), 0o644); err != nil {
		panic(err)
	}

	client, err := lib.New(ctx, lib.Config{
		DBPath:      filepath.Join(dir, "tcof.db"),
		CatalogPath: catalogPath,
	})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	project, err := client.CreateProject(ctx, "Website relaunch", "")
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	if err := client.ExportCSV(ctx, project.ID, &buf); err != nil {
		panic(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	fmt.Println(lines[0])
	fmt.Printf("rows: %d\n", len(lines)-1)

	// Output:
	// Stage,Task,Status,Completed,Priority,Due,Owner,Origin,Notes
	// rows: 3
}

// This example shows how to handle SDK errors using errors.Is.
func Example_errorHandling() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "tcof-example-errors-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(catalogPath, []byte(exampleCatalog), 0o644); err != nil {
		panic(err)
	}

	client, err := lib.New(ctx, lib.Config{
		DBPath:      filepath.Join(dir, "tcof.db"),
		CatalogPath: catalogPath,
	})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	// Try to reconcile a non-existent project.
	_, err = client.Checklist(ctx, "does-not-exist")
	if errors.Is(err, lib.ErrNotFound) {
		fmt.Println("project not found (expected)")
	}

	// Try to delete a recommendation that was never edited.
	project, err := client.CreateProject(ctx, "Errors", "")
	if err != nil {
		panic(err)
	}
	cl, err := client.Checklist(ctx, project.ID)
	if err != nil {
		panic(err)
	}
	err = client.DeleteTask(ctx, project.ID, cl.All[0].ID)
	if errors.Is(err, lib.ErrNotValid) {
		fmt.Println("recommendation has no stored record (expected)")
	}

	// Output:
	// project not found (expected)
	// recommendation has no stored record (expected)
}

// This example shows a fully specified custom task.
func ExampleAddTaskOpts() {
	due := time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC)
	opts := lib.AddTaskOpts{
		Text:     "Sign off the launch checklist",
		Stage:    lib.StageClosure,
		Priority: lib.PriorityHigh,
		Owner:    "dana",
		DueDate:  &due,
	}

	fmt.Printf("text=%q stage=%s priority=%s due=%s\n",
		opts.Text, opts.Stage, opts.Priority, opts.DueDate.Format("2006-01-02"))

	// Output:
	// text="Sign off the launch checklist" stage=closure priority=high due=2026-11-03
}
