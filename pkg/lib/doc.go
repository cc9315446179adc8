// Package lib provides a Go SDK for managing tcof project checklists
// programmatically.
//
// This package allows applications to create projects, reconcile checklists
// and edit tasks without shelling out to the tcof CLI binary. It is useful
// for scripting, automation, and building tools on top of tcof.
//
// # Quick Start
//
// Create a client, create a project and work its checklist:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a project.
//	project, err := client.CreateProject(ctx, "Website relaunch", "Q3 marketing site")
//
//	// Reconcile the checklist: catalog recommendations merged with stored tasks.
//	cl, err := client.Checklist(ctx, project.ID)
//	for _, stage := range lib.StageOrder() {
//	    for _, task := range cl.Stages[stage] {
//	        fmt.Printf("[%s] %s\n", stage, task.Text)
//	    }
//	}
//
//	// Add, complete, delete.
//	task, _ := client.AddTask(ctx, project.ID, lib.AddTaskOpts{Text: "Book launch review"})
//	client.CompleteTask(ctx, project.ID, task.ID)
//	client.DeleteTask(ctx, project.ID, task.ID)
//
// # The Catalog
//
// Every checklist starts from the success factor catalog, a YAML file listing
// the recommended tasks per delivery stage. The client reads it fresh on
// every operation, so edits show up immediately. Point [Config].CatalogPath
// at the file (default ~/.tcof/catalog.yaml), or set [Config].CatalogURL to
// fetch the catalog from a tcof server instead.
//
// Catalog recommendations appear on the checklist without a stored record.
// The first edit (an update or a completion) materializes the recommendation
// into a stored task; [Task].Persisted tells the two apart, and [Task].SourceID
// links a materialized task back to its recommendation.
//
// # Exports
//
// Write a checklist as CSV, one row per task grouped by stage:
//
//	var buf bytes.Buffer
//	client.ExportCSV(ctx, project.ID, &buf)
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: Resource does not exist.
//   - [ErrAlreadyExists]: Resource with the same identity already exists.
//   - [ErrNotValid]: Invalid input or operation (e.g. deleting a
//     recommendation that was never materialized).
//
// # Testing
//
// Use a temporary database and catalog file to write tests without touching
// the home directory:
//
//	client, _ := lib.New(ctx, lib.Config{
//	    DBPath:      filepath.Join(t.TempDir(), "test.db"),
//	    CatalogPath: "testdata/catalog.yaml",
//	})
//	defer client.Close()
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines. The
// underlying storage uses SQLite with WAL mode, and reconciliation engines
// are created per-operation.
package lib
