// Package state persists the incremental-run manifest.
//
// The manifest records, for every input that was cropped successfully, the
// size and modification time it had at the time. An incremental run skips
// inputs whose size and mtime still match.
//
// # Usage
//
//	repo := state.NewFileRepository(outputDir)
//
//	m, err := repo.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	if m.Unchanged(rel, info) {
//	    // skip
//	}
//	m.Record(rel, info)
//	if err := repo.Save(ctx, m); err != nil {
//	    return err
//	}
//
// State JSON uses snake_case field names.
package state
