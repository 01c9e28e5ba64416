package ports

import "github.com/bft-labs/sigcrop/pkg/state"

// StateRepository handles persistence of the incremental-run manifest.
// Implementations persist the manifest atomically.
type StateRepository = state.Repository
