package processing

import (
	"labelsheet/internal/deployment"
	"labelsheet/internal/labels"
	"labelsheet/internal/sheets"
)

// Compile-time interface compliance checks
// These will cause compilation errors if the types don't implement the interfaces

var (
	_ DocumentGenerator = (*labels.Generator)(nil)
	_ RosterReader      = (*sheets.RosterReader)(nil)
	_ Publisher         = (*deployment.SSHDeployer)(nil)
	_ DocumentSink      = (*DirectorySink)(nil)
	_ DocumentSink      = (*PublishSink)(nil)
	_ Observer          = noopObserver{}
)
