package messages

// Sync messages for the reconcile-and-install run.
const (
	SyncSystemRequired = "sync system is required"
	SyncDeclined       = "installation declined"
)

// Reconcile messages for building transactions.
const (
	ReconcileManagerRequired = "package manager is required"
	ReconcileUnknownModeFmt  = "unknown mixed source mode %q"
)
