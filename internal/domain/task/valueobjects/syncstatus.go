package valueobjects

// SyncStatus tracks whether a ticket has been mirrored to the project's
// linked GitHub repository.
type SyncStatus string

const (
	SyncNone    SyncStatus = "none"
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
)

func (s SyncStatus) String() string {
	return string(s)
}

func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncNone, SyncPending, SyncSynced, SyncFailed:
		return true
	}
	return false
}

func (s SyncStatus) IsSynced() bool {
	return s == SyncSynced
}
