package domain

// DraftState is the lifecycle of the create/edit form.
type DraftState string

const (
	// DraftClosed means no form is shown.
	DraftClosed DraftState = "closed"

	// DraftCreating means the form edits a record that does not exist yet.
	DraftCreating DraftState = "creating"

	// DraftEditing means the form edits an existing record.
	DraftEditing DraftState = "editing"
)

// IsOpen returns true if the form is visible.
func (s DraftState) IsOpen() bool {
	return s == DraftCreating || s == DraftEditing
}

// StoreState is the load status of the record list.
type StoreState string

const (
	StoreIdle    StoreState = "idle"
	StoreLoading StoreState = "loading"
)
