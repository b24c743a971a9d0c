package domain

import "sort"

// ChangeTracker records which draft fields the user has set since the form
// was opened. Setting a field to the value it already held still marks it.
type ChangeTracker struct {
	dirtyFields map[string]struct{}
}

// NewChangeTracker creates an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirtyFields: make(map[string]struct{})}
}

// MarkDirty marks a field as edited.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirtyFields[field] = struct{}{}
}

// Dirty checks if a specific field has been edited.
func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.dirtyFields[field]
	return ok
}

// HasChanges returns true if any field has been edited.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}

// DirtyFields returns the edited field names in sorted order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirtyFields))
	for field := range ct.dirtyFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Clear forgets every edit.
func (ct *ChangeTracker) Clear() {
	ct.dirtyFields = make(map[string]struct{})
}
