package contracts

import "context"

// Notifier shows a blocking failure notice. Notify returns once the user has
// been told.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Confirmer asks the user a yes/no question. Only a true result counts as consent.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}
