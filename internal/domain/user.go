package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle              UserState = "idle"
	StateWaitingPassword   UserState = "waiting_password"
	StateWaitingWord       UserState = "waiting_word"
	StateWaitingType       UserState = "waiting_type"
	StateWaitingDefinition UserState = "waiting_definition"
)

// EditingTarget references the term being edited by its surrogate id.
// The zero value means a new term is being created.
type EditingTarget struct {
	ID int64
}

// IsNew reports whether the target is create mode
func (t EditingTarget) IsNew() bool {
	return t.ID == 0
}

// PendingAction is an admin action deferred until the password is accepted
type PendingAction string

const (
	PendingNone   PendingAction = ""
	PendingAdd    PendingAction = "add"
	PendingEdit   PendingAction = "edit"
	PendingDelete PendingAction = "delete"
	PendingExport PendingAction = "export"
	PendingReload PendingAction = "reload"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State   UserState
	Target  EditingTarget
	Draft   Term
	Pending PendingAction
}
