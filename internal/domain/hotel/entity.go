package hotel

import "github.com/google/uuid"

// Hotel carries the minimum the booking core needs from the identity/metadata
// collaborator: a resolvable id and a display name.
type Hotel struct {
	id     uuid.UUID
	name   string
	active bool
}

func Reconstruct(id uuid.UUID, name string, active bool) *Hotel {
	return &Hotel{id: id, name: name, active: active}
}

func (h *Hotel) ID() uuid.UUID { return h.id }
func (h *Hotel) Name() string { return h.name }
func (h *Hotel) IsActive() bool { return h.active }
