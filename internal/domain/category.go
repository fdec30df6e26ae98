package domain

import "github.com/google/uuid"

// Category groups a user's tasks under a title.
type Category struct {
	EventRecorder

	ID     uuid.UUID
	UserID uuid.UUID
	Title  CategoryTitle
}

// NewCategory creates a category owned by the given user. The creation event
// is recorded on the owning User aggregate (see User.AddCategory), not here.
func NewCategory(userID uuid.UUID, title CategoryTitle) *Category {
	return &Category{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
	}
}

// ReconstructCategory rebuilds a category from a persisted row.
func ReconstructCategory(id, userID uuid.UUID, title CategoryTitle) *Category {
	return &Category{
		ID:     id,
		UserID: userID,
		Title:  title,
	}
}

// Delete records a CategoryDeleted event. Removal from storage is the
// repository's concern.
func (c *Category) Delete() {
	c.Record(CategoryDeleted{
		EventMeta:  NewEventMeta(),
		CategoryID: c.ID,
	})
}

// UpdateTitle renames the category and records a CategoryUpdated event.
func (c *Category) UpdateTitle(title CategoryTitle) {
	c.Record(CategoryUpdated{
		EventMeta:  NewEventMeta(),
		CategoryID: c.ID,
		Title:      title.String(),
	})
	c.Title = title
}
