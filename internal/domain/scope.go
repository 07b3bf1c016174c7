package domain

// ScopeTags carries the optional attributes used for visibility filtering.
// A nil field means the record is not tagged with that attribute.
type ScopeTags struct {
	OwnerID            *string
	TelegramCustomerID *string
	ShowroomCode       *string
}

// Scoped is implemented by every record the data scope filter can handle.
type Scoped interface {
	ScopeTags() ScopeTags
}
