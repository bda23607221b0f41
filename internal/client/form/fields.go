package form

import "github.com/ProgrammedByHussain/LandLocks/internal/client/models"

// FieldStore accumulates the descriptive fields one edit at a time.
type FieldStore struct {
	fields models.FormFields
}

// Update replaces a single field and returns the new record.
func (s *FieldStore) Update(name, value string) (models.FormFields, error) {
	next, err := s.fields.With(name, value)
	if err != nil {
		return s.fields, err
	}
	s.fields = next
	return next, nil
}

func (s *FieldStore) Fields() models.FormFields {
	return s.fields
}

// Reset empties every field.
func (s *FieldStore) Reset() models.FormFields {
	s.fields = models.FormFields{}
	return s.fields
}
