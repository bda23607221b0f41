package models

import (
	"fmt"
	"strings"

	"github.com/ProgrammedByHussain/LandLocks/internal/common"
)

// Field names accepted by FormFields.With, in form order.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldLocation    = "location"
	FieldContactInfo = "contactInfo"
)

var FieldNames = []string{FieldTitle, FieldDescription, FieldPrice, FieldCategory, FieldLocation, FieldContactInfo}

// FormFields holds the descriptive fields of an asset. All of them are
// required at submission time; Price is a decimal kept as text.
type FormFields struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Location    string `json:"location" validate:"required"`
	ContactInfo string `json:"contactInfo" validate:"required"`
}

// CanonicalField maps user input such as "Contact_Info" to one of FieldNames.
func CanonicalField(name string) (string, bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	for _, f := range FieldNames {
		if strings.ToLower(f) == key {
			return f, true
		}
	}
	return "", false
}

// With returns a copy of f with a single field replaced.
func (f FormFields) With(name, value string) (FormFields, error) {
	field, ok := CanonicalField(name)
	if !ok {
		return f, fmt.Errorf("%w: %q", common.ErrUnknownField, name)
	}
	switch field {
	case FieldTitle:
		f.Title = value
	case FieldDescription:
		f.Description = value
	case FieldPrice:
		f.Price = value
	case FieldCategory:
		f.Category = value
	case FieldLocation:
		f.Location = value
	case FieldContactInfo:
		f.ContactInfo = value
	}
	return f, nil
}

// Get returns the value stored under a canonical field name.
func (f FormFields) Get(name string) string {
	switch name {
	case FieldTitle:
		return f.Title
	case FieldDescription:
		return f.Description
	case FieldPrice:
		return f.Price
	case FieldCategory:
		return f.Category
	case FieldLocation:
		return f.Location
	case FieldContactInfo:
		return f.ContactInfo
	}
	return ""
}

func (f FormFields) IsEmpty() bool {
	return f == FormFields{}
}
