package models

import "time"

// MetadataRecord is the payload sent to the registry alongside the owner.
// It is derived from FormFields and the uploaded file at submission time.
type MetadataRecord struct {
	Title           string
	Description     string
	Price           string
	Category        string
	Location        string
	ContactInfo     string
	FileName        string
	FileSize        int64
	UploadTimestamp time.Time
}

// NewMetadataRecord projects the fields and file descriptors into a record
// stamped with at.
func NewMetadataRecord(fields FormFields, file UploadedFile, at time.Time) MetadataRecord {
	return MetadataRecord{
		Title:           fields.Title,
		Description:     fields.Description,
		Price:           fields.Price,
		Category:        fields.Category,
		Location:        fields.Location,
		ContactInfo:     fields.ContactInfo,
		FileName:        file.Name,
		FileSize:        file.Size,
		UploadTimestamp: at.UTC(),
	}
}

// MintRequest is built fresh for every submission.
type MintRequest struct {
	Owner    string
	Metadata MetadataRecord
}

// Asset is an NFT as reported back by the registry.
type Asset struct {
	ID        string
	Owner     string
	CreatedAt time.Time
	Metadata  MetadataRecord
}
