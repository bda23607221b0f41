// Package models defines the records kept by the registry server.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Asset is one minted NFT. Metadata is the JSON encoding of AssetMetadata.
type Asset struct {
	ID        string
	Owner     string
	Metadata  []byte
	CreatedAt time.Time
}

// AssetMetadata is the descriptive record attached to an Asset.
type AssetMetadata struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	Category        string `json:"category"`
	Location        string `json:"location"`
	ContactInfo     string `json:"contact_info"`
	FileName        string `json:"file_name"`
	FileSize        int64  `json:"file_size"`
	UploadTimestamp string `json:"upload_timestamp"`
}

func (a *Asset) DecodeMetadata() (AssetMetadata, error) {
	var md AssetMetadata
	if err := json.Unmarshal(a.Metadata, &md); err != nil {
		return AssetMetadata{}, fmt.Errorf("decode metadata of %s: %w", a.ID, err)
	}
	return md, nil
}
