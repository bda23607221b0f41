package registryapi

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

var ErrMalformedRequest = errors.New("malformed registry message")

// Metadata mirrors the descriptive payload of a mint request. Key names on
// the wire are snake_case.
type Metadata struct {
	Title           string
	Description     string
	Price           string
	Category        string
	Location        string
	ContactInfo     string
	FileName        string
	FileSize        int64
	UploadTimestamp string
}

type MintRequest struct {
	Owner    string
	Metadata Metadata
}

// ToStruct encodes r as a google.protobuf.Struct.
func (r MintRequest) ToStruct() (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]any{
		"owner":    r.Owner,
		"metadata": r.Metadata.toMap(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode mint request: %w", err)
	}
	return s, nil
}

// MintRequestFromStruct decodes a Struct produced by ToStruct. Missing string
// keys decode as "", but the metadata object itself is mandatory.
func MintRequestFromStruct(s *structpb.Struct) (MintRequest, error) {
	if s == nil {
		return MintRequest{}, fmt.Errorf("%w: empty message", ErrMalformedRequest)
	}
	fields := s.GetFields()

	md, err := metadataFromStruct(fields["metadata"].GetStructValue())
	if err != nil {
		return MintRequest{}, err
	}

	return MintRequest{
		Owner:    fields["owner"].GetStringValue(),
		Metadata: md,
	}, nil
}

func (m Metadata) toMap() map[string]any {
	return map[string]any{
		"title":            m.Title,
		"description":      m.Description,
		"price":            m.Price,
		"category":         m.Category,
		"location":         m.Location,
		"contact_info":     m.ContactInfo,
		"file_name":        m.FileName,
		"file_size":        m.FileSize,
		"upload_timestamp": m.UploadTimestamp,
	}
}

func metadataFromStruct(md *structpb.Struct) (Metadata, error) {
	if md == nil {
		return Metadata{}, fmt.Errorf("%w: metadata object missing", ErrMalformedRequest)
	}
	mf := md.GetFields()

	size := mf["file_size"].GetNumberValue()
	if size < 0 || size != math.Trunc(size) {
		return Metadata{}, fmt.Errorf("%w: file_size %v", ErrMalformedRequest, size)
	}

	str := func(key string) string { return mf[key].GetStringValue() }

	return Metadata{
		Title:           str("title"),
		Description:     str("description"),
		Price:           str("price"),
		Category:        str("category"),
		Location:        str("location"),
		ContactInfo:     str("contact_info"),
		FileName:        str("file_name"),
		FileSize:        int64(size),
		UploadTimestamp: str("upload_timestamp"),
	}, nil
}

// NFT is a minted asset as returned by GetNFT and ListNFTs. CreatedAt is
// RFC 3339 in UTC.
type NFT struct {
	ID        string
	Owner     string
	CreatedAt string
	Metadata  Metadata
}

func (n NFT) toMap() map[string]any {
	return map[string]any{
		"id":         n.ID,
		"owner":      n.Owner,
		"created_at": n.CreatedAt,
		"metadata":   n.Metadata.toMap(),
	}
}

func (n NFT) ToStruct() (*structpb.Struct, error) {
	s, err := structpb.NewStruct(n.toMap())
	if err != nil {
		return nil, fmt.Errorf("encode nft: %w", err)
	}
	return s, nil
}

func NFTFromStruct(s *structpb.Struct) (NFT, error) {
	if s == nil {
		return NFT{}, fmt.Errorf("%w: empty nft", ErrMalformedRequest)
	}
	fields := s.GetFields()
	id := fields["id"].GetStringValue()
	if id == "" {
		return NFT{}, fmt.Errorf("%w: nft id missing", ErrMalformedRequest)
	}

	md, err := metadataFromStruct(fields["metadata"].GetStructValue())
	if err != nil {
		return NFT{}, err
	}

	return NFT{
		ID:        id,
		Owner:     fields["owner"].GetStringValue(),
		CreatedAt: fields["created_at"].GetStringValue(),
		Metadata:  md,
	}, nil
}

// EncodeNFTList wraps list as {"nfts": [...]}.
func EncodeNFTList(list []NFT) (*structpb.Struct, error) {
	items := make([]any, 0, len(list))
	for _, n := range list {
		items = append(items, n.toMap())
	}
	s, err := structpb.NewStruct(map[string]any{"nfts": items})
	if err != nil {
		return nil, fmt.Errorf("encode nft list: %w", err)
	}
	return s, nil
}

// DecodeNFTList reverses EncodeNFTList. An absent list decodes as empty.
func DecodeNFTList(s *structpb.Struct) ([]NFT, error) {
	values := s.GetFields()["nfts"].GetListValue().GetValues()
	out := make([]NFT, 0, len(values))
	for i, v := range values {
		n, err := NFTFromStruct(v.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("nft %d: %w", i, err)
		}
		out = append(out, n)
	}
	return out, nil
}
