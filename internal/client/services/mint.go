// Package services contains the application services of the LandLocks
// client. MintService is the submission pipeline: it turns the collected form
// and document into a mint request, calls the registry and, once an NFT id
// is known, stores the encoded document locally in the background.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/client"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/repositories/documents"
	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/logging"
	"github.com/go-playground/validator/v10"
)

// KeyStrategy selects the local storage key of a persisted document.
type KeyStrategy string

const (
	// KeyByNFTID stores each document under its mint identifier, so two
	// submissions never overwrite each other.
	KeyByNFTID KeyStrategy = "nft_id"
	// KeyByTitle stores the document under the submitted title. Submissions
	// sharing a title overwrite each other.
	KeyByTitle KeyStrategy = "title"
)

var ErrUnknownKeyStrategy = errors.New("unknown persist key strategy")

func ParseKeyStrategy(s string) (KeyStrategy, error) {
	switch KeyStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case KeyByNFTID, "":
		return KeyByNFTID, nil
	case KeyByTitle:
		return KeyByTitle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKeyStrategy, s)
	}
}

const DefaultPersistTimeout = 30 * time.Second

// Receipt describes a successful mint.
type Receipt struct {
	NFTID string
	// Key is where the encoded document is being written.
	Key string
	// Persisted yields the outcome of the background write exactly once and
	// is closed afterwards.
	Persisted <-chan error
}

// MintService submits a completed form. Callers are expected to prevent
// concurrent submissions of the same form.
type MintService interface {
	Submit(ctx context.Context, owner string, fields models.FormFields, file models.UploadedFile) (*Receipt, error)
}

type mintService struct {
	minter         client.Minter
	docs           documents.Repository
	keys           KeyStrategy
	validate       *validator.Validate
	logger         logging.Logger
	now            func() time.Time
	persistTimeout time.Duration
}

type MintOption func(*mintService)

func WithKeyStrategy(k KeyStrategy) MintOption {
	return func(s *mintService) { s.keys = k }
}

func WithLogger(l logging.Logger) MintOption {
	return func(s *mintService) { s.logger = l }
}

func WithClock(now func() time.Time) MintOption {
	return func(s *mintService) { s.now = now }
}

func WithPersistTimeout(d time.Duration) MintOption {
	return func(s *mintService) { s.persistTimeout = d }
}

func NewMintService(m client.Minter, docs documents.Repository, opts ...MintOption) MintService {
	s := &mintService{
		minter:         m,
		docs:           docs,
		keys:           KeyByNFTID,
		validate:       newFormValidator(),
		logger:         logging.Nop{},
		now:            time.Now,
		persistTimeout: DefaultPersistTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("module", "mint_service")
	return s
}

// newFormValidator reports fields by their json names, so messages read
// "title, contactInfo" rather than Go field names.
func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *mintService) checkComplete(fields models.FormFields) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("%w: %s", common.ErrIncompleteForm, strings.Join(missing, ", "))
}

// Submit mints the asset and starts persisting the document. fields and
// file are values owned by the call, so a caller resetting its own state
// right after Submit returns cannot affect the background write.
func (s *mintService) Submit(ctx context.Context, owner string, fields models.FormFields, file models.UploadedFile) (*Receipt, error) {
	if err := s.checkComplete(fields); err != nil {
		return nil, err
	}

	req := models.MintRequest{
		Owner:    owner,
		Metadata: models.NewMetadataRecord(fields, file, s.now()),
	}

	id, err := s.minter.Mint(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "mint failed", "title", fields.Title, "error", err)
		return nil, err
	}
	s.logger.Info(ctx, "nft minted", "nft_id", id, "owner", owner, "file", file.Name)

	key := s.storageKey(id, fields)
	return &Receipt{NFTID: id, Key: key, Persisted: s.persist(ctx, key, file)}, nil
}

func (s *mintService) storageKey(id string, fields models.FormFields) string {
	if s.keys == KeyByTitle {
		return fields.Title
	}
	return id
}

// persist encodes and stores the document in its own goroutine. The job is
// detached from ctx cancellation but bounded by persistTimeout.
func (s *mintService) persist(ctx context.Context, key string, file models.UploadedFile) <-chan error {
	done := make(chan error, 1)
	base := context.WithoutCancel(ctx)

	go func() {
		defer close(done)

		ctx, cancel := context.WithTimeout(base, s.persistTimeout)
		defer cancel()

		err := s.encodeAndStore(ctx, key, file)
		if err != nil {
			s.logger.Error(ctx, "document not persisted", "key", key, "error", err)
		} else {
			s.logger.Debug(ctx, "document persisted", "key", key, "size", file.Size)
		}
		done <- err
	}()

	return done
}

func (s *mintService) encodeAndStore(ctx context.Context, key string, file models.UploadedFile) error {
	encoded, err := EncodeDocument(file)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.docs.Set(ctx, key, encoded); err != nil {
		return fmt.Errorf("store document: %w", err)
	}
	return nil
}

// EncodeDocument reads the whole file and returns it as standard base64.
func EncodeDocument(file models.UploadedFile) (string, error) {
	r, err := file.Reader()
	if err != nil {
		return "", err
	}
	defer r.Close()

	var sb strings.Builder
	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	if _, err := io.Copy(enc, r); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
