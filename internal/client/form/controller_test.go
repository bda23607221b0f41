package form

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/client"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/services"
	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinter struct {
	mu   sync.Mutex
	id   string
	err  error
	reqs []models.MintRequest
}

func (f *fakeMinter) Mint(ctx context.Context, req models.MintRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.id, f.err
}

func (f *fakeMinter) Close() error { return nil }

func (f *fakeMinter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

// blockingSubmitter holds every call until release is closed.
type blockingSubmitter struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSubmitter) Submit(ctx context.Context, owner string, fields models.FormFields, file models.UploadedFile) (*services.Receipt, error) {
	b.entered <- struct{}{}
	<-b.release
	done := make(chan error)
	close(done)
	return &services.Receipt{NFTID: "nft-slow", Key: "nft-slow", Persisted: done}, nil
}

type countingPicker struct{ resets int }

func (p *countingPicker) Reset() { p.resets++ }

var docBytes = bytes.Repeat([]byte{0x25}, 1024)

func pdf(name string, content []byte) models.UploadedFile {
	return models.UploadedFile{
		Name:     name,
		Size:     int64(len(content)),
		MimeType: common.PDFMimeType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func fillLot12(t *testing.T, c *Controller) {
	t.Helper()
	for name, value := range map[string]string{
		"title":       "Lot 12",
		"description": "Lakeside parcel",
		"price":       "50000",
		"category":    "Residential",
		"location":    "Riga",
		"contactInfo": "owner@example.com",
	} {
		_, err := c.UpdateField(name, value)
		require.NoError(t, err)
	}
}

func toReview(t *testing.T, c *Controller) {
	t.Helper()
	for c.Step() < 2 {
		require.NoError(t, c.Advance())
	}
}

func waitPersisted(t *testing.T, r *services.Receipt) error {
	t.Helper()
	select {
	case err := <-r.Persisted:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("document was not persisted in time")
		return nil
	}
}

func TestController_HappyPathPersistsByTitle(t *testing.T) {
	ctx := context.Background()
	repos, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "landlocks.db"))
	require.NoError(t, err)
	defer repos.Close()

	m := &fakeMinter{id: "nft-001"}
	svc := services.NewMintService(m, repos.Documents, services.WithKeyStrategy(services.KeyByTitle))
	c := NewController(svc, StaticOwner("0xabc"), nil)

	require.NoError(t, c.SelectFile(pdf("doc.pdf", docBytes), nil))
	require.NoError(t, c.Advance())
	require.NoError(t, c.Advance())
	require.NoError(t, c.Advance())
	assert.Equal(t, 2, c.Step())

	fillLot12(t, c)

	id, err := c.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "nft-001", id)

	st := c.Status()
	assert.Contains(t, st.Success, "nft-001")
	assert.Empty(t, st.Error)

	assert.True(t, c.Fields().IsEmpty())
	_, hasFile := c.File()
	assert.False(t, hasFile)
	assert.Equal(t, UploadStep, c.Step())
	assert.False(t, c.Busy())

	r, ok := c.LastReceipt()
	require.True(t, ok)
	assert.Equal(t, "Lot 12", r.Key)
	require.NoError(t, waitPersisted(t, r))

	d, err := repos.Documents.Get(ctx, "Lot 12")
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(docBytes), d.Content)

	require.Equal(t, 1, m.calls())
	req := m.reqs[0]
	assert.Equal(t, "0xabc", req.Owner)
	want := models.MetadataRecord{
		Title:       "Lot 12",
		Description: "Lakeside parcel",
		Price:       "50000",
		Category:    "Residential",
		Location:    "Riga",
		ContactInfo: "owner@example.com",
		FileName:    "doc.pdf",
		FileSize:    1024,
	}
	if diff := cmp.Diff(want, req.Metadata, cmpopts.IgnoreFields(models.MetadataRecord{}, "UploadTimestamp")); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, req.Metadata.UploadTimestamp.IsZero())
}

func TestController_MintFailureKeepsForm(t *testing.T) {
	ctx := context.Background()
	repos, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "landlocks.db"))
	require.NoError(t, err)
	defer repos.Close()

	m := &fakeMinter{err: errors.New("network timeout")}
	c := NewController(services.NewMintService(m, repos.Documents), StaticOwner("0xabc"), nil)

	require.NoError(t, c.SelectFile(pdf("doc.pdf", docBytes), nil))
	toReview(t, c)
	fillLot12(t, c)
	before := c.Fields()

	_, err = c.Submit(ctx)
	require.Error(t, err)

	st := c.Status()
	assert.Contains(t, st.Error, "network timeout")
	assert.Contains(t, st.Error, "failed to create NFT")
	assert.Empty(t, st.Success)

	assert.Equal(t, before, c.Fields())
	f, ok := c.File()
	require.True(t, ok)
	assert.Equal(t, "doc.pdf", f.Name)
	assert.Equal(t, 2, c.Step())
	assert.False(t, c.Busy())

	_, ok = c.LastReceipt()
	assert.False(t, ok)

	keys, err := repos.Documents.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestController_RejectedFileBlocksAdvance(t *testing.T) {
	c := NewController(&blockingSubmitter{}, nil, nil)
	p := &countingPicker{}

	err := c.SelectFile(models.UploadedFile{Name: "image.png", Size: 1024, MimeType: "image/png"}, p)
	require.ErrorIs(t, err, common.ErrUnsupportedFileType)
	assert.Contains(t, c.Status().Error, "unsupported file type")
	assert.Equal(t, 1, p.resets)

	_, ok := c.File()
	assert.False(t, ok)

	require.ErrorIs(t, c.Advance(), common.ErrNoDocument)
	assert.Equal(t, UploadStep, c.Step())
}

func TestController_RejectionReplacesPreviousFile(t *testing.T) {
	c := NewController(&blockingSubmitter{}, nil, nil)
	require.NoError(t, c.SelectFile(pdf("doc.pdf", docBytes), nil))

	err := c.SelectFile(models.UploadedFile{Name: "huge.pdf", Size: common.MaxDocumentSize + 1, MimeType: common.PDFMimeType}, nil)
	require.ErrorIs(t, err, common.ErrFileTooLarge)

	_, ok := c.File()
	assert.False(t, ok)
}

func TestController_AcceptedFileClearsError(t *testing.T) {
	c := NewController(&blockingSubmitter{}, nil, nil)
	_ = c.SelectFile(models.UploadedFile{Name: "image.png", Size: 1, MimeType: "image/png"}, nil)
	require.NotEmpty(t, c.Status().Error)

	require.NoError(t, c.SelectFile(pdf("doc.pdf", docBytes), nil))
	assert.Empty(t, c.Status().Error)
	f, ok := c.File()
	require.True(t, ok)
	assert.Equal(t, "doc.pdf", f.Name)
}

func TestController_RemoveFile(t *testing.T) {
	c := NewController(&blockingSubmitter{}, nil, nil)
	require.NoError(t, c.SelectFile(pdf("doc.pdf", docBytes), nil))
	c.RemoveFile()

	_, ok := c.File()
	assert.False(t, ok)
	require.ErrorIs(t, c.Advance(), common.ErrNoDocument)
}

func TestController_RetreatAtUpload(t *testing.T) {
	c := NewController(&blockingSubmitter{}, nil, nil)
	require.ErrorIs(t, c.Retreat(), common.ErrFirstStep)
	assert.Equal(t, UploadStep, c.Step())
	assert.Empty(t, c.Status().Error)
}

func TestController_SubmitOutsideReview(t *testing.T) {
	m := &fakeMinter{id: "nft-001"}
	c := NewController(services.NewMintService(m, nil), nil, nil)
	require.NoError(t, c.SelectFile(pdf("doc.pdf", docBytes), nil))
	fillLot12(t, c)

	for c.Step() < 2 {
		_, err := c.Submit(context.Background())
		require.ErrorIs(t, err, common.ErrNotFinalStep)
		require.NoError(t, c.Advance())
	}
	assert.Equal(t, 0, m.calls())
	assert.False(t, c.Fields().IsEmpty())
}

func TestController_SubmitOutsideReviewClearsError(t *testing.T) {
	c := NewController(&blockingSubmitter{}, nil, nil)
	require.ErrorIs(t, c.Advance(), common.ErrNoDocument)
	require.NotEmpty(t, c.Status().Error)

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrNotFinalStep)
	assert.Empty(t, c.Status().Error)
}

func TestController_SubmitIncompleteForm(t *testing.T) {
	m := &fakeMinter{id: "nft-001"}
	c := NewController(services.NewMintService(m, nil), nil, nil)
	require.NoError(t, c.SelectFile(pdf("doc.pdf", docBytes), nil))
	toReview(t, c)
	_, _ = c.UpdateField("title", "Lot 12")

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrIncompleteForm)
	assert.Contains(t, c.Status().Error, "contactInfo")
	assert.Equal(t, 0, m.calls())
	assert.Equal(t, 2, c.Step())
}

func TestController_ConcurrentSubmitIsRejected(t *testing.T) {
	b := &blockingSubmitter{entered: make(chan struct{}, 1), release: make(chan struct{})}
	c := NewController(b, nil, nil)
	require.NoError(t, c.SelectFile(pdf("doc.pdf", docBytes), nil))
	toReview(t, c)

	type result struct {
		id  string
		err error
	}
	first := make(chan result, 1)
	go func() {
		id, err := c.Submit(context.Background())
		first <- result{id, err}
	}()

	select {
	case <-b.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("submission never reached the pipeline")
	}
	assert.True(t, c.Busy())

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrSubmissionPending)

	close(b.release)
	select {
	case r := <-first:
		require.NoError(t, r.err)
		assert.Equal(t, "nft-slow", r.id)
	case <-time.After(5 * time.Second):
		t.Fatal("submission did not complete")
	}
	assert.False(t, c.Busy())
}
