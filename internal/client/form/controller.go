package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/services"
	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/logging"
)

// Picker is the file-picker control. Reset clears its displayed selection
// so the same file can be chosen again.
type Picker interface {
	Reset()
}

// OwnerProvider supplies the wallet address the asset is minted to.
type OwnerProvider interface {
	OwnerAddress() string
}

// StaticOwner is an OwnerProvider returning a fixed address.
type StaticOwner string

func (o StaticOwner) OwnerAddress() string { return string(o) }

// Submitter is the submission pipeline, see services.MintService.
type Submitter interface {
	Submit(ctx context.Context, owner string, fields models.FormFields, file models.UploadedFile) (*services.Receipt, error)
}

// Controller is one form instance. Its methods may be called from several
// goroutines; the mint call itself runs without holding the lock, so
// navigation stays responsive while a submission is pending.
type Controller struct {
	mu sync.Mutex

	validator *FileValidator
	fields    FieldStore
	steps     *StepController
	status    StatusReporter

	file    *models.UploadedFile
	busy    bool
	receipt *services.Receipt

	pipeline Submitter
	owner    OwnerProvider
	logger   logging.Logger
}

func NewController(p Submitter, owner OwnerProvider, l logging.Logger) *Controller {
	if owner == nil {
		owner = StaticOwner("")
	}
	if l == nil {
		l = logging.Nop{}
	}
	return &Controller{
		validator: NewFileValidator(),
		steps:     NewStepController(ContentSteps),
		pipeline:  p,
		owner:     owner,
		logger:    l.With("module", "form"),
	}
}

// SelectFile validates candidate and keeps it on success. A rejected file
// clears the current selection and resets picker, which may be nil.
func (c *Controller) SelectFile(candidate models.UploadedFile, picker Picker) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status.ClearError()
	if err := c.validator.Validate(candidate); err != nil {
		c.file = nil
		if picker != nil {
			picker.Reset()
		}
		c.status.Fail(err.Error())
		c.logger.Debug(context.Background(), "file rejected", "name", candidate.Name,
			"type", candidate.MimeType, "size", candidate.Size, "reason", err)
		return err
	}

	c.file = &candidate
	return nil
}

// RemoveFile drops the selected file without validation.
func (c *Controller) RemoveFile() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status.ClearError()
	c.file = nil
}

func (c *Controller) File() (models.UploadedFile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.file == nil {
		return models.UploadedFile{}, false
	}
	return *c.file, true
}

func (c *Controller) UpdateField(name, value string) (models.FormFields, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fields.Update(name, value)
}

func (c *Controller) Fields() models.FormFields {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fields.Fields()
}

func (c *Controller) Advance() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status.ClearError()
	if err := c.steps.Advance(c.file != nil); err != nil {
		c.status.Fail(err.Error())
		return err
	}
	return nil
}

// Retreat moves one step back; at the upload step it is a no-op returning
// common.ErrFirstStep.
func (c *Controller) Retreat() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status.ClearError()
	return c.steps.Retreat()
}

func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.steps.State()
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status.Current()
}

// Busy reports whether a submission is waiting for the registry.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.busy
}

// LastReceipt returns the receipt of the latest successful submission.
func (c *Controller) LastReceipt() (*services.Receipt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.receipt, c.receipt != nil
}

// Submit mints the asset described by the form. It is only valid at the
// review step and while no other submission is pending. On success the form
// is reset and the NFT id returned; on failure the form is left untouched.
func (c *Controller) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	c.status.ClearError()
	if !c.steps.AtFinal() {
		c.mu.Unlock()
		return "", common.ErrNotFinalStep
	}
	if c.busy {
		c.mu.Unlock()
		return "", common.ErrSubmissionPending
	}

	c.status.Clear()
	if c.file == nil {
		c.status.Fail(common.ErrNoDocument.Error())
		c.mu.Unlock()
		return "", common.ErrNoDocument
	}

	fields := c.fields.Fields()
	file := *c.file
	owner := c.owner.OwnerAddress()
	c.busy = true
	c.mu.Unlock()

	receipt, err := c.pipeline.Submit(ctx, owner, fields, file)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		c.status.Fail(fmt.Sprintf("failed to create NFT: %s", err))
		c.logger.Warn(ctx, "submission failed", "title", fields.Title, "error", err)
		return "", err
	}

	c.receipt = receipt
	c.status.Succeed(fmt.Sprintf("NFT minted: %s", receipt.NFTID))
	c.fields.Reset()
	c.file = nil
	c.steps.Reset()

	return receipt.NFTID, nil
}
