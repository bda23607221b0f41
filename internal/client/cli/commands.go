package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/form"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/services"
	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/ProgrammedByHussain/LandLocks/internal/filex"
)

func (a *App) Upload(ctx context.Context, path string) error {
	f, err := filex.Describe(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open file: %s\n", err)
		return err
	}

	a.picker.path = path
	if err := a.form.SelectFile(f, a.picker); err != nil {
		fmt.Fprintf(a.out, "File rejected: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Selected %s (%s, %d bytes)\n", f.Name, f.MimeType, f.Size)
	return nil
}

func (a *App) Remove(ctx context.Context) error {
	a.form.RemoveFile()
	a.picker.Reset()
	fmt.Fprintln(a.out, "Document removed")
	return nil
}

// Set updates one field. Without a value the user is prompted; the
// description is read as multiline text.
func (a *App) Set(ctx context.Context, field, value string, hasValue bool) error {
	name, ok := models.CanonicalField(field)
	if !ok {
		fmt.Fprintf(a.out, "Unknown field %q, expected one of %v\n", field, models.FieldNames)
		return fmt.Errorf("%w: %q", common.ErrUnknownField, field)
	}

	if !hasValue {
		var err error
		if name == models.FieldDescription {
			value, err = GetMultiline(a.reader, "Description", a.out)
		} else {
			value, err = GetSimpleText(a.reader, name, a.out)
		}
		if err != nil {
			return err
		}
	}

	if _, err := a.form.UpdateField(name, value); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if err := a.form.Advance(); err != nil {
		fmt.Fprintf(a.out, "Cannot continue: %s\n", err)
		return err
	}
	a.printStep()
	return nil
}

func (a *App) Back(ctx context.Context) error {
	if err := a.form.Retreat(); err != nil {
		fmt.Fprintln(a.out, "Already at the first step")
		return err
	}
	a.printStep()
	return nil
}

func (a *App) printStep() {
	step := a.form.Step()
	fmt.Fprintf(a.out, "Step: %s\n", form.StepLabel(step))
	if step == form.ContentSteps-1 {
		fmt.Fprintln(a.out, "Type 'review' to check the data and 'submit' to mint")
	}
}

func (a *App) Review(ctx context.Context) error {
	fmt.Fprintf(a.out, "Step:        %s\n", form.StepLabel(a.form.Step()))

	if f, ok := a.form.File(); ok {
		fmt.Fprintf(a.out, "Document:    %s (%s, %d bytes)\n", f.Name, f.MimeType, f.Size)
	} else {
		fmt.Fprintln(a.out, "Document:    -")
	}

	fields := a.form.Fields()
	for _, name := range models.FieldNames {
		v := fields.Get(name)
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(a.out, "%-12s %s\n", name+":", v)
	}

	owner := a.wallet.OwnerAddress()
	if owner == "" {
		owner = "- (use 'wallet <address>')"
	}
	fmt.Fprintf(a.out, "%-12s %s\n", "owner:", owner)
	return nil
}

// withRPCTimeout bounds a registry call by the configured mint timeout.
func (a *App) withRPCTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.MintTimeout > 0 {
		return context.WithTimeout(ctx, a.config.MintTimeout)
	}
	return context.WithCancel(ctx)
}

// Submit mints the NFT bounded by the configured mint timeout.
func (a *App) Submit(ctx context.Context) error {
	ctx, cancel := a.withRPCTimeout(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Minting...")
	id, err := a.form.Submit(ctx)
	if err != nil {
		if msg := a.form.Status().Error; msg != "" {
			fmt.Fprintf(a.out, "Error: %s\n", msg)
		} else {
			fmt.Fprintf(a.out, "Cannot submit: %s\n", err)
		}
		return err
	}

	fmt.Fprintln(a.out, a.form.Status().Success)
	if r, ok := a.form.LastReceipt(); ok && r.NFTID == id {
		a.pending.Add(1)
		go a.watchPersist(r)
	}
	return nil
}

func (a *App) watchPersist(r *services.Receipt) {
	defer a.pending.Done()

	ctx := context.Background()
	if err := <-r.Persisted; err != nil {
		a.logger.Error(ctx, "document was not stored", "nft_id", r.NFTID, "key", r.Key, "error", err)
		return
	}
	a.logger.Info(ctx, "document stored", "nft_id", r.NFTID, "key", r.Key)
}

func (a *App) ShowStatus(ctx context.Context) error {
	st := a.form.Status()
	if st.Error == "" && st.Success == "" {
		fmt.Fprintln(a.out, "No messages")
	}
	if st.Error != "" {
		fmt.Fprintf(a.out, "Error:   %s\n", st.Error)
	}
	if st.Success != "" {
		fmt.Fprintf(a.out, "Success: %s\n", st.Success)
	}
	if a.form.Busy() {
		fmt.Fprintln(a.out, "Submission in progress")
	}
	return nil
}

func (a *App) Wallet(ctx context.Context, address string) error {
	a.wallet.Connect(address)
	fmt.Fprintf(a.out, "Owner set to %s\n", a.wallet.OwnerAddress())
	return nil
}

func (a *App) Documents(ctx context.Context) error {
	keys, err := a.docs.Keys(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "No documents stored")
		return nil
	}
	for _, k := range keys {
		fmt.Fprintln(a.out, k)
	}
	return nil
}

func (a *App) ShowDocument(ctx context.Context, key string) error {
	doc, err := a.docs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintf(a.out, "No document stored under %q\n", key)
		} else {
			fmt.Fprintf(a.out, "Error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "%-12s %s\n", "key:", doc.Key)
	fmt.Fprintf(a.out, "%-12s %s\n", "updated:", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	if raw, err := base64.StdEncoding.DecodeString(doc.Content); err == nil {
		fmt.Fprintf(a.out, "%-12s %d bytes\n", "size:", len(raw))
	} else {
		fmt.Fprintf(a.out, "%-12s %d encoded chars (not valid base64)\n", "size:", len(doc.Content))
	}
	return nil
}

func (a *App) RemoveDocument(ctx context.Context, key string) error {
	if _, err := a.docs.Get(ctx, key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintf(a.out, "No document stored under %q\n", key)
		} else {
			fmt.Fprintf(a.out, "Error: %s\n", err)
		}
		return err
	}
	if err := a.docs.Delete(ctx, key); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Removed %s\n", key)
	return nil
}

// ListNFTs prints the NFTs the registry holds for the current owner.
func (a *App) ListNFTs(ctx context.Context) error {
	owner := a.wallet.OwnerAddress()
	if owner == "" {
		fmt.Fprintln(a.out, "No owner address, use 'wallet <address>'")
		return common.ErrMissingOwner
	}

	ctx, cancel := a.withRPCTimeout(ctx)
	defer cancel()

	list, err := a.registry.ListNFTs(ctx, owner)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if len(list) == 0 {
		fmt.Fprintf(a.out, "No NFTs minted to %s\n", owner)
		return nil
	}
	for _, n := range list {
		fmt.Fprintf(a.out, "%s  %s  %s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Metadata.Title)
	}
	return nil
}

func (a *App) ShowNFT(ctx context.Context, id string) error {
	ctx, cancel := a.withRPCTimeout(ctx)
	defer cancel()

	n, err := a.registry.GetNFT(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintf(a.out, "NFT %s not found\n", id)
		} else {
			fmt.Fprintf(a.out, "Error: %s\n", err)
		}
		return err
	}

	md := n.Metadata
	fmt.Fprintf(a.out, "%-12s %s\n", "id:", n.ID)
	fmt.Fprintf(a.out, "%-12s %s\n", "owner:", n.Owner)
	fmt.Fprintf(a.out, "%-12s %s\n", "minted:", n.CreatedAt.Format("2006-01-02 15:04:05"))
	for _, kv := range [][2]string{
		{models.FieldTitle, md.Title},
		{models.FieldDescription, md.Description},
		{models.FieldPrice, md.Price},
		{models.FieldCategory, md.Category},
		{models.FieldLocation, md.Location},
		{models.FieldContactInfo, md.ContactInfo},
	} {
		fmt.Fprintf(a.out, "%-12s %s\n", kv[0]+":", kv[1])
	}
	fmt.Fprintf(a.out, "%-12s %s (%d bytes)\n", "document:", md.FileName, md.FileSize)
	return nil
}
