package form

import (
	"testing"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldStore_UpdateMergesOneField(t *testing.T) {
	var s FieldStore

	_, err := s.Update("title", "Lot 12")
	require.NoError(t, err)
	got, err := s.Update("price", "50000")
	require.NoError(t, err)

	assert.Equal(t, models.FormFields{Title: "Lot 12", Price: "50000"}, got)
	assert.Equal(t, got, s.Fields())
}

func TestFieldStore_UpdateOrderIrrelevant(t *testing.T) {
	var a, b FieldStore
	_, _ = a.Update("title", "T")
	_, _ = a.Update("location", "L")
	_, _ = b.Update("location", "L")
	_, _ = b.Update("title", "T")

	assert.Equal(t, a.Fields(), b.Fields())
}

func TestFieldStore_UnknownFieldKeepsState(t *testing.T) {
	var s FieldStore
	_, _ = s.Update("title", "Lot 12")

	got, err := s.Update("owner", "0x1")
	require.ErrorIs(t, err, common.ErrUnknownField)
	assert.Equal(t, models.FormFields{Title: "Lot 12"}, got)
}

func TestFieldStore_Reset(t *testing.T) {
	var s FieldStore
	for _, f := range models.FieldNames {
		_, _ = s.Update(f, "v")
	}
	assert.Equal(t, models.FormFields{}, s.Reset())
	assert.True(t, s.Fields().IsEmpty())
}
