package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/inventory-ledger/internal/app/product/domain"
)

func TestController_StartsClosed(t *testing.T) {
	c := NewController()

	assert.Equal(t, domain.DraftClosed, c.State())
	assert.False(t, c.IsOpen())
	assert.Equal(t, domain.DefaultDraft(), c.Draft())
	_, editing := c.ActiveRecord()
	assert.False(t, editing)
}

func TestController_OpenForCreate_ResetsDraft(t *testing.T) {
	c := NewController()
	c.OpenForCreate()
	require.NoError(t, c.SetField(domain.FieldMake, "Acme"))
	c.Close()

	c.OpenForCreate()

	assert.Equal(t, domain.DraftCreating, c.State())
	assert.Equal(t, domain.DefaultDraft(), c.Draft())
	_, editing := c.ActiveRecord()
	assert.False(t, editing)
}

func TestController_OpenForEdit(t *testing.T) {
	rec := domain.Record{
		ID:         domain.NewRecordID("5"),
		Make:       "A",
		Model:      "B",
		Quantity:   2,
		UnitPrice:  1,
		TotalPrice: "2.00",
	}
	c := NewController()
	c.OpenForEdit(rec)

	assert.Equal(t, domain.DraftEditing, c.State())
	assert.Equal(t, domain.Draft{Make: "A", Model: "B", Quantity: 2, UnitPrice: 1}, c.Draft())

	active, editing := c.ActiveRecord()
	require.True(t, editing)
	assert.Equal(t, rec, active)
}

func TestController_OpenForCreate_AfterEditDropsActiveRecord(t *testing.T) {
	c := NewController()
	c.OpenForEdit(domain.Record{ID: domain.NewRecordID("1"), Make: "A"})
	c.OpenForCreate()

	_, editing := c.ActiveRecord()
	assert.False(t, editing)
	assert.Equal(t, domain.DraftCreating, c.State())
}

func TestController_SetField(t *testing.T) {
	c := NewController()
	c.OpenForCreate()

	require.NoError(t, c.SetField(domain.FieldMake, "  Acme "))
	require.NoError(t, c.SetField(domain.FieldModel, "W"))
	require.NoError(t, c.SetField(domain.FieldDescription, "blue"))
	require.NoError(t, c.SetField(domain.FieldQuantity, "3"))
	require.NoError(t, c.SetField(domain.FieldUnitPrice, "10.005"))

	assert.Equal(t, domain.Draft{Make: "  Acme ", Model: "W", Description: "blue", Quantity: 3, UnitPrice: 10.005}, c.Draft())
	assert.Equal(t, "30.02", c.ComputeTotal().String())
}

func TestController_SetField_InvalidNumberBecomesZero(t *testing.T) {
	c := NewController()
	c.OpenForCreate()
	require.NoError(t, c.SetField(domain.FieldQuantity, "4"))

	require.NoError(t, c.SetField(domain.FieldQuantity, "abc"))
	require.NoError(t, c.SetField(domain.FieldUnitPrice, ""))

	assert.Equal(t, 0.0, c.Draft().Quantity)
	assert.Equal(t, 0.0, c.Draft().UnitPrice)
	assert.Equal(t, "0.00", c.ComputeTotal().String())
}

func TestController_SetField_UnknownField(t *testing.T) {
	c := NewController()
	c.OpenForCreate()

	err := c.SetField("totalPrice", "99")

	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Equal(t, domain.DefaultDraft(), c.Draft())
}

func TestController_SetField_WhenClosed(t *testing.T) {
	c := NewController()
	assert.ErrorIs(t, c.SetField(domain.FieldMake, "A"), domain.ErrDraftClosed)
}

func TestController_Close(t *testing.T) {
	c := NewController()
	c.OpenForEdit(domain.Record{ID: domain.NewRecordID("1"), Make: "A"})
	c.Close()

	assert.False(t, c.IsOpen())
	_, editing := c.ActiveRecord()
	assert.False(t, editing)
}

func TestController_ActiveRecordIsACopy(t *testing.T) {
	rec := domain.Record{ID: domain.NewRecordID("1"), Passthrough: map[string][]byte{"createdAt": []byte(`"x"`)}}
	c := NewController()
	c.OpenForEdit(rec)

	rec.Passthrough["createdAt"][1] = 'y'
	active, _ := c.ActiveRecord()
	active.Passthrough["extra"] = []byte("1")

	again, _ := c.ActiveRecord()
	assert.Equal(t, `"x"`, string(again.Passthrough["createdAt"]))
	assert.NotContains(t, again.Passthrough, "extra")
}

func TestController_TracksEditedFields(t *testing.T) {
	c := NewController()
	c.OpenForEdit(domain.Record{ID: domain.NewRecordID("1"), Make: "A", Model: "B"})
	assert.False(t, c.HasChanges())

	require.NoError(t, c.SetField(domain.FieldQuantity, "2"))
	require.NoError(t, c.SetField(domain.FieldMake, "A"))
	require.Error(t, c.SetField("color", "red"))

	assert.True(t, c.HasChanges())
	assert.True(t, c.Edited(domain.FieldMake))
	assert.False(t, c.Edited(domain.FieldModel))
	assert.Equal(t, []string{domain.FieldMake, domain.FieldQuantity}, c.EditedFields())

	c.OpenForCreate()
	assert.False(t, c.HasChanges())
	assert.Empty(t, c.EditedFields())
}
