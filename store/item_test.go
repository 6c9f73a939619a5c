package store

import (
	"testing"
	"time"

	"campusswap/marketplace-api/auth"
	"campusswap/marketplace-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = &auth.Claims{
	Email:         "owner@x.com",
	Name:          "Owner",
	Picture:       "pic",
	ContactNumber: "555-0100",
}

func createItem(t *testing.T, items *Items, name string) *model.Item {
	t.Helper()

	item := &model.Item{Name: name, Category: "furniture", Price: "20"}
	require.NoError(t, items.Create(owner, item))
	return item
}

func TestItemCreate_StampsAuthorSnapshot(t *testing.T) {
	items := NewItems(newTestDB(t))

	item := createItem(t, items, "chair")

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "owner@x.com", item.AuthorEmail)
	assert.Equal(t, "Owner", item.AuthorName)
	assert.Equal(t, "pic", item.AuthorPicture)
	assert.Equal(t, "555-0100", item.ContactNumber)
	assert.Equal(t, "y", item.Live)
	assert.False(t, item.DateAdded.IsZero())
}

func TestItemList_CategoryFilter(t *testing.T) {
	items := NewItems(newTestDB(t))

	createItem(t, items, "chair")
	other := &model.Item{Name: "calculus textbook", Category: "books"}
	require.NoError(t, items.Create(owner, other))

	all, err := items.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	books, err := items.List("books")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "calculus textbook", books[0].Name)
}

func TestItemUpdate_SparsePatch(t *testing.T) {
	items := NewItems(newTestDB(t))
	item := createItem(t, items, "chair")

	newPrice := "15"
	err := items.Update(owner.Email, item.ID, &ItemPatch{Price: &newPrice})
	require.NoError(t, err)

	got, err := items.get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "15", got.Price)
	// Absent fields stay untouched, and the creation timestamp is stable.
	assert.Equal(t, "chair", got.Name)
	assert.Equal(t, "furniture", got.Category)
	assert.WithinDuration(t, item.DateAdded, got.DateAdded, time.Second)
}

func TestItemMutations_NotFoundBeforeForbidden(t *testing.T) {
	items := NewItems(newTestDB(t))

	// A missing id is always NotFound, regardless of who asks.
	name := "x"
	assert.ErrorIs(t, items.Update("anyone@x.com", "missing", &ItemPatch{Name: &name}), ErrNotFound)
	assert.ErrorIs(t, items.Delete("anyone@x.com", "missing"), ErrNotFound)
	_, err := items.ToggleLive("anyone@x.com", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemMutations_ForbiddenForNonOwner(t *testing.T) {
	items := NewItems(newTestDB(t))
	item := createItem(t, items, "chair")

	name := "hijacked"
	assert.ErrorIs(t, items.Update("other@x.com", item.ID, &ItemPatch{Name: &name}), ErrForbidden)
	assert.ErrorIs(t, items.Delete("other@x.com", item.ID), ErrForbidden)
	_, err := items.ToggleLive("other@x.com", item.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Nothing changed.
	got, err := items.get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "chair", got.Name)
}

func TestItemToggleLive(t *testing.T) {
	items := NewItems(newTestDB(t))
	item := createItem(t, items, "chair")

	state, err := items.ToggleLive(owner.Email, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "n", state)

	state, err = items.ToggleLive(owner.Email, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "y", state)
}

func TestItemDelete(t *testing.T) {
	items := NewItems(newTestDB(t))
	item := createItem(t, items, "chair")

	require.NoError(t, items.Delete(owner.Email, item.ID))

	_, err := items.get(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := items.List("")
	require.NoError(t, err)
	assert.Empty(t, all)
}
