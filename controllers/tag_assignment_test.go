package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignTagToMenuItem(t *testing.T) {
	t.Run("successful scenario", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)
		tagID := createTag(t, r, "vegan")

		w := do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{"tagId": tagID})

		require.Equal(t, http.StatusOK, w.Code)
		var body messageBody
		decode(t, w, &body)
		assert.Equal(t, "Tag assigned successfully.", body.Data.Message)
	})

	t.Run("already assigned scenario", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)
		tagID := createTag(t, r, "vegan")
		w := do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{"tagId": tagID})
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{"tagId": tagID})

		require.Equal(t, http.StatusConflict, w.Code)
		var body messageBody
		decode(t, w, &body)
		assert.Equal(t, "`vegan` tag is already assigned to `Fries`.", body.Data.Message)
	})

	t.Run("nonexistent tag scenario", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)

		w := do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{"tagId": 999})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("nonexistent item scenario", func(t *testing.T) {
		r := setupRouter(t)
		tagID := createTag(t, r, "vegan")

		w := do(t, r, http.MethodPost, "/items/999/tags", gin.H{"tagId": tagID})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing tagId scenario", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)

		w := do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{})

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body errorBody
		decode(t, w, &body)
		assert.Contains(t, body.Data.Errors["tagId"], "The tagId field is required.")
	})

	t.Run("invalid item id format scenario", func(t *testing.T) {
		r := setupRouter(t)
		tagID := createTag(t, r, "vegan")

		w := do(t, r, http.MethodPost, "/items/asdf/tags", gin.H{"tagId": tagID})

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body errorBody
		decode(t, w, &body)
		assert.NotEmpty(t, body.Data.Errors["menuItemId"])
	})
}

func TestRemoveTagFromMenuItem(t *testing.T) {
	t.Run("successful scenario", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)
		tagID := createTag(t, r, "vegan")
		w := do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{"tagId": tagID})
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodDelete, fmt.Sprintf("/items/%d/tags/%d", itemID, tagID), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body messageBody
		decode(t, w, &body)
		assert.Equal(t, "Tag removed successfully.", body.Data.Message)
	})

	t.Run("not assigned scenario", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)
		tagID := createTag(t, r, "vegan")

		w := do(t, r, http.MethodDelete, fmt.Sprintf("/items/%d/tags/%d", itemID, tagID), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("assign, unassign, unassign again scenario", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)
		tagID := createTag(t, r, "vegan")

		w := do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{"tagId": tagID})
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodDelete, fmt.Sprintf("/items/%d/tags/%d", itemID, tagID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodDelete, fmt.Sprintf("/items/%d/tags/%d", itemID, tagID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reassignment after removal succeeds", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)
		tagID := createTag(t, r, "vegan")

		w := do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{"tagId": tagID})
		require.Equal(t, http.StatusOK, w.Code)
		w = do(t, r, http.MethodDelete, fmt.Sprintf("/items/%d/tags/%d", itemID, tagID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(t, r, http.MethodPost, fmt.Sprintf("/items/%d/tags", itemID), gin.H{"tagId": tagID})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid tag id format scenario", func(t *testing.T) {
		r := setupRouter(t)
		itemID := createMenuItem(t, r, "Fries", nil)

		w := do(t, r, http.MethodDelete, fmt.Sprintf("/items/%d/tags/asdf", itemID), nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body errorBody
		decode(t, w, &body)
		assert.NotEmpty(t, body.Data.Errors["tagId"])
	})
}
