package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macadoo18/growing-up-server/models"
)

func TestEatingServiceOwnershipThroughChild(t *testing.T) {
	db := newTestDB(t)
	children := NewChildrenService(db)
	eating := NewEatingService(db)

	owner := models.User{FirstName: "pam", LastName: "halpert", Username: "beesly", Password: "x"}
	other := models.User{FirstName: "jim", LastName: "halpert", Username: "jimothy", Password: "x"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)

	child := models.Child{FirstName: "ryan", Age: 5, Weight: "12.20", UserID: owner.ID}
	require.NoError(t, children.Create(&child))

	meal := models.Meal{Duration: "00:25:22", FoodType: "bottle", ChildID: child.ID}
	require.NoError(t, eating.Create(&meal))

	t.Run("create defaults the date", func(t *testing.T) {
		assert.False(t, meal.Date.IsZero())
	})

	t.Run("the child's owner can read the meal", func(t *testing.T) {
		got, err := eating.GetForUser(meal.ID, owner.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, meal.ID, got.ID)
	})

	t.Run("another user reads it as absent", func(t *testing.T) {
		got, err := eating.GetForUser(meal.ID, other.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestEatingServiceSerialize(t *testing.T) {
	eating := NewEatingService(newTestDB(t))

	meal := models.Meal{
		Notes:   `bad <script>alert("xss");</script>`,
		SideFed: `left <img src="https://x.example/a.jpg" onerror="alert(1);">`,
	}
	out := eating.Serialize(meal)

	assert.NotContains(t, out.Notes, "<script")
	assert.NotContains(t, out.SideFed, "onerror")
	// serialization never mutates the stored value
	assert.Contains(t, meal.Notes, "<script")
}
