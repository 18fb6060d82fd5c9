package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/models"
)

func TestDuplicateKeyTranslated(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepo(db)

	first := models.User{Username: "sam", Email: "sam@example.com", PasswordHash: "x"}
	require.NoError(t, users.Add(&first))

	// Same username, different email: the unique index fires and the error is
	// recognizable as a duplicate rather than a generic failure.
	dup := models.User{Username: "sam", Email: "other@example.com", PasswordHash: "x"}
	err := users.Add(&dup)
	require.Error(t, err)
	require.True(t, IsDuplicate(err))
}

func TestIsDuplicateOtherErrors(t *testing.T) {
	require.False(t, IsDuplicate(nil))
	require.False(t, IsDuplicate(gorm.ErrRecordNotFound))
}
