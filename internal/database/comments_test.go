package database

import (
	"context"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestComment(t *testing.T, db *DB, itemID, authorID int64, text string, created time.Time) *models.Comment {
	comment := &models.Comment{Text: text, ItemID: itemID, AuthorID: authorID, Created: created}
	require.NoError(t, db.CreateComment(context.Background(), comment))
	return comment
}

func TestCreateAndGetComments(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	author := createTestUser(t, db, "author")
	item := createTestItem(t, db, owner.ID, "drill", true)

	now := time.Now()
	createTestComment(t, db, item.ID, author.ID, "great drill", now.Add(-time.Hour))
	createTestComment(t, db, item.ID, author.ID, "still great", now)

	comments, err := db.GetCommentsByItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "great drill", comments[0].Text)
	assert.Equal(t, "still great", comments[1].Text)
	// Author name is stamped from the users table.
	assert.Equal(t, "author", comments[0].AuthorName)
	assert.Equal(t, author.ID, comments[0].AuthorID)
}

func TestGetCommentsByItem_Empty(t *testing.T) {
	db := setupTestDB(t)

	owner := createTestUser(t, db, "owner")
	item := createTestItem(t, db, owner.ID, "drill", true)

	comments, err := db.GetCommentsByItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestGetCommentsByItems(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner")
	author := createTestUser(t, db, "author")
	drill := createTestItem(t, db, owner.ID, "drill", true)
	saw := createTestItem(t, db, owner.ID, "saw", true)
	ladder := createTestItem(t, db, owner.ID, "ladder", true)

	now := time.Now()
	createTestComment(t, db, drill.ID, author.ID, "a", now.Add(-2*time.Hour))
	createTestComment(t, db, drill.ID, author.ID, "b", now.Add(-time.Hour))
	createTestComment(t, db, saw.ID, author.ID, "c", now)

	grouped, err := db.GetCommentsByItems(ctx, []int64{drill.ID, saw.ID, ladder.ID})
	require.NoError(t, err)
	assert.Len(t, grouped[drill.ID], 2)
	assert.Len(t, grouped[saw.ID], 1)
	assert.Empty(t, grouped[ladder.ID])

	empty, err := db.GetCommentsByItems(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
