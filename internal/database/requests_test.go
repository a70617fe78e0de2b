package database

import (
	"context"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRequest(t *testing.T, db *DB, requestorID int64, description string, created time.Time) *models.ItemRequest {
	request := &models.ItemRequest{Description: description, RequestorID: requestorID, Created: created}
	require.NoError(t, db.CreateRequest(context.Background(), request))
	return request
}

func TestCreateAndGetRequest(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	requestor := createTestUser(t, db, "requestor")
	request := createTestRequest(t, db, requestor.ID, "need a drill", time.Now())
	assert.NotZero(t, request.ID)

	got, err := db.GetRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, "need a drill", got.Description)
	assert.Equal(t, requestor.ID, got.RequestorID)
}

func TestGetRequest_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetRequest(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestGetRequestsByRequestor(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now()

	requestor := createTestUser(t, db, "requestor")
	other := createTestUser(t, db, "other")

	older := createTestRequest(t, db, requestor.ID, "need a drill", now.Add(-time.Hour))
	newer := createTestRequest(t, db, requestor.ID, "need a saw", now)
	createTestRequest(t, db, other.ID, "need a ladder", now)

	requests, err := db.GetRequestsByRequestor(ctx, requestor.ID)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, newer.ID, requests[0].ID)
	assert.Equal(t, older.ID, requests[1].ID)
}

func TestGetRequestsFromOthers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now()

	requestor := createTestUser(t, db, "requestor")
	other := createTestUser(t, db, "other")

	createTestRequest(t, db, requestor.ID, "mine", now)
	theirs := createTestRequest(t, db, other.ID, "theirs", now.Add(-time.Minute))

	requests, err := db.GetRequestsFromOthers(ctx, requestor.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, theirs.ID, requests[0].ID)
}

func TestGetItemsByRequest(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	requestor := createTestUser(t, db, "requestor")
	owner := createTestUser(t, db, "owner")
	request := createTestRequest(t, db, requestor.ID, "need a drill", time.Now())

	offered := &models.Item{
		Name:        "drill",
		Description: "answering the call",
		Available:   true,
		OwnerID:     owner.ID,
		RequestID:   request.ID,
	}
	require.NoError(t, db.CreateItem(ctx, offered))
	createTestItem(t, db, owner.ID, "unrelated", true)

	items, err := db.GetItemsByRequest(ctx, request.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, offered.ID, items[0].ID)
}
