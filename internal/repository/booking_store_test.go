package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tongavip/internal/domain"
)

func newTestStore(t *testing.T) *BookingStore {
	t.Helper()
	return NewBookingStore(filepath.Join(t.TempDir(), "bookings.json"))
}

func TestBookingStore_AppendAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	id, err := s.Append(context.Background(), domain.BookingRecord{Pickup: domain.AirportName})
	require.NoError(t, err)
	assert.Equal(t, "1785578400000", id)

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, fixed, records[0].CreatedAt)
}

func TestBookingStore_ListAllNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	// Insert out of creation order: the sort happens at read time.
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		created := base.Add(offset)
		s.now = func() time.Time { return created }
		_, err := s.Append(context.Background(), domain.BookingRecord{})
		require.NoError(t, err)
	}

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt))
	assert.True(t, records[1].CreatedAt.After(records[2].CreatedAt))
}

func TestBookingStore_DeleteByID(t *testing.T) {
	s := newTestStore(t)

	id1, err := s.Append(context.Background(), domain.BookingRecord{ID: "1", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = s.Append(context.Background(), domain.BookingRecord{ID: "2", Email: "b@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteByID(context.Background(), id1))

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].ID)
}

func TestBookingStore_DeleteMissingLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Append(context.Background(), domain.BookingRecord{ID: "1"})
	require.NoError(t, err)

	err = s.DeleteByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestBookingStore_MissingFileReadsEmpty(t *testing.T) {
	s := newTestStore(t)

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	err = s.DeleteByID(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingStore_FileIsAJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	s := NewBookingStore(path)

	_, err := s.Append(context.Background(), domain.BookingRecord{ID: "1"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('['), data[0])
}

func TestBookingStore_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewBookingStore(path)

	_, err := s.ListAll(context.Background())
	assert.Error(t, err)
}
