package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"tongavip/internal/domain"
)

var ErrNotFound = errors.New("booking not found")

// BookingStore keeps all booking records in a single JSON array file. Every
// operation is a whole-file read-modify-write; a process-local mutex
// serializes them, but two processes sharing the file can still lose updates.
// There is no write-ahead log and no partial-write protection.
type BookingStore struct {
	path string

	mu  sync.Mutex
	now func() time.Time
}

func NewBookingStore(path string) *BookingStore {
	return &BookingStore{
		path: path,
		now:  time.Now,
	}
}

// Append assigns a timestamp-derived id, sets the creation time and durably
// stores the record. Uniqueness of ids is best-effort.
func (s *BookingStore) Append(ctx context.Context, record domain.BookingRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return "", err
	}

	now := s.now()
	if record.ID == "" {
		record.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now.UTC()
	}

	records = append(records, record)
	if err := s.write(records); err != nil {
		return "", err
	}
	return record.ID, nil
}

// ListAll returns every record, newest first. Ordering is applied at read
// time; records with equal timestamps keep their file order.
func (s *BookingStore) ListAll(ctx context.Context) ([]domain.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// DeleteByID removes one record. The store is left unchanged when the id is
// unknown.
func (s *BookingStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}
	return s.write(kept)
}

func (s *BookingStore) read() ([]domain.BookingRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookings file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []domain.BookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode bookings file: %w", err)
	}
	return records, nil
}

func (s *BookingStore) write(records []domain.BookingRecord) error {
	if records == nil {
		records = []domain.BookingRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write bookings file: %w", err)
	}
	return nil
}
