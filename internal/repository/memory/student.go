// Package memory provides map-backed repositories used with STORAGE_DRIVER=memory and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"studentapi/internal/model"
	"studentapi/internal/repository"
)

type StudentStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]model.Student
}

func NewStudentStore() *StudentStore {
	return &StudentStore{rows: make(map[int64]model.Student)}
}

var _ repository.StudentRepository = (*StudentStore)(nil)

func (s *StudentStore) GetAll(_ context.Context, page repository.PageQuery) ([]model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	start := min(page.Offset(), len(ids))
	end := len(ids)
	if page.Limit() < end-start {
		end = start + page.Limit()
	}

	items := make([]model.Student, 0, end-start)
	for _, id := range ids[start:end] {
		items = append(items, s.rows[id])
	}
	return items, nil
}

func (s *StudentStore) GetByID(_ context.Context, id int64) (*model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (s *StudentStore) Add(_ context.Context, st model.Student) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	st.ID = s.nextID
	s.rows[st.ID] = st
	return &st, nil
}

// Update mirrors sp_upd_student: a zero document type or birth date keeps the stored value.
func (s *StudentStore) Update(_ context.Context, st model.Student) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.rows[st.ID]
	if !ok {
		return false, nil
	}
	if st.DocumentTypeID == model.DocumentTypeUnset {
		st.DocumentTypeID = cur.DocumentTypeID
	}
	if st.BirthDate.IsZero() {
		st.BirthDate = cur.BirthDate
	}
	s.rows[st.ID] = st
	return true, nil
}

func (s *StudentStore) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}
