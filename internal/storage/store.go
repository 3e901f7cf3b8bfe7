package storage

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/logger"
)

// Keys of the persisted namespace.
const (
	KeyUsers          = "users"
	KeyCourses        = "courses"
	KeyModules        = "modules"
	KeyLessons        = "lessons"
	KeyEnrollments    = "enrollments"
	KeyLessonProgress = "lesson_progress"
	KeyQuizAttempts   = "quiz_attempts"
	KeyCredentials    = "credentials"

	KeySession = "currentSession"
)

// CollectionKeys lists every key that holds a record collection.
var CollectionKeys = []string{
	KeyUsers,
	KeyCourses,
	KeyModules,
	KeyLessons,
	KeyEnrollments,
	KeyLessonProgress,
	KeyQuizAttempts,
	KeyCredentials,
}

const (
	emptyCollection = "[]"
	nullValue       = "null"
)

type Store struct {
	backend Backend
	log     *logger.Logger
	now     func() time.Time
	newID   func() string
}

type Option func(*Store)

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDGenerator replaces random UUIDs as record identities.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     logger.NewNop(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "storage")
	return s
}

// Initialize writes an empty collection for every missing collection key and
// a null session if none is stored. Existing values are left alone.
func (s *Store) Initialize() error {
	for _, key := range CollectionKeys {
		if err := s.writeIfAbsent(key, emptyCollection); err != nil {
			return err
		}
	}
	return s.writeIfAbsent(KeySession, nullValue)
}

// Reset overwrites every collection with an empty one and signs out.
func (s *Store) Reset() error {
	for _, key := range CollectionKeys {
		if err := s.writeRaw(key, emptyCollection); err != nil {
			return err
		}
	}
	return s.writeRaw(KeySession, nullValue)
}

// Now returns the current timestamp in UTC.
func (s *Store) Now() time.Time {
	return s.now().UTC()
}

// NewID returns a fresh record identity.
func (s *Store) NewID() string {
	return s.newID()
}

func (s *Store) writeIfAbsent(key, value string) error {
	_, ok, err := s.backend.Read(key)
	if err != nil {
		return apperr.Storage(err, "read %q", key)
	}
	if ok {
		return nil
	}
	return s.writeRaw(key, value)
}

func (s *Store) writeRaw(key, value string) error {
	if err := s.backend.Write(key, value); err != nil {
		return apperr.Storage(err, "write %q", key)
	}
	return nil
}

// ReadCollection decodes the collection under key. A missing key or a value
// that does not decode yields an empty collection.
func ReadCollection[T any](s *Store, key string) ([]T, error) {
	raw, ok, err := s.backend.Read(key)
	if err != nil {
		return nil, apperr.Storage(err, "read %q", key)
	}
	if !ok {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("collection does not decode, treating as empty", "key", key, "error", err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// WriteCollection replaces the collection under key.
func WriteCollection[T any](s *Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return apperr.Storage(err, "encode %q", key)
	}
	return s.writeRaw(key, string(raw))
}

// ReadValue decodes a single nullable value. Missing, null and undecodable
// values all yield nil.
func ReadValue[T any](s *Store, key string) (*T, error) {
	raw, ok, err := s.backend.Read(key)
	if err != nil {
		return nil, apperr.Storage(err, "read %q", key)
	}
	if !ok {
		return nil, nil
	}
	var v *T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn("value does not decode, treating as null", "key", key, "error", err)
		return nil, nil
	}
	return v, nil
}

// WriteValue stores v, or null when v is nil.
func WriteValue[T any](s *Store, key string, v *T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return apperr.Storage(err, "encode %q", key)
	}
	return s.writeRaw(key, string(raw))
}
