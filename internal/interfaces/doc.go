// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Storage
//
//   - storage.Backend: string key/value persistence (internal/storage/backend.go).
//     Implemented by storage.MemoryBackend, storage.RedisBackend and
//     database.Database (SQLite through gorm).
//
// ## Data Access Interfaces
//
//   - UserReader, CourseReader, ModuleReader, LessonReader: catalogue reads
//     for aggregation (internal/services/interfaces.go)
//   - EnrollmentReader, ProgressReader, QuizReader: learner activity reads
//     (internal/services/interfaces.go)
//   - CredentialStore: password hashes per user (internal/auth/verifier.go)
//
// ## State Store Interfaces
//
//   - UserRepository, SessionHolder, PasswordVerifier: what the auth store
//     needs (internal/state/interfaces.go)
//   - CourseRepository, EnrollmentRepository, EnrolledCourseLister: what the
//     course store needs (internal/state/interfaces.go)
//
// # Adding a New Collection
//
// To persist a new entity (e.g., certificates):
//
//  1. Add the entity to internal/entities with an ID field and a RecordID method.
//
//  2. Add a key constant in internal/storage/store.go and append it to
//     CollectionKeys so Initialize and Reset cover it.
//
//  3. Create a sub-package: internal/database/certificates/
//
//     type Repository struct {
//         store *storage.Store
//         items *storage.Collection[entities.Certificate]
//     }
//
//     func NewRepository(store *storage.Store) *Repository
//
//  4. Add compile-time check:
//
//     var _ services.CertificateReader = (*certificates.Repository)(nil)
//
// # Adding a New Storage Backend
//
// Implement Read and Write over strings. A missing key must report
// ok == false rather than an error:
//
//	type EtcdBackend struct { client *clientv3.Client }
//
//	func (b *EtcdBackend) Read(key string) (string, bool, error)
//	func (b *EtcdBackend) Write(key, value string) error
//
//	var _ storage.Backend = (*EtcdBackend)(nil)
//
// Then add a StorageBackend value in internal/config and a case in
// entrypoint.OpenBackend.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
