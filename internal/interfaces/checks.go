package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/learnhub/internal/auth"
	"github.com/mrlokans/learnhub/internal/database"
	"github.com/mrlokans/learnhub/internal/database/courses"
	"github.com/mrlokans/learnhub/internal/database/credentials"
	"github.com/mrlokans/learnhub/internal/database/enrollments"
	"github.com/mrlokans/learnhub/internal/database/lessons"
	"github.com/mrlokans/learnhub/internal/database/modules"
	"github.com/mrlokans/learnhub/internal/database/progress"
	"github.com/mrlokans/learnhub/internal/database/quizzes"
	"github.com/mrlokans/learnhub/internal/database/users"
	"github.com/mrlokans/learnhub/internal/services"
	"github.com/mrlokans/learnhub/internal/session"
	"github.com/mrlokans/learnhub/internal/state"
	"github.com/mrlokans/learnhub/internal/storage"
)

// =============================================================================
// Storage Backends
// =============================================================================

var _ storage.Backend = (*storage.MemoryBackend)(nil)
var _ storage.Backend = (*storage.RedisBackend)(nil)
var _ storage.Backend = (*database.Database)(nil)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.UserReader = (*users.Repository)(nil)
var _ services.CourseReader = (*courses.Repository)(nil)
var _ services.ModuleReader = (*modules.Repository)(nil)
var _ services.LessonReader = (*lessons.Repository)(nil)
var _ services.EnrollmentReader = (*enrollments.Repository)(nil)
var _ services.ProgressReader = (*progress.Repository)(nil)
var _ services.QuizReader = (*quizzes.Repository)(nil)

var _ auth.CredentialStore = (*credentials.Repository)(nil)

// =============================================================================
// State Stores
// =============================================================================

var _ state.UserRepository = (*users.Repository)(nil)
var _ state.SessionHolder = (*session.Holder)(nil)
var _ state.PasswordVerifier = (*auth.Verifier)(nil)
var _ state.CourseRepository = (*courses.Repository)(nil)
var _ state.EnrollmentRepository = (*enrollments.Repository)(nil)
var _ state.EnrolledCourseLister = (*services.Catalog)(nil)
