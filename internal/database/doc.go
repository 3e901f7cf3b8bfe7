// Package database provides the SQLite storage backend and, in its
// sub-packages, one repository per persisted collection.
//
// # Architecture
//
//	database/
//	├── database.go      # gorm + SQLite key/value table implementing storage.Backend
//	├── users/           # Accounts, unique email
//	├── courses/         # Course CRUD
//	├── modules/         # Course sections
//	├── lessons/         # Lessons within modules
//	├── enrollments/     # User/course pairs
//	├── progress/        # Lesson completion flags
//	├── quizzes/         # Quiz attempts
//	└── credentials/     # Password hashes, kept out of the user records
//
// # Using Sub-packages
//
// Repositories sit on a storage.Store, not on the database directly, so the
// same code runs over SQLite, Redis or memory:
//
//	db, err := database.NewDatabase("./learnhub.db")
//	store := storage.New(db)
//	if err := store.Initialize(); err != nil { ... }
//
//	coursesRepo := courses.NewRepository(store)
//	course, err := coursesRepo.GetCourseByID(id)
//
// Missing records come back as apperr.ErrNotFound, bad input as
// apperr.ErrValidation and backend failures as apperr.ErrStorage.
package database
