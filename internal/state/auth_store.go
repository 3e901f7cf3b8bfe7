package state

import (
	"errors"

	"github.com/mrlokans/learnhub/internal/apperr"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/logger"
)

const (
	msgEmailTaken         = "User with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
)

// AuthState is a snapshot of the auth store. User and Session are nil when
// signed out.
type AuthState struct {
	User    *entities.User
	Session *entities.Session
	Loading bool
	Error   string
}

func cloneAuthState(s AuthState) AuthState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	if s.Session != nil {
		sess := *s.Session
		s.Session = &sess
	}
	return s
}

type AuthStore struct {
	state    *observable[AuthState]
	users    UserRepository
	sessions SessionHolder
	verifier PasswordVerifier
	log      *logger.Logger
}

type AuthOption func(*AuthStore)

// WithPasswordVerifier turns on password hashing at sign-up and checking at
// sign-in.
func WithPasswordVerifier(v PasswordVerifier) AuthOption {
	return func(s *AuthStore) { s.verifier = v }
}

func WithAuthLogger(l *logger.Logger) AuthOption {
	return func(s *AuthStore) { s.log = l }
}

// NewAuthStore returns a store in the loading state; call LoadUser to
// restore a persisted session.
func NewAuthStore(users UserRepository, sessions SessionHolder, opts ...AuthOption) *AuthStore {
	s := &AuthStore{
		state:    newObservable(AuthState{Loading: true}, cloneAuthState),
		users:    users,
		sessions: sessions,
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "auth_store")
	return s
}

func (s *AuthStore) State() AuthState {
	return s.state.get()
}

// Subscribe registers fn to receive every new snapshot and returns a
// function that removes it.
func (s *AuthStore) Subscribe(fn func(AuthState)) func() {
	return s.state.subscribe(fn)
}

// SignUp creates a student or instructor account and signs it in.
func (s *AuthStore) SignUp(email, password, fullName string, role entities.Role) error {
	s.begin()

	user, session, err := s.signUp(email, password, fullName, role)
	if err != nil {
		return s.fail("sign_up", err)
	}

	s.log.Info("user signed up", "user_id", user.ID, "role", user.Role)
	s.state.update(func(st *AuthState) {
		st.User = user
		st.Session = session
		st.Loading = false
	})
	return nil
}

func (s *AuthStore) signUp(email, password, fullName string, role entities.Role) (*entities.User, *entities.Session, error) {
	if role != entities.RoleStudent && role != entities.RoleInstructor {
		return nil, nil, apperr.Validation("invalid role %q", role)
	}
	if s.verifier != nil {
		if err := s.verifier.ValidatePassword(password); err != nil {
			return nil, nil, err
		}
	}

	existing, err := s.users.GetUserByEmail(email)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, apperr.Validation(msgEmailTaken)
	}

	user, err := s.users.CreateUser(entities.NewUser{
		Email:    email,
		FullName: fullName,
		Role:     role,
	})
	if err != nil {
		return nil, nil, err
	}

	if s.verifier != nil {
		if err := s.verifier.Register(user.ID, password); err != nil {
			return nil, nil, err
		}
	}

	session, err := s.sessions.Start(*user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// SignIn starts a session for the user with this email. The password is
// only checked when a verifier is configured.
func (s *AuthStore) SignIn(email, password string) error {
	s.begin()

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			err = apperr.Validation(msgInvalidCredentials)
		}
		return s.fail("sign_in", err)
	}

	if s.verifier != nil {
		if err := s.verifier.Verify(user.ID, password); err != nil {
			if !errors.Is(err, apperr.ErrStorage) {
				err = apperr.Validation(msgInvalidCredentials)
			}
			return s.fail("sign_in", err)
		}
	}

	session, err := s.sessions.Start(*user)
	if err != nil {
		return s.fail("sign_in", err)
	}

	s.log.Info("user signed in", "user_id", user.ID)
	s.state.update(func(st *AuthState) {
		st.User = user
		st.Session = session
		st.Loading = false
	})
	return nil
}

func (s *AuthStore) SignOut() error {
	s.begin()

	if err := s.sessions.Clear(); err != nil {
		return s.fail("sign_out", err)
	}

	s.state.update(func(st *AuthState) {
		st.User = nil
		st.Session = nil
		st.Loading = false
	})
	return nil
}

// LoadUser restores the signed-in user from the persisted session. A session
// whose user no longer exists leaves the store signed out.
func (s *AuthStore) LoadUser() error {
	s.begin()

	user, session, err := s.loadUser()
	if err != nil {
		s.log.Warn("action failed", "action", "load_user", "error", err)
		s.state.update(func(st *AuthState) {
			st.User = nil
			st.Session = nil
			st.Error = err.Error()
			st.Loading = false
		})
		return err
	}

	s.state.update(func(st *AuthState) {
		st.User = user
		st.Session = session
		st.Loading = false
	})
	return nil
}

func (s *AuthStore) loadUser() (*entities.User, *entities.Session, error) {
	session, err := s.sessions.Current()
	if err != nil || session == nil {
		return nil, nil, err
	}
	user, err := s.users.GetUserByID(session.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return user, session, nil
}

func (s *AuthStore) begin() {
	s.state.update(func(st *AuthState) {
		st.Loading = true
		st.Error = ""
	})
}

func (s *AuthStore) fail(action string, err error) error {
	s.log.Warn("action failed", "action", action, "error", err)
	s.state.update(func(st *AuthState) {
		st.Error = err.Error()
		st.Loading = false
	})
	return err
}
