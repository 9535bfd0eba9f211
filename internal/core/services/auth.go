package services

import (
	"context"

	"github.com/mkartas/hostel-hub/store-service/internal/core/domain"
)

// Login scans for an exact username/password match. On success the session
// points at the matched user; on failure the session is left untouched.
// Plain equality is the inherited contract, there is no hashing or lockout.
func (s *Store) Login(ctx context.Context, username, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.Username == username && u.Password == password {
			user := u
			s.state.CurrentUser = &user
			s.persist(ctx)

			name := user.FullName
			if name == "" {
				name = user.Username
			}
			s.notifier.Success("Welcome back, " + name + "!")

			out := user
			return &out, nil
		}
	}

	s.notifier.Error("Invalid username or password")
	return nil, domain.ErrInvalidCredentials
}

// Logout clears the session unconditionally.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentUser = nil
	s.persist(ctx)
	s.notifier.Success("Logged out successfully")
}

// RegisterStudent creates a student account from self-registration. It does
// not log the new user in; the caller logs in separately.
func (s *Store) RegisterStudent(ctx context.Context, profile domain.StudentProfile) (domain.User, error) {
	user, err := s.createStudent(ctx, profile)
	if err != nil {
		return domain.User{}, err
	}
	s.notifier.Success("Registration successful! Please login.")
	return user, nil
}

func (s *Store) createStudent(ctx context.Context, profile domain.StudentProfile) (domain.User, error) {
	if err := profile.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return domain.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{
		ID:       s.newID(),
		Username: profile.Username,
		Password: profile.Password,
		Email:    profile.Email,
		Role:     domain.RoleStudent,
		FullName: profile.FullName,
		Phone:    profile.Phone,
		Address:  profile.Address,
	}
	s.state.Users = append(s.state.Users, user)
	s.persist(ctx)
	return user, nil
}
