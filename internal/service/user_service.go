package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/Vansh-Pandey/SocialMedia/internal/repository"
	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

const searchLimit = 10

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput carries the fields of a profile update. Nil pointers
// mean "not supplied" and leave the stored value untouched.
type UpdateProfileInput struct {
	Username   *string
	Bio        *string
	ProfilePic string
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ProfilePic != "" {
		user.ProfilePic = input.ProfilePic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return user, nil
}

// Search matches usernames case-insensitively by substring, capped at 10
// results.
func (s *UserService) Search(ctx context.Context, query string) ([]domain.User, error) {
	users, err := s.userRepo.SearchByUsername(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
