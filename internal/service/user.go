package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/pkg/auth"
	"tush00nka/phonebook_messenger/internal/repository"
)

type userService struct {
	userRepo   repository.UserRepository
	cache      repository.ProfileCache
	bcryptCost int
}

func NewUserService(userRepo repository.UserRepository, cache repository.ProfileCache, bcryptCost int) UserService {
	if cache == nil {
		cache = repository.NopProfileCache{}
	}
	return &userService{userRepo: userRepo, cache: cache, bcryptCost: bcryptCost}
}

// Login checks the password of the account registered on phone. A blocked
// account with correct credentials gets ErrUserBlocked.
func (s *userService) Login(ctx context.Context, phone, password string) (*model.User, error) {
	if phone == "" {
		return nil, required("phone")
	}
	if password == "" {
		return nil, required("password")
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, needsRehash := auth.CheckPassword(password, user.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if needsRehash {
		// Старые записи хранят пароль открытым текстом
		if hash, err := auth.HashPassword(password, s.bcryptCost); err != nil {
			log.Printf("failed to hash legacy password of user %d: %v", user.ID, err)
		} else if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
			log.Printf("failed to upgrade legacy password of user %d: %v", user.ID, err)
		}
	}

	if user.IsBlocked {
		return nil, ErrUserBlocked
	}

	user.SanitizePassword()
	return user, nil
}

func (s *userService) Register(ctx context.Context, phone, password string) (*model.User, error) {
	if phone == "" {
		return nil, required("phone")
	}
	if password == "" {
		return nil, required("password")
	}

	return s.create(ctx, &model.User{Phone: phone}, password)
}

func (s *userService) CompleteProfile(ctx context.Context, input CompleteProfileInput) (*model.User, error) {
	if input.UserID == 0 {
		return nil, required("user_id")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, required("name")
	}

	user, err := s.userRepo.CompleteProfile(ctx, input.UserID, input.Name, input.Bio, input.Avatar)
	if err != nil {
		return nil, s.userError(err)
	}

	s.invalidate(ctx, user.Phone)
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.User, error) {
	if input.UserID == 0 {
		return nil, required("user_id")
	}

	user, err := s.userRepo.UpdateProfile(ctx, input.UserID, input.Name, input.Bio, input.Avatar)
	if err != nil {
		return nil, s.userError(err)
	}

	s.invalidate(ctx, user.Phone)
	return user, nil
}

// Search finds a user with a completed profile by exact phone.
func (s *userService) Search(ctx context.Context, phone string) (*model.PublicProfile, error) {
	if phone == "" {
		return nil, required("phone")
	}

	cached, err := s.cache.Get(ctx, phone)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		log.Printf("profile cache read failed for %s: %v", phone, err)
	}

	// Версия читается до запроса к базе, иначе можно закэшировать устаревший профиль
	version, versionErr := s.cache.Version(ctx, phone)
	if versionErr != nil {
		log.Printf("profile cache read failed for %s: %v", phone, versionErr)
	}

	user, err := s.userRepo.FindCompletedByPhone(ctx, phone)
	if err != nil {
		return nil, s.userError(err)
	}

	profile := user.PublicProfile()
	if versionErr == nil {
		err := s.cache.Set(ctx, profile, version)
		if err != nil && !errors.Is(err, repository.ErrStaleProfile) {
			log.Printf("profile cache write failed for %s: %v", phone, err)
		}
	}

	return &profile, nil
}

func (s *userService) ListAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].SanitizePassword()
	}

	return users, nil
}

// Create adds an account on behalf of an administrator; the profile counts as
// completed right away.
func (s *userService) Create(ctx context.Context, phone, password, name string) (*model.User, error) {
	if phone == "" {
		return nil, required("phone")
	}
	if password == "" {
		return nil, required("password")
	}
	if strings.TrimSpace(name) == "" {
		return nil, required("name")
	}

	user, err := s.create(ctx, &model.User{Phone: phone, Name: &name, IsProfileCompleted: true}, password)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, user.Phone)
	return user, nil
}

func (s *userService) SetBlocked(ctx context.Context, userID uint, blocked bool) (*model.User, error) {
	if userID == 0 {
		return nil, required("user_id")
	}

	user, err := s.userRepo.SetBlocked(ctx, userID, blocked)
	if err != nil {
		return nil, s.userError(err)
	}

	s.invalidate(ctx, user.Phone)
	return user, nil
}

func (s *userService) create(ctx context.Context, user *model.User, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPhoneTaken
		}
		return nil, err
	}

	user.SanitizePassword()
	return user, nil
}

func (s *userService) invalidate(ctx context.Context, phone string) {
	if err := s.cache.Invalidate(ctx, phone); err != nil {
		log.Printf("profile cache invalidation failed for %s: %v", phone, err)
	}
}

func (s *userService) userError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
