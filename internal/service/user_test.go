package service_test

import (
	"context"
	"errors"
	"testing"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/pkg/testdb"
	"tush00nka/phonebook_messenger/internal/repository"
	"tush00nka/phonebook_messenger/internal/service"

	"golang.org/x/crypto/bcrypt"
)

// memoryCache records invalidations so tests can check them.
type memoryCache struct {
	profiles    map[string]model.PublicProfile
	versions    map[string]int64
	invalidated []string
	gets        int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{profiles: map[string]model.PublicProfile{}, versions: map[string]int64{}}
}

func (c *memoryCache) Version(_ context.Context, phone string) (int64, error) {
	return c.versions[phone], nil
}

func (c *memoryCache) Get(_ context.Context, phone string) (*model.PublicProfile, error) {
	c.gets++
	p, ok := c.profiles[phone]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return &p, nil
}

func (c *memoryCache) Set(_ context.Context, p model.PublicProfile, version int64) error {
	if c.versions[p.Phone] != version {
		return repository.ErrStaleProfile
	}
	c.profiles[p.Phone] = p
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, phones ...string) error {
	for _, phone := range phones {
		delete(c.profiles, phone)
		c.versions[phone]++
		c.invalidated = append(c.invalidated, phone)
	}
	return nil
}

func newUserService(t *testing.T) (service.UserService, repository.UserRepository, *memoryCache) {
	t.Helper()
	repo := repository.NewUserRepository(testdb.New(t))
	cache := newMemoryCache()
	return service.NewUserService(repo, cache, bcrypt.MinCost), repo, cache
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newUserService(t)

	registered, err := svc.Register(ctx, "+10000000001", "p1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if registered.IsProfileCompleted {
		t.Error("new registration must not be profile-completed")
	}

	stored, err := repo.FindByID(ctx, registered.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Password == "p1" {
		t.Error("password stored in plain text")
	}

	user, err := svc.Login(ctx, "+10000000001", "p1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != registered.ID || user.IsProfileCompleted {
		t.Errorf("Login() = %+v", user)
	}
	if user.Password != "" {
		t.Error("Login() leaked the password hash")
	}

	if _, err := svc.Login(ctx, "+10000000001", "wrong"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "+19999999999", "p1"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Login(unknown phone) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	if _, err := svc.Register(ctx, "+1", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, "+1", "b"); !errors.Is(err, service.ErrPhoneTaken) {
		t.Errorf("Register(duplicate) error = %v, want ErrPhoneTaken", err)
	}
	if _, err := svc.Create(ctx, "+1", "b", "Bob"); !errors.Is(err, service.ErrPhoneTaken) {
		t.Errorf("Create(duplicate) error = %v, want ErrPhoneTaken", err)
	}
}

func TestLoginBlockedUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	created, err := svc.Create(ctx, "+1", "secret", "Alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetBlocked(ctx, created.ID, true); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(ctx, "+1", "secret"); !errors.Is(err, service.ErrUserBlocked) {
		t.Errorf("Login(blocked) error = %v, want ErrUserBlocked", err)
	}
	if _, err := svc.Login(ctx, "+1", "wrong"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("Login(blocked, wrong password) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUpgradesLegacyPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newUserService(t)

	legacy := &model.User{Phone: "+1", Password: "plain"}
	if err := repo.Create(ctx, legacy); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Login(ctx, "+1", "plain"); err != nil {
		t.Fatalf("Login(legacy) error = %v", err)
	}

	stored, err := repo.FindByID(ctx, legacy.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Password == "plain" {
		t.Fatal("legacy password was not re-hashed")
	}
	if _, err := svc.Login(ctx, "+1", "plain"); err != nil {
		t.Errorf("Login(after upgrade) error = %v", err)
	}
}

func TestSearchOnlyCompletedProfiles(t *testing.T) {
	ctx := context.Background()
	svc, _, cache := newUserService(t)

	registered, err := svc.Register(ctx, "+1", "p")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Search(ctx, "+1"); !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("Search(incomplete) error = %v, want ErrUserNotFound", err)
	}
	if len(cache.profiles) != 0 {
		t.Error("a miss must not be cached")
	}

	if _, err := svc.CompleteProfile(ctx, service.CompleteProfileInput{UserID: registered.ID, Name: "Alice"}); err != nil {
		t.Fatal(err)
	}

	profile, err := svc.Search(ctx, "+1")
	if err != nil {
		t.Fatalf("Search(completed) error = %v", err)
	}
	if profile.Name == nil || *profile.Name != "Alice" {
		t.Errorf("Search() = %+v", profile)
	}
	if _, ok := cache.profiles["+1"]; !ok {
		t.Error("Search() did not fill the cache")
	}
}

func TestMutationsInvalidateCache(t *testing.T) {
	ctx := context.Background()
	svc, _, cache := newUserService(t)

	created, err := svc.Create(ctx, "+1", "p", "Alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Search(ctx, "+1"); err != nil {
		t.Fatal(err)
	}

	bio := "new bio"
	name := "Alice B"
	if _, err := svc.UpdateProfile(ctx, service.UpdateProfileInput{UserID: created.ID, Name: &name, Bio: &bio}); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.profiles["+1"]; ok {
		t.Fatal("UpdateProfile() left a stale cache entry")
	}

	profile, err := svc.Search(ctx, "+1")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Bio == nil || *profile.Bio != "new bio" {
		t.Errorf("Search() after update = %+v", profile)
	}

	if _, err := svc.SetBlocked(ctx, created.ID, true); err != nil {
		t.Fatal(err)
	}
	profile, err = svc.Search(ctx, "+1")
	if err != nil {
		t.Fatal(err)
	}
	if !profile.IsBlocked {
		t.Error("Search() after SetBlocked still reports unblocked")
	}
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	tests := []struct {
		name  string
		call  func() error
		field string
	}{
		{"login phone", func() error { _, err := svc.Login(ctx, "", "p"); return err }, "phone"},
		{"register password", func() error { _, err := svc.Register(ctx, "+1", ""); return err }, "password"},
		{"complete user_id", func() error {
			_, err := svc.CompleteProfile(ctx, service.CompleteProfileInput{Name: "x"})
			return err
		}, "user_id"},
		{"complete name", func() error {
			_, err := svc.CompleteProfile(ctx, service.CompleteProfileInput{UserID: 1})
			return err
		}, "name"},
		{"create name", func() error { _, err := svc.Create(ctx, "+1", "p", " "); return err }, "name"},
		{"block user_id", func() error { _, err := svc.SetBlocked(ctx, 0, true); return err }, "user_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fieldErr *service.FieldError
			if err := tt.call(); !errors.As(err, &fieldErr) || fieldErr.Field != tt.field {
				t.Errorf("error = %v, want FieldError for %s", err, tt.field)
			}
		})
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	if _, err := svc.CompleteProfile(ctx, service.CompleteProfileInput{UserID: 42, Name: "x"}); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("CompleteProfile(unknown) error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.SetBlocked(ctx, 42, true); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("SetBlocked(unknown) error = %v, want ErrUserNotFound", err)
	}
}
