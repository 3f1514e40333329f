package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shawki99/Auth-Sys-BE/internal/auth"
	dom "github.com/shawki99/Auth-Sys-BE/internal/domain"
	"github.com/shawki99/Auth-Sys-BE/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeRepo is an in-memory UserRepo. With hideFromGet set, GetByEmail
// always misses, simulating a concurrent signup losing the race to the
// unique index.
type fakeRepo struct {
	mu          sync.Mutex
	nextID      int64
	users       map[string]dom.User
	hideFromGet bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]dom.User{}}
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideFromGet {
		return dom.User{}, pgx.ErrNoRows
	}
	u, ok := f.users[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeRepo) Create(_ context.Context, email, name, passwordHash string) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_uniq"}
	}
	f.nextID++
	u := dom.User{
		ID:           f.nextID,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[email] = u
	return u, nil
}

func newTestService(r *fakeRepo) *service.AuthService {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	return service.NewAuthService(r, issuer, bcrypt.MinCost)
}

func TestSignup_CreatesUser(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	id, err := svc.Signup(context.Background(), "a@b.com", "Ann", "Abc12345!")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	stored := repo.users["a@b.com"]
	require.NotEqual(t, "Abc12345!", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Abc12345!")))
}

func TestSignup_EmailTaken(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), "a@b.com", "Ann", "Abc12345!")
	require.NoError(t, err)

	// Different name and password must not matter.
	_, err = svc.Signup(context.Background(), "a@b.com", "Bob", "Xyz98765?")
	require.ErrorIs(t, err, service.ErrEmailTaken)
	require.Len(t, repo.users, 1)
}

func TestSignup_UniqueIndexBackstop(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), "a@b.com", "Ann", "Abc12345!")
	require.NoError(t, err)

	// Existence check misses but the insert hits the unique index, as
	// with two concurrent signups for the same email.
	repo.hideFromGet = true
	_, err = svc.Signup(context.Background(), "a@b.com", "Bob", "Xyz98765?")
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestSignin_ValidCredentials(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	id, err := svc.Signup(context.Background(), "a@b.com", "Ann", "Abc12345!")
	require.NoError(t, err)

	token, err := svc.Signin(context.Background(), "a@b.com", "Abc12345!")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.NewIssuer("test-secret", time.Hour).Parse(token)
	require.NoError(t, err)
	require.Equal(t, "1", claims.Subject)
	require.Equal(t, int64(1), id)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, "Ann", claims.Name)
}

func TestSignin_WrongPasswordAndUnknownEmail_Indistinguishable(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), "a@b.com", "Ann", "Abc12345!")
	require.NoError(t, err)

	_, errWrongPass := svc.Signin(context.Background(), "a@b.com", "wrong123!")
	_, errNoUser := svc.Signin(context.Background(), "nobody@b.com", "Abc12345!")

	require.ErrorIs(t, errWrongPass, service.ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, service.ErrInvalidCredentials)
	require.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestSignin_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRepo())

	_, err := svc.Signin(context.Background(), "", "Abc12345!")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Signin(context.Background(), "a@b.com", "")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}
