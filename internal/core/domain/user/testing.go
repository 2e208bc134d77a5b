package user

import (
	c "authsvc/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenIssuer struct {
	Token       string
	ReturnError bool
	issued      map[SessionToken]ID
	lock        sync.Mutex
}

func NewFakeSessionTokenIssuer(token string) *FakeSessionTokenIssuer {
	return &FakeSessionTokenIssuer{Token: token, issued: make(map[SessionToken]ID)}
}

func (g *FakeSessionTokenIssuer) IssueToken(id ID, email c.Email) (SessionToken, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not issue session token for user %d", id)
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	token := SessionToken(g.Token)
	g.issued[token] = id
	return token, nil
}

func (g *FakeSessionTokenIssuer) VerifyToken(token SessionToken) (ID, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	id, ok := g.issued[token]
	if !ok {
		return 0, ErrInvalidSessionToken
	}
	return id, nil
}

type FakeResetTokenGenerator struct {
	Token       ResetToken
	ReturnError bool
}

func NewFakeResetTokenGenerator(token string) *FakeResetTokenGenerator {
	return &FakeResetTokenGenerator{Token: ResetToken(token)}
}

func (g *FakeResetTokenGenerator) GenerateResetToken() (ResetToken, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not generate reset token")
	}
	return g.Token, nil
}

type FakeResetTokenSender struct {
	Sent        []User
	SentTokens  []ResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenSender() *FakeResetTokenSender {
	return &FakeResetTokenSender{}
}

func (s *FakeResetTokenSender) SendResetToken(ctx context.Context, u User, token ResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset token for user %d", u.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, u)
	s.SentTokens = append(s.SentTokens, token)
	return nil
}

func (s *FakeResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeResetTokenSender) LastSentTo() User {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetSessionToken(ctx context.Context, id ID, token SessionToken) error {
	if r.ReturnError {
		return fmt.Errorf("could not set session token for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].SessionToken = c.NewOptional(token, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id ID,
	token ResetToken,
	expiresAt time.Time,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set reset token for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].ResetToken = c.NewOptional(token, true)
			r.Users[ix].ResetTokenExpiry = c.NewOptional(expiresAt, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) CompletePasswordReset(
	ctx context.Context,
	id ID,
	token ResetToken,
	newHash PasswordHash,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not complete password reset for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID != id {
			continue
		}
		if !r.Users[ix].ResetToken.IsPresent || r.Users[ix].ResetToken.Value != token {
			return ErrInvalidOrExpiredResetToken
		}
		r.Users[ix].PasswordHash = newHash
		r.Users[ix].ResetToken = c.NewOptional(ResetToken(""), false)
		r.Users[ix].ResetTokenExpiry = c.NewOptional(time.Time{}, false)
		return nil
	}
	return ErrInvalidOrExpiredResetToken
}
