package service

import (
	"context"
	"sync"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/contract"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes. Specifications are interpreted by type
// instead of being applied to a gorm.DB.

type fakeUserRepo struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*entity.User
	otpTokens     map[uuid.UUID]*entity.EmailVerificationToken
	refreshTokens map[string]*entity.UserRefreshToken
	providers     []*entity.UserProvider
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[uuid.UUID]*entity.User),
		otpTokens:     make(map[uuid.UUID]*entity.EmailVerificationToken),
		refreshTokens: make(map[string]*entity.UserRefreshToken),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if userMatches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.otpTokens[token.Id] = token
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.otpTokens {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.OwnedBy:
				if t.UserId != s.UserID {
					match = false
				}
			case specification.ByToken:
				if t.Token != s.Token {
					match = false
				}
			}
		}
		if match {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.otpTokens, id)
	return nil
}

func (r *fakeUserRepo) MarkEmailVerified(ctx context.Context, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userId]; ok {
		u.EmailVerified = true
	}
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshTokens[token.TokenHash] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.refreshTokens {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByTokenHash); ok && t.TokenHash != s.Hash {
				match = false
			}
		}
		if match {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.refreshTokens[tokenHash]; ok {
		t.Revoked = true
	}
	return nil
}

func (r *fakeUserRepo) RevokeAllRefreshTokens(ctx context.Context, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.refreshTokens {
		if t.UserId == userId {
			t.Revoked = true
		}
	}
	return nil
}

func (r *fakeUserRepo) SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, provider)
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*entity.Profile
	// fieldWrites records UpdateField calls as field -> values, in order.
	fieldWrites map[string][]string
	findErr     error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:    make(map[uuid.UUID]*entity.Profile),
		fieldWrites: make(map[string][]string),
	}
}

func (r *fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok {
			return r.profiles[s.ID], nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, profile *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *profile
	r.profiles[profile.Id] = &copied
	return nil
}

func (r *fakeProfileRepo) UpdateField(ctx context.Context, userId uuid.UUID, field string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fieldWrites[field] = append(r.fieldWrites[field], value)
	p, ok := r.profiles[userId]
	if !ok {
		p = &entity.Profile{Id: userId}
		r.profiles[userId] = p
	}
	switch field {
	case "body_shape":
		p.BodyShape = &value
	case "height":
		p.Height = &value
	case "skin_tone":
		p.SkinTone = value
	}
	return nil
}

type fakeRecommendationRepo struct {
	mu   sync.Mutex
	recs []*entity.Recommendation
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{}
}

func (r *fakeRecommendationRepo) Create(ctx context.Context, rec *entity.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

func (r *fakeRecommendationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Recommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recs {
		if recMatches(rec, specs) {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakeRecommendationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Recommendation
	for _, rec := range r.recs {
		if recMatches(rec, specs) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func recMatches(rec *entity.Recommendation, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if rec.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if rec.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeRecommendationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.recs)), nil
}

type fakeUnitOfWork struct {
	userRepo    *fakeUserRepo
	profileRepo *fakeProfileRepo
	recRepo     *fakeRecommendationRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.userRepo }
func (u *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository {
	return u.profileRepo
}
func (u *fakeUnitOfWork) RecommendationRepository() contract.RecommendationRepository {
	return u.recRepo
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeRepositoryFactory {
	return &fakeRepositoryFactory{
		uow: &fakeUnitOfWork{
			userRepo:    newFakeUserRepo(),
			profileRepo: newFakeProfileRepo(),
			recRepo:     newFakeRecommendationRepo(),
		},
	}
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeGenerator returns a fixed reply and records prompts.
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (g *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

// fakePublisher records published payloads.
type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
