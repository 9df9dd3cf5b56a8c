package service

import (
	"context"
	"errors"
	"testing"

	"helphub/internal/models"
	"helphub/internal/repository"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	getOwnersFn  func(context.Context, []uint) (map[uint]models.Owner, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetOwners(ctx context.Context, ids []uint) (map[uint]models.Owner, error) {
	return s.getOwnersFn(ctx, ids)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getOwnersFn:  func(context.Context, []uint) (map[uint]models.Owner, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
	}
}

// memUserRepo is an in-memory UserRepository keyed by exact email.
type memUserRepo struct {
	byID    map[uint]*models.User
	byEmail map[string]*models.User
	nextID  uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[uint]*models.User{}, byEmail: map[string]*models.User{}}
}

func (r *memUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("User")
	}
	cp := *u
	return &cp, nil
}
func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *memUserRepo) GetOwners(_ context.Context, ids []uint) (map[uint]models.Owner, error) {
	out := map[uint]models.Owner{}
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out[id] = models.Owner{ID: u.ID, FullName: u.FullName}
		}
	}
	return out, nil
}
func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return models.NewConflictError("User already exists")
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}
func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

type opportunityRepoStub struct {
	createFn  func(context.Context, *models.Opportunity) error
	getByIDFn func(context.Context, uint) (*models.Opportunity, error)
	listFn    func(context.Context, repository.OpportunityFilter) ([]*models.Opportunity, error)
}

func (s *opportunityRepoStub) Create(ctx context.Context, o *models.Opportunity) error {
	return s.createFn(ctx, o)
}
func (s *opportunityRepoStub) GetByID(ctx context.Context, id uint) (*models.Opportunity, error) {
	return s.getByIDFn(ctx, id)
}
func (s *opportunityRepoStub) List(ctx context.Context, f repository.OpportunityFilter) ([]*models.Opportunity, error) {
	return s.listFn(ctx, f)
}

func noopOpportunityRepo() *opportunityRepoStub {
	return &opportunityRepoStub{
		createFn: func(context.Context, *models.Opportunity) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Opportunity, error) {
			return &models.Opportunity{ID: id}, nil
		},
		listFn: func(context.Context, repository.OpportunityFilter) ([]*models.Opportunity, error) { return nil, nil },
	}
}

// memSignupRepo enforces the (user, opportunity) uniqueness the store index provides.
type memSignupRepo struct {
	rows   map[uint]*models.VolunteerSignup
	nextID uint
}

func newMemSignupRepo() *memSignupRepo {
	return &memSignupRepo{rows: map[uint]*models.VolunteerSignup{}}
}

func (r *memSignupRepo) Create(_ context.Context, s *models.VolunteerSignup) error {
	for _, row := range r.rows {
		if row.UserID == s.UserID && row.OpportunityID == s.OpportunityID {
			return models.NewConflictError(repository.DuplicateSignupMessage)
		}
	}
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}
func (r *memSignupRepo) Exists(_ context.Context, userID, opportunityID uint) (bool, error) {
	for _, row := range r.rows {
		if row.UserID == userID && row.OpportunityID == opportunityID {
			return true, nil
		}
	}
	return false, nil
}
func (r *memSignupRepo) ListByUser(_ context.Context, userID uint) ([]*models.VolunteerSignup, error) {
	out := make([]*models.VolunteerSignup, 0)
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}
func (r *memSignupRepo) DeleteOwned(_ context.Context, id, userID uint) error {
	row, ok := r.rows[id]
	if !ok || row.UserID != userID {
		return models.NewNotFoundError("Signup")
	}
	delete(r.rows, id)
	return nil
}

type resourceRepoStub struct {
	createFn      func(context.Context, *models.Resource) error
	listFn        func(context.Context, repository.ResourceFilter) ([]*models.Resource, error)
	deleteOwnedFn func(context.Context, uint, uint) error
}

func (s *resourceRepoStub) Create(ctx context.Context, r *models.Resource) error {
	return s.createFn(ctx, r)
}
func (s *resourceRepoStub) List(ctx context.Context, f repository.ResourceFilter) ([]*models.Resource, error) {
	return s.listFn(ctx, f)
}
func (s *resourceRepoStub) DeleteOwned(ctx context.Context, id, userID uint) error {
	return s.deleteOwnedFn(ctx, id, userID)
}

func noopResourceRepo() *resourceRepoStub {
	return &resourceRepoStub{
		createFn:      func(context.Context, *models.Resource) error { return nil },
		listFn:        func(context.Context, repository.ResourceFilter) ([]*models.Resource, error) { return nil, nil },
		deleteOwnedFn: func(context.Context, uint, uint) error { return nil },
	}
}

type tipRepoStub struct {
	createFn         func(context.Context, *models.CommunityTip) error
	getByIDFn        func(context.Context, uint) (*models.CommunityTip, error)
	listFn           func(context.Context, repository.TipFilter) ([]*models.CommunityTip, error)
	incrementLikesFn func(context.Context, uint) (*models.CommunityTip, error)
}

func (s *tipRepoStub) Create(ctx context.Context, t *models.CommunityTip) error {
	return s.createFn(ctx, t)
}
func (s *tipRepoStub) GetByID(ctx context.Context, id uint) (*models.CommunityTip, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tipRepoStub) List(ctx context.Context, f repository.TipFilter) ([]*models.CommunityTip, error) {
	return s.listFn(ctx, f)
}
func (s *tipRepoStub) IncrementLikes(ctx context.Context, id uint) (*models.CommunityTip, error) {
	return s.incrementLikesFn(ctx, id)
}

func noopTipRepo() *tipRepoStub {
	return &tipRepoStub{
		createFn:         func(context.Context, *models.CommunityTip) error { return nil },
		getByIDFn:        func(context.Context, uint) (*models.CommunityTip, error) { return nil, models.NewNotFoundError("Tip") },
		listFn:           func(context.Context, repository.TipFilter) ([]*models.CommunityTip, error) { return nil, nil },
		incrementLikesFn: func(context.Context, uint) (*models.CommunityTip, error) { return nil, models.NewNotFoundError("Tip") },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}
