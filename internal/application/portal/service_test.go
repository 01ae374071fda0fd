package portal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fibra/internal/domain/portal"
	sharedConfig "fibra/internal/shared/config"
	"fibra/internal/shared/errors"
)

// =====================================================================
// Fake backend
// =====================================================================

type fakeBackend struct {
	loginResult *LoginResult
	loginErr    error
	plans       []domain.Plan
	plansErr    error

	calls []string
}

func (f *fakeBackend) Login(ctx context.Context, clientID, password string) (*LoginResult, error) {
	f.calls = append(f.calls, "login")
	return f.loginResult, f.loginErr
}

func (f *fakeBackend) Plans(ctx context.Context) ([]domain.Plan, error) {
	f.calls = append(f.calls, "plans")
	return f.plans, f.plansErr
}

func (f *fakeBackend) CurrentPlan(ctx context.Context) (*domain.Plan, error) {
	f.calls = append(f.calls, "current_plan")
	if len(f.plans) == 0 {
		return nil, f.plansErr
	}
	return &f.plans[0], f.plansErr
}

func (f *fakeBackend) ChangePlan(ctx context.Context, newPlanID int) (*OperationResult, error) {
	f.calls = append(f.calls, "change_plan")
	return &OperationResult{Success: true, Message: "ok"}, nil
}

func (f *fakeBackend) Invoices(ctx context.Context) ([]domain.Invoice, error) {
	f.calls = append(f.calls, "invoices")
	return nil, nil
}

func (f *fakeBackend) Claims(ctx context.Context) ([]domain.Claim, error) {
	f.calls = append(f.calls, "claims")
	return nil, nil
}

func (f *fakeBackend) CreateClaim(ctx context.Context, input CreateClaimInput) (*domain.Claim, error) {
	f.calls = append(f.calls, "create_claim")
	return &domain.Claim{Type: input.Type, Description: input.Description, Status: domain.ClaimStatusOpen}, nil
}

func (f *fakeBackend) ReportPayment(ctx context.Context, report PaymentReport) (*OperationResult, error) {
	f.calls = append(f.calls, "report_payment")
	return &OperationResult{Success: true}, nil
}

func (f *fakeBackend) News(ctx context.Context) ([]domain.NewsItem, error) {
	f.calls = append(f.calls, "news")
	return nil, nil
}

// =====================================================================
// Tests
// =====================================================================

func TestServiceLoginStoresToken(t *testing.T) {
	backend := &fakeBackend{
		loginResult: &LoginResult{
			User:  domain.User{ID: "user-001", PlanID: 2},
			Token: "issued-token",
		},
	}
	svc := NewService(backend, nil)

	user, err := svc.Login(context.Background(), "C00001", "1234")
	require.NoError(t, err)
	assert.Equal(t, "user-001", user.ID)

	token, ok := svc.Session().Token()
	assert.True(t, ok)
	assert.Equal(t, "issued-token", token)
}

func TestServiceLoginFailureStoresNoToken(t *testing.T) {
	backend := &fakeBackend{
		loginErr: errors.NewInvalidCredentialsError("incorrectos"),
	}
	svc := NewService(backend, nil)

	_, err := svc.Login(context.Background(), "C00001", "wrong")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidCredentialsError(err))

	_, ok := svc.Session().Token()
	assert.False(t, ok)
}

func TestServiceLogoutClearsToken(t *testing.T) {
	backend := &fakeBackend{
		loginResult: &LoginResult{User: domain.User{ID: "user-001"}, Token: "tok"},
	}
	svc := NewService(backend, nil)

	_, err := svc.Login(context.Background(), "C00001", "1234")
	require.NoError(t, err)

	svc.Logout()

	_, ok := svc.Session().Token()
	assert.False(t, ok)
	assert.Empty(t, svc.Session().AuthHeader().Get("Authorization"))
}

func TestServiceErrorsPassThroughUnchanged(t *testing.T) {
	wantErr := errors.NewTimeoutError("slow")
	backend := &fakeBackend{plansErr: wantErr}
	svc := NewService(backend, nil)

	_, err := svc.Plans(context.Background())
	assert.Same(t, wantErr, errors.GetAppError(err))
}

func TestServiceDelegatesToBackend(t *testing.T) {
	backend := &fakeBackend{plans: []domain.Plan{{ID: 1}}}
	svc := NewService(backend, nil)
	ctx := context.Background()

	svc.Plans(ctx)
	svc.CurrentPlan(ctx)
	svc.ChangePlan(ctx, 3)
	svc.Invoices(ctx)
	svc.Claims(ctx)
	svc.CreateClaim(ctx, CreateClaimInput{Type: "Técnico", Description: "x"})
	svc.ReportPayment(ctx, PaymentReport{Amount: 1, Date: "2024-06-05"})
	svc.News(ctx)

	assert.Equal(t, []string{
		"plans", "current_plan", "change_plan", "invoices",
		"claims", "create_claim", "report_payment", "news",
	}, backend.calls)
}

func TestNewServiceFromConfig(t *testing.T) {
	mockCfg := &sharedConfig.APIConfig{UseMock: true, TimeoutMS: 8000}
	svc := NewServiceFromConfig(mockCfg, nil)
	_, ok := svc.backend.(*MockBackend)
	assert.True(t, ok)

	restCfg := &sharedConfig.APIConfig{UseMock: false, BaseURL: "http://localhost:8080", TimeoutMS: 8000}
	svc = NewServiceFromConfig(restCfg, nil)
	_, ok = svc.backend.(*RESTBackend)
	assert.True(t, ok)
}

func TestMockModeEndToEnd(t *testing.T) {
	svc := NewService(NewMockBackend(WithoutLatency()), nil)
	ctx := context.Background()

	user, err := svc.Login(ctx, domain.DemoClientNumber, domain.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, 2, user.PlanID)

	token, ok := svc.Session().Token()
	require.True(t, ok)
	assert.Equal(t, MockToken, token)

	_, err = svc.ChangePlan(ctx, 1)
	require.NoError(t, err)

	plan, err := svc.CurrentPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.ID)

	svc.Logout()
	_, ok = svc.Session().Token()
	assert.False(t, ok)
}
