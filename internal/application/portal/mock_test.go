package portal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fibra/internal/domain/portal"
	"fibra/internal/shared/errors"
)

func newMock(opts ...MockOption) *MockBackend {
	return NewMockBackend(append([]MockOption{WithoutLatency()}, opts...)...)
}

func TestMockLoginDemoCredential(t *testing.T) {
	m := newMock()

	result, err := m.Login(context.Background(), domain.DemoClientNumber, domain.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, MockToken, result.Token)
	assert.Equal(t, "user-001", result.User.ID)
}

func TestMockLoginRejectsAnythingElse(t *testing.T) {
	m := newMock()

	tests := []struct {
		name     string
		clientID string
		password string
	}{
		{"wrong password", domain.DemoClientNumber, "9999"},
		{"wrong client", "C99999", domain.DemoPassword},
		{"empty pair", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Login(context.Background(), tt.clientID, tt.password)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidCredentialsError(err))
			assert.Equal(t, invalidCredentialsMessage, errors.GetAppError(err).Message)
		})
	}
}

func TestMockChangePlanReadYourWrites(t *testing.T) {
	m := newMock()
	ctx := context.Background()

	before, err := m.CurrentPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, before.ID)

	result, err := m.ChangePlan(ctx, 3)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Message)

	after, err := m.CurrentPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, after.ID)
}

func TestMockCurrentPlanFallsBackToFirst(t *testing.T) {
	snapshot := domain.SeedSnapshot()
	snapshot.User.PlanID = 99
	m := newMock(WithSnapshot(snapshot))

	plan, err := m.CurrentPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, plan.ID)
}

func TestMockCreateClaim(t *testing.T) {
	m := newMock()
	ctx := context.Background()

	claim, err := m.CreateClaim(ctx, CreateClaimInput{Type: "Técnico", Description: "x"})
	require.NoError(t, err)

	assert.Equal(t, domain.ClaimStatusOpen, claim.Status)
	assert.Equal(t, time.Now().Format(time.DateOnly), claim.Date)
	assert.Equal(t, "Técnico", claim.Type)
	assert.NotEmpty(t, claim.ID)
	assert.NotEqual(t, "clm-001", claim.ID)

	claims, err := m.Claims(ctx)
	require.NoError(t, err)
	require.Len(t, claims, 3)
	assert.Equal(t, claim.ID, claims[0].ID)
}

func TestMockCreateClaimIDsAreUnique(t *testing.T) {
	m := newMock()
	ctx := context.Background()

	a, err := m.CreateClaim(ctx, CreateClaimInput{Type: "Técnico", Description: "a"})
	require.NoError(t, err)
	b, err := m.CreateClaim(ctx, CreateClaimInput{Type: "Técnico", Description: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMockPlansIdempotent(t *testing.T) {
	m := newMock()
	ctx := context.Background()

	first, err := m.Plans(ctx)
	require.NoError(t, err)
	second, err := m.Plans(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMockReturnsCopies(t *testing.T) {
	m := newMock()
	ctx := context.Background()

	plans, err := m.Plans(ctx)
	require.NoError(t, err)
	plans[0].Name = "mutated"
	plans[0].Features[0] = "mutated"

	fresh, err := m.Plans(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Básico Fibra", fresh[0].Name)
	assert.Equal(t, "Navegación ilimitada", fresh[0].Features[0])
}

func TestMockReportPaymentDoesNotPersist(t *testing.T) {
	m := newMock()
	ctx := context.Background()

	before, err := m.Invoices(ctx)
	require.NoError(t, err)

	result, err := m.ReportPayment(ctx, PaymentReport{Amount: 4800, Date: "2024-06-05"})
	require.NoError(t, err)
	assert.True(t, result.Success)

	after, err := m.Invoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMockInstancesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newMock()
	b := newMock()

	_, err := a.ChangePlan(ctx, 1)
	require.NoError(t, err)
	_, err = a.CreateClaim(ctx, CreateClaimInput{Type: "Técnico", Description: "x"})
	require.NoError(t, err)

	plan, err := b.CurrentPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.ID)

	claims, err := b.Claims(ctx)
	require.NoError(t, err)
	assert.Len(t, claims, 2)
}

func TestMockHonorsCancellation(t *testing.T) {
	// Latency enabled so the simulated delay is interruptible.
	m := NewMockBackend()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Plans(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockNewsFeedOrder(t *testing.T) {
	m := newMock()

	news, err := m.News(context.Background())
	require.NoError(t, err)
	require.Len(t, news, 2)
	assert.Equal(t, "news-1", news[0].ID)
	assert.True(t, news[0].Date > news[1].Date)
}
