package portal

import (
	"context"
	"sync"
	"time"

	domain "fibra/internal/domain/portal"
	"fibra/internal/shared/errors"
	"fibra/internal/shared/id"
)

const invalidCredentialsMessage = "Número de Cliente o Contraseña incorrectos."

// MockToken is the fixed bearer token the mock backend hands out.
const MockToken = "mock-auth-token-for-testing"

// Per-operation simulated latency, sized to exercise loading states the way
// the deployed backend would.
const (
	loginDelay         = 800 * time.Millisecond
	plansDelay         = 500 * time.Millisecond
	currentPlanDelay   = 300 * time.Millisecond
	changePlanDelay    = 1200 * time.Millisecond
	invoicesDelay      = 700 * time.Millisecond
	claimsDelay        = 600 * time.Millisecond
	createClaimDelay   = 1000 * time.Millisecond
	reportPaymentDelay = 1000 * time.Millisecond
	newsDelay          = 400 * time.Millisecond
)

// MockBackend emulates the portal backend without a network. It owns one
// mutable snapshot per instance, so writes are visible to subsequent reads
// within the same session and never leak across instances.
type MockBackend struct {
	mu      sync.Mutex
	db      *domain.Snapshot
	latency float64
}

// MockOption configures a MockBackend.
type MockOption func(*MockBackend)

// WithoutLatency disables the simulated delays. Intended for tests.
func WithoutLatency() MockOption {
	return func(m *MockBackend) {
		m.latency = 0
	}
}

// WithSnapshot replaces the seeded dataset. The backend takes ownership of
// the snapshot.
func WithSnapshot(s *domain.Snapshot) MockOption {
	return func(m *MockBackend) {
		m.db = s
	}
}

// NewMockBackend creates a mock backend seeded with the demo dataset.
func NewMockBackend(opts ...MockOption) *MockBackend {
	m := &MockBackend{
		db:      domain.SeedSnapshot(),
		latency: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// wait simulates server latency, honoring context cancellation.
func (m *MockBackend) wait(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * m.latency)
	if scaled <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Login accepts exactly the demo credential pair. No token is handed out on
// failure.
func (m *MockBackend) Login(ctx context.Context, clientID, password string) (*LoginResult, error) {
	if err := m.wait(ctx, loginDelay); err != nil {
		return nil, err
	}

	if clientID != domain.DemoClientNumber || password != domain.DemoPassword {
		return nil, errors.NewInvalidCredentialsError(invalidCredentialsMessage)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return &LoginResult{User: m.db.User, Token: MockToken}, nil
}

func (m *MockBackend) Plans(ctx context.Context) ([]domain.Plan, error) {
	if err := m.wait(ctx, plansDelay); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db.Clone().Plans, nil
}

// CurrentPlan resolves the user's plan, falling back to the first catalog
// entry when the reference dangles.
func (m *MockBackend) CurrentPlan(ctx context.Context) (*domain.Plan, error) {
	if err := m.wait(ctx, currentPlanDelay); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	plans := m.db.Clone().Plans
	if plan := domain.FindPlan(plans, m.db.User.PlanID); plan != nil {
		return plan, nil
	}
	return &plans[0], nil
}

// ChangePlan updates the user's plan in place. The change is visible to
// subsequent CurrentPlan calls on this instance.
func (m *MockBackend) ChangePlan(ctx context.Context, newPlanID int) (*OperationResult, error) {
	if err := m.wait(ctx, changePlanDelay); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.db.User.PlanID = newPlanID
	return &OperationResult{
		Success: true,
		Message: "Tu plan se actualizará en el próximo ciclo de facturación.",
	}, nil
}

func (m *MockBackend) Invoices(ctx context.Context) ([]domain.Invoice, error) {
	if err := m.wait(ctx, invoicesDelay); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db.Clone().Invoices, nil
}

func (m *MockBackend) Claims(ctx context.Context) ([]domain.Claim, error) {
	if err := m.wait(ctx, claimsDelay); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db.Clone().Claims, nil
}

// CreateClaim prepends a new claim with a generated id, today's date, and
// initial status open.
func (m *MockBackend) CreateClaim(ctx context.Context, input CreateClaimInput) (*domain.Claim, error) {
	if err := m.wait(ctx, createClaimDelay); err != nil {
		return nil, err
	}

	claimID, err := id.NewClaimID()
	if err != nil {
		return nil, errors.NewInternalError("no se pudo generar el identificador del reclamo", err.Error())
	}

	claim := domain.Claim{
		ID:          claimID,
		Date:        time.Now().Format(time.DateOnly),
		Type:        input.Type,
		Description: input.Description,
		Status:      domain.ClaimStatusOpen,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.db.Claims = append([]domain.Claim{claim}, m.db.Claims...)
	return &claim, nil
}

// ReportPayment acknowledges the report without persisting anything: mock
// mode has no invoice ledger to reconcile against. An intentional gap, not
// a bug.
func (m *MockBackend) ReportPayment(ctx context.Context, report PaymentReport) (*OperationResult, error) {
	if err := m.wait(ctx, reportPaymentDelay); err != nil {
		return nil, err
	}

	return &OperationResult{
		Success: true,
		Message: "Hemos recibido tu información de pago. Se procesará en las próximas 24hs hábiles.",
	}, nil
}

func (m *MockBackend) News(ctx context.Context) ([]domain.NewsItem, error) {
	if err := m.wait(ctx, newsDelay); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db.Clone().News, nil
}
