package portal

import (
	"context"
	"fmt"

	domain "fibra/internal/domain/portal"
)

// RESTBackend maps every operation onto the remote portal service through the
// transport. Paths are relative to the transport's base URL.
type RESTBackend struct {
	transport *Transport
}

// NewRESTBackend creates a backend over the given transport.
func NewRESTBackend(t *Transport) *RESTBackend {
	return &RESTBackend{transport: t}
}

func (b *RESTBackend) Login(ctx context.Context, clientID, password string) (*LoginResult, error) {
	body := map[string]string{
		"clientId": clientID,
		"password": password,
	}

	var result LoginResult
	if err := b.transport.Post(ctx, "/login", body, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &result, nil
}

func (b *RESTBackend) Plans(ctx context.Context) ([]domain.Plan, error) {
	var plans []domain.Plan
	if err := b.transport.Get(ctx, "/plans", &plans); err != nil {
		return nil, fmt.Errorf("get plans: %w", err)
	}
	return plans, nil
}

func (b *RESTBackend) CurrentPlan(ctx context.Context) (*domain.Plan, error) {
	var plan domain.Plan
	if err := b.transport.Get(ctx, "/plans/current", &plan); err != nil {
		return nil, fmt.Errorf("get current plan: %w", err)
	}
	return &plan, nil
}

func (b *RESTBackend) ChangePlan(ctx context.Context, newPlanID int) (*OperationResult, error) {
	body := map[string]int{
		"newPlanId": newPlanID,
	}

	var result OperationResult
	if err := b.transport.Post(ctx, "/plans/change", body, &result); err != nil {
		return nil, fmt.Errorf("change plan: %w", err)
	}
	return &result, nil
}

func (b *RESTBackend) Invoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := b.transport.Get(ctx, "/invoices", &invoices); err != nil {
		return nil, fmt.Errorf("get invoices: %w", err)
	}
	return invoices, nil
}

func (b *RESTBackend) Claims(ctx context.Context) ([]domain.Claim, error) {
	var claims []domain.Claim
	if err := b.transport.Get(ctx, "/claims", &claims); err != nil {
		return nil, fmt.Errorf("get claims: %w", err)
	}
	return claims, nil
}

func (b *RESTBackend) CreateClaim(ctx context.Context, input CreateClaimInput) (*domain.Claim, error) {
	var claim domain.Claim
	if err := b.transport.Post(ctx, "/claims", input, &claim); err != nil {
		return nil, fmt.Errorf("create claim: %w", err)
	}
	return &claim, nil
}

// ReportPayment submits the payment data. The file attachment is dropped
// before serialization; multipart upload is explicitly unsupported here.
func (b *RESTBackend) ReportPayment(ctx context.Context, report PaymentReport) (*OperationResult, error) {
	body := map[string]any{
		"amount": report.Amount,
		"date":   report.Date,
	}

	var result OperationResult
	if err := b.transport.Post(ctx, "/payments/report", body, &result); err != nil {
		return nil, fmt.Errorf("report payment: %w", err)
	}
	return &result, nil
}

func (b *RESTBackend) News(ctx context.Context) ([]domain.NewsItem, error) {
	var news []domain.NewsItem
	if err := b.transport.Get(ctx, "/news", &news); err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	return news, nil
}

var _ Backend = (*RESTBackend)(nil)
var _ Backend = (*MockBackend)(nil)
