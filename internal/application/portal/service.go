package portal

import (
	"context"
	"log/slog"

	domain "fibra/internal/domain/portal"
	sharedConfig "fibra/internal/shared/config"
	"fibra/internal/shared/logger"
)

// Service is the Domain API facade: the single method surface every consumer
// calls, hiding which backend variant serves it. Login stores the session
// token as a side effect; everything else passes results and errors through
// unchanged, with no retries and no local recovery.
type Service struct {
	backend Backend
	session *Session
	log     *slog.Logger
}

// NewService creates a facade over an explicit backend. A nil session gets a
// fresh memory-backed one.
func NewService(backend Backend, session *Session) *Service {
	if session == nil {
		session = NewSession(nil)
	}
	return &Service{
		backend: backend,
		session: session,
		log:     logger.WithComponent("portal"),
	}
}

// NewServiceFromConfig selects the backend variant once, per configuration:
// the seeded mock when api.use_mock is set, otherwise the REST backend
// against api.base_url.
func NewServiceFromConfig(cfg *sharedConfig.APIConfig, session *Session) *Service {
	if session == nil {
		session = NewSession(nil)
	}
	if cfg.UseMock {
		return NewService(NewMockBackend(), session)
	}
	transport := NewTransport(cfg.BaseURL, session, WithTimeout(cfg.Timeout()))
	return NewService(NewRESTBackend(transport), session)
}

// Session exposes the session store, mainly so callers can inspect auth state.
func (s *Service) Session() *Session {
	return s.session
}

// Login authenticates and stores the returned token for subsequent calls.
// On failure no token is stored.
func (s *Service) Login(ctx context.Context, clientID, password string) (*domain.User, error) {
	result, err := s.backend.Login(ctx, clientID, password)
	if err != nil {
		return nil, err
	}

	if result.Token != "" {
		s.session.SetToken(result.Token)
	}
	s.log.Info("session started", "client_id", clientID)
	return &result.User, nil
}

// Logout clears the session token. Never fails.
func (s *Service) Logout() {
	s.session.Clear()
	s.log.Info("session ended")
}

// Plans returns the full plan catalog, order preserved.
func (s *Service) Plans(ctx context.Context) ([]domain.Plan, error) {
	return s.backend.Plans(ctx)
}

// CurrentPlan returns the plan the user is subscribed to. A dangling plan
// reference resolves to the first catalog entry rather than an error.
func (s *Service) CurrentPlan(ctx context.Context) (*domain.Plan, error) {
	return s.backend.CurrentPlan(ctx)
}

// ChangePlan requests a plan change. The new plan is not guaranteed to show
// in CurrentPlan until the caller refetches.
func (s *Service) ChangePlan(ctx context.Context, newPlanID int) (*OperationResult, error) {
	return s.backend.ChangePlan(ctx, newPlanID)
}

// Invoices returns all invoices, each carrying its own status.
func (s *Service) Invoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.backend.Invoices(ctx)
}

// Claims returns all claims, most recent first.
func (s *Service) Claims(ctx context.Context) ([]domain.Claim, error) {
	return s.backend.Claims(ctx)
}

// CreateClaim submits a new claim. The backend assigns id, date, and the
// initial open status. A non-empty description is the caller's contract.
func (s *Service) CreateClaim(ctx context.Context, input CreateClaimInput) (*domain.Claim, error) {
	return s.backend.CreateClaim(ctx, input)
}

// ReportPayment submits an out-of-band payment report. A positive amount and
// valid date are the caller's contract.
func (s *Service) ReportPayment(ctx context.Context, report PaymentReport) (*OperationResult, error) {
	return s.backend.ReportPayment(ctx, report)
}

// News returns the news feed, pre-sorted by the data source.
func (s *Service) News(ctx context.Context) ([]domain.NewsItem, error) {
	return s.backend.News(ctx)
}
