// Package portal implements the client side of the customer portal: one
// Domain API facade over two interchangeable backends, a REST one speaking to
// the remote portal service and a mock one serving seeded in-memory data.
package portal

import (
	"context"

	domain "fibra/internal/domain/portal"
)

// LoginResult is what a successful login returns: the authenticated user and
// the bearer token for the session.
type LoginResult struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// OperationResult is the acknowledgment shape of write operations that do not
// return an entity.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateClaimInput carries the caller-provided fields of a new claim. Id,
// date, and initial status are assigned by the backend.
type CreateClaimInput struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Attachment is an optional file attached to a payment report. It is never
// part of the JSON payload; the REST path drops it before serialization.
type Attachment struct {
	Filename string
	Content  []byte
}

// PaymentReport is the input of ReportPayment. Amount must be positive and
// Date a valid YYYY-MM-DD date; both are enforced by the caller.
type PaymentReport struct {
	Amount float64     `json:"amount"`
	Date   string      `json:"date"`
	File   *Attachment `json:"-"`
}

// Backend is the strategy behind the facade. Exactly one implementation is
// selected at startup; every operation keeps the same contract in both,
// differing only in latency and the failure kinds reachable.
type Backend interface {
	Login(ctx context.Context, clientID, password string) (*LoginResult, error)
	Plans(ctx context.Context) ([]domain.Plan, error)
	CurrentPlan(ctx context.Context) (*domain.Plan, error)
	ChangePlan(ctx context.Context, newPlanID int) (*OperationResult, error)
	Invoices(ctx context.Context) ([]domain.Invoice, error)
	Claims(ctx context.Context) ([]domain.Claim, error)
	CreateClaim(ctx context.Context, input CreateClaimInput) (*domain.Claim, error)
	ReportPayment(ctx context.Context, report PaymentReport) (*OperationResult, error)
	News(ctx context.Context) ([]domain.NewsItem, error)
}
