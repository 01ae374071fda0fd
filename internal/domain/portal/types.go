// Package portal defines the customer portal entities: the logged-in user,
// the plan catalog, invoices, claims, and the news feed. All of them are
// value records exchanged wholesale; nothing here mutates in place.
package portal

// InvoiceStatus is the billing state of an invoice. Wire labels are the
// Spanish-language values the portal has always served.
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "Pagada"
	InvoiceStatusPending InvoiceStatus = "Pendiente"
)

func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusPending
}

// ClaimStatus is the lifecycle state of a support claim. Clients only ever
// create claims as open; later transitions happen on the server side.
type ClaimStatus string

const (
	ClaimStatusOpen       ClaimStatus = "Abierto"
	ClaimStatusInProgress ClaimStatus = "En Progreso"
	ClaimStatusClosed     ClaimStatus = "Cerrado"
)

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusOpen, ClaimStatusInProgress, ClaimStatusClosed:
		return true
	}
	return false
}

// User is the authenticated customer. PlanID references an entry in the plan
// catalog; there is exactly one logged-in user per session.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	PlanID int    `json:"planId"`
}

// Plan is one entry of the plan catalog.
type Plan struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Speed    string   `json:"speed"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
}

// Invoice is one billing period. Dates are YYYY-MM-DD strings on the wire.
type Invoice struct {
	ID          string        `json:"id"`
	Period      string        `json:"period"`
	DueDate     string        `json:"dueDate"`
	Amount      float64       `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	DownloadURL string        `json:"downloadUrl"`
}

// Claim is a customer support claim.
type Claim struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Status      ClaimStatus `json:"status"`
}

// NewsItem is one entry of the read-only news feed, newest first.
type NewsItem struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FindPendingInvoice returns the first invoice still pending, or nil. The
// dashboard surfaces this as "the" pending invoice; uniqueness is a data
// convention, not something this layer guarantees.
func FindPendingInvoice(invoices []Invoice) *Invoice {
	for i := range invoices {
		if invoices[i].Status == InvoiceStatusPending {
			return &invoices[i]
		}
	}
	return nil
}

// FindPlan returns the catalog entry with the given id, or nil.
func FindPlan(plans []Plan, id int) *Plan {
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i]
		}
	}
	return nil
}
