package persistence

import (
	"time"

	domain "fibra/internal/domain/portal"
)

// Account is the stored customer record. ClientNumber is the login
// identifier ("C00001"); the entity id stays separate.
type Account struct {
	ID           string `gorm:"primaryKey"`
	ClientNumber string `gorm:"uniqueIndex"`
	Name         string
	Email        string
	PlanID       int
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Account) TableName() string { return "accounts" }

func (a *Account) ToEntity() domain.User {
	return domain.User{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		PlanID: a.PlanID,
	}
}

// PlanRecord keeps catalog order in Position so listings preserve the seeded
// order.
type PlanRecord struct {
	ID       int `gorm:"primaryKey"`
	Name     string
	Speed    string
	Price    float64
	Features []string `gorm:"serializer:json"`
	Position int
}

func (PlanRecord) TableName() string { return "plans" }

func (p *PlanRecord) ToEntity() domain.Plan {
	return domain.Plan{
		ID:       p.ID,
		Name:     p.Name,
		Speed:    p.Speed,
		Price:    p.Price,
		Features: p.Features,
	}
}

type InvoiceRecord struct {
	ID          string `gorm:"primaryKey"`
	Period      string
	DueDate     string
	Amount      float64
	Status      string
	DownloadURL string
	Position    int
}

func (InvoiceRecord) TableName() string { return "invoices" }

func (i *InvoiceRecord) ToEntity() domain.Invoice {
	return domain.Invoice{
		ID:          i.ID,
		Period:      i.Period,
		DueDate:     i.DueDate,
		Amount:      i.Amount,
		Status:      domain.InvoiceStatus(i.Status),
		DownloadURL: i.DownloadURL,
	}
}

type ClaimRecord struct {
	ID          string `gorm:"primaryKey"`
	Date        string
	Type        string
	Description string
	Status      string
	CreatedAt   time.Time
}

func (ClaimRecord) TableName() string { return "claims" }

func (c *ClaimRecord) ToEntity() domain.Claim {
	return domain.Claim{
		ID:          c.ID,
		Date:        c.Date,
		Type:        c.Type,
		Description: c.Description,
		Status:      domain.ClaimStatus(c.Status),
	}
}

type NewsRecord struct {
	ID      string `gorm:"primaryKey"`
	Date    string
	Title   string
	Content string
}

func (NewsRecord) TableName() string { return "news_items" }

func (n *NewsRecord) ToEntity() domain.NewsItem {
	return domain.NewsItem{
		ID:      n.ID,
		Date:    n.Date,
		Title:   n.Title,
		Content: n.Content,
	}
}
