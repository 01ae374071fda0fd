// Package persistence is the server-side store for the portal dataset, a
// SQLite database managed through gorm and seeded from the shared demo
// snapshot.
package persistence

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "fibra/internal/domain/portal"
	"fibra/internal/shared/errors"
)

type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and migrates the
// schema. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewStore(db)
}

// NewStore wraps an existing gorm handle and migrates the schema.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Account{}, &PlanRecord{}, &InvoiceRecord{}, &ClaimRecord{}, &NewsRecord{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Seed loads the snapshot into an empty database. Already-seeded databases
// are left alone.
func (s *Store) Seed(snapshot *domain.Snapshot, bcryptCost int) error {
	var count int64
	if err := s.db.Model(&Account{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(domain.DemoPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		account := Account{
			ID:           snapshot.User.ID,
			ClientNumber: domain.DemoClientNumber,
			Name:         snapshot.User.Name,
			Email:        snapshot.User.Email,
			PlanID:       snapshot.User.PlanID,
			PasswordHash: string(hash),
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		for i, p := range snapshot.Plans {
			record := PlanRecord{ID: p.ID, Name: p.Name, Speed: p.Speed, Price: p.Price, Features: p.Features, Position: i}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		for i, inv := range snapshot.Invoices {
			record := InvoiceRecord{ID: inv.ID, Period: inv.Period, DueDate: inv.DueDate, Amount: inv.Amount, Status: string(inv.Status), DownloadURL: inv.DownloadURL, Position: i}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		// Claims list newest first; stagger created_at so the seeded order
		// survives the sort.
		now := time.Now()
		for i, c := range snapshot.Claims {
			record := ClaimRecord{ID: c.ID, Date: c.Date, Type: c.Type, Description: c.Description, Status: string(c.Status), CreatedAt: now.Add(-time.Duration(i) * time.Minute)}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		for _, n := range snapshot.News {
			record := NewsRecord{ID: n.ID, Date: n.Date, Title: n.Title, Content: n.Content}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AccountByClientNumber fetches the account a customer logs in with.
func (s *Store) AccountByClientNumber(ctx context.Context, clientNumber string) (*Account, error) {
	var account Account
	err := s.db.WithContext(ctx).Where("client_number = ?", clientNumber).First(&account).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("cliente no encontrado")
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

// AccountByID fetches an account by entity id.
func (s *Store) AccountByID(ctx context.Context, id string) (*Account, error) {
	var account Account
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("cliente no encontrado")
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

// VerifyPassword checks a login attempt against the stored hash.
func (s *Store) VerifyPassword(account *Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}

// Plans returns the catalog in seeded order.
func (s *Store) Plans(ctx context.Context) ([]domain.Plan, error) {
	var records []PlanRecord
	if err := s.db.WithContext(ctx).Order("position asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	plans := make([]domain.Plan, len(records))
	for i := range records {
		plans[i] = records[i].ToEntity()
	}
	return plans, nil
}

// PlanByID fetches one catalog entry.
func (s *Store) PlanByID(ctx context.Context, id int) (*domain.Plan, error) {
	var record PlanRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("plan no encontrado")
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}
	plan := record.ToEntity()
	return &plan, nil
}

// UpdateAccountPlan points the account at another catalog entry.
func (s *Store) UpdateAccountPlan(ctx context.Context, accountID string, planID int) error {
	result := s.db.WithContext(ctx).Model(&Account{}).Where("id = ?", accountID).Update("plan_id", planID)
	if result.Error != nil {
		return fmt.Errorf("update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("cliente no encontrado")
	}
	return nil
}

// Invoices returns all invoices in seeded order.
func (s *Store) Invoices(ctx context.Context) ([]domain.Invoice, error) {
	var records []InvoiceRecord
	if err := s.db.WithContext(ctx).Order("position asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	invoices := make([]domain.Invoice, len(records))
	for i := range records {
		invoices[i] = records[i].ToEntity()
	}
	return invoices, nil
}

// Claims returns all claims, newest first.
func (s *Store) Claims(ctx context.Context) ([]domain.Claim, error) {
	var records []ClaimRecord
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	claims := make([]domain.Claim, len(records))
	for i := range records {
		claims[i] = records[i].ToEntity()
	}
	return claims, nil
}

// CreateClaim stores a freshly created claim.
func (s *Store) CreateClaim(ctx context.Context, claim domain.Claim) error {
	record := ClaimRecord{
		ID:          claim.ID,
		Date:        claim.Date,
		Type:        claim.Type,
		Description: claim.Description,
		Status:      string(claim.Status),
		CreatedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("create claim: %w", err)
	}
	return nil
}

// News returns the feed, newest first.
func (s *Store) News(ctx context.Context) ([]domain.NewsItem, error) {
	var records []NewsRecord
	if err := s.db.WithContext(ctx).Order("date desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	news := make([]domain.NewsItem, len(records))
	for i := range records {
		news[i] = records[i].ToEntity()
	}
	return news, nil
}
