package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"cashflow-api/internal/models"
	"cashflow-api/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Per-category spending bands, in whole currency units. Credits use
// the salary band regardless of category.
var categoryAmountBands = map[string][2]float64{
	models.CategoryUtilities:      {30, 250},
	models.CategoryPersonal:       {10, 180},
	models.CategoryConsumption:    {5, 120},
	models.CategoryTransportation: {3, 90},
	models.CategoryEducation:      {20, 400},
}

var salaryBand = [2]float64{1500, 4500}

// seedService generates plausible ledger data for development
// environments. Roughly one entry in five is a credit.
type seedService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	rng             *rand.Rand
	faker           *gofakeit.Faker
}

// NewSeedService creates a new seed service
func NewSeedService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SeedServiceInterface {
	seed := time.Now().UnixNano()
	return &seedService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
		rng:             rand.New(rand.NewSource(seed)),
		faker:           gofakeit.New(uint64(seed)),
	}
}

// SeedTransactions generates and stores perMonth entries for each of
// the last months calendar months, newest month last.
func (s *seedService) SeedTransactions(userID uuid.UUID, months int, perMonth int) ([]*models.Transaction, error) {
	if months <= 0 {
		months = DefaultMonthlyBars
	}
	if perMonth <= 0 {
		perMonth = 20
	}

	now := time.Now()
	created := make([]*models.Transaction, 0, months*perMonth)

	for m := months - 1; m >= 0; m-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -m, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
		if monthEnd.After(now) {
			monthEnd = now
		}

		for i := 0; i < perMonth; i++ {
			kind := models.TransactionKindDebit
			if s.rng.Intn(5) == 0 {
				kind = models.TransactionKindCredit
			}

			categories := models.AllCategories()
			category := categories[s.rng.Intn(len(categories))]

			tx := &models.Transaction{
				UserID:      userID,
				Date:        s.GenerateDate(monthStart, monthEnd),
				Kind:        kind,
				Amount:      s.GenerateAmount(kind, category),
				Category:    category,
				Description: s.generateDescription(kind),
			}

			if err := s.transactionRepo.Create(tx); err != nil {
				return created, fmt.Errorf("failed to seed transaction: %w", err)
			}

			s.metrics.IncrementCounter("transactions_seeded", nil)
			created = append(created, tx)
		}
	}

	s.logger.Info("ledger seeded",
		"user_id", userID,
		"months", months,
		"transactions", len(created))

	return created, nil
}

// GenerateAmount produces a two-decimal amount inside the category's
// spending band, or the salary band for credits.
func (s *seedService) GenerateAmount(kind, category string) decimal.Decimal {
	band, ok := categoryAmountBands[category]
	if kind == models.TransactionKindCredit || !ok {
		band = salaryBand
	}

	value := band[0] + s.rng.Float64()*(band[1]-band[0])
	return decimal.NewFromFloat(value).Round(2)
}

// GenerateDate picks a uniformly random instant in [start, end].
func (s *seedService) GenerateDate(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(s.rng.Int63n(int64(span))))
}

func (s *seedService) generateDescription(kind string) string {
	if kind == models.TransactionKindCredit {
		return fmt.Sprintf("Payment from %s", s.faker.Company())
	}
	return s.faker.ProductName()
}
