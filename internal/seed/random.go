// internal/seed/random.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/service"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

var ErrEmptyCatalog = errors.New("catalog is empty: run fixtures first")

var expenseTypes = []string{"Alimentos", "Medicamento", "Eletrônico", "Transporte", "Lazer", "Vestuário"}

// Random создаёт n случайных покупок поверх уже существующих справочников.
// И расходы, и оплаты в сумме дают totalValue.
func Random(ctx context.Context, svc service.Services, faker *gofakeit.Faker, n int) ([]domain.Purchase, error) {
	users, err := svc.Users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	categories, err := svc.Categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	methods, err := svc.PaymentMethods.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	locations, err := svc.Locations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	if len(users) == 0 || len(categories) == 0 || len(methods) == 0 || len(locations) == 0 {
		return nil, ErrEmptyCatalog
	}

	created := make([]domain.Purchase, 0, n)
	for i := 0; i < n; i++ {
		in := randomPurchase(faker, users, categories, methods, locations)
		p, err := svc.Purchases.Create(ctx, in)
		if err != nil {
			return created, fmt.Errorf("create random purchase %d: %w", i+1, err)
		}
		created = append(created, *p)
	}
	return created, nil
}

func randomPurchase(
	faker *gofakeit.Faker,
	users []domain.User,
	categories []domain.Category,
	methods []domain.PaymentMethod,
	locations []domain.PurchaseLocation,
) domain.PurchaseCreate {
	user := users[faker.IntRange(0, len(users)-1)]
	date := faker.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).UTC().Truncate(time.Minute)

	// Суммы считаем в центах, чтобы части сходились до копейки
	expenseCents := splitCents(faker, int64(faker.IntRange(100, 500000)), faker.IntRange(1, 4))
	var total int64
	expenses := make([]domain.ExpenseInput, len(expenseCents))
	for i, cents := range expenseCents {
		total += cents
		expenses[i] = domain.ExpenseInput{
			Value:       decimal.New(cents, -2),
			ExpenseDate: date.Add(time.Duration(i) * time.Minute),
			Description: ptr(faker.Sentence(3)),
			ExpenseType: faker.RandomString(expenseTypes),
			CategoryID:  categories[faker.IntRange(0, len(categories)-1)].ID,
			UserID:      user.ID,
		}
	}

	paidCents := splitCents(faker, total, faker.IntRange(1, min(2, len(methods))))
	allocations := make([]domain.PaymentAllocationInput, len(paidCents))
	for i, cents := range paidCents {
		allocations[i] = domain.PaymentAllocationInput{
			PaidValue:       decimal.New(cents, -2),
			PaymentMethodID: methods[faker.IntRange(0, len(methods)-1)].ID,
		}
	}

	return domain.PurchaseCreate{
		PurchaseDate:           date,
		TotalValue:             decimal.New(total, -2),
		Description:            ptr(faker.Sentence(4)),
		UserID:                 user.ID,
		PurchaseLocationID:     locations[faker.IntRange(0, len(locations)-1)].ID,
		Expenses:               expenses,
		PurchasePaymentMethods: allocations,
	}
}

// splitCents делит total на parts положительных частей.
func splitCents(faker *gofakeit.Faker, total int64, parts int) []int64 {
	if parts < 1 {
		parts = 1
	}
	if int64(parts) > total {
		parts = int(total)
	}
	out := make([]int64, parts)
	rest := total
	for i := 0; i < parts-1; i++ {
		// оставляем хотя бы по центу на каждую следующую часть
		maxPart := rest - int64(parts-1-i)
		out[i] = int64(faker.IntRange(1, int(maxPart)))
		rest -= out[i]
	}
	out[parts-1] = rest
	return out
}
