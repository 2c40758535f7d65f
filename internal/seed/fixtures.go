// internal/seed/fixtures.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/service"
	"time"

	"github.com/shopspring/decimal"
)

// Fixtures заливает демонстрационный набор данных. Повторный запуск ничего не дублирует:
// уникальные строки переиспользуются, покупки с тем же описанием и пользователем пропускаются.
func Fixtures(ctx context.Context, svc service.Services) error {
	joao, err := ensureUser(ctx, svc.Users, "João Silva", "joao.silva@example.com", "SenhaSegura123")
	if err != nil {
		return err
	}
	maria, err := ensureUser(ctx, svc.Users, "Maria Souza", "maria.souza@example.com", "MariaSouza456")
	if err != nil {
		return err
	}

	credit, err := ensurePaymentMethod(ctx, svc.PaymentMethods, "Cartão de Crédito", "Crédito")
	if err != nil {
		return err
	}
	debit, err := ensurePaymentMethod(ctx, svc.PaymentMethods, "Débito", "Débito")
	if err != nil {
		return err
	}
	cash, err := ensurePaymentMethod(ctx, svc.PaymentMethods, "Dinheiro", "Dinheiro")
	if err != nil {
		return err
	}
	if _, err := ensurePaymentMethod(ctx, svc.PaymentMethods, "Pix", "Transferência"); err != nil {
		return err
	}

	market, err := ensureLocation(ctx, svc.Locations, "Supermercado Bom Preço", "Supermercado", "Rua das Flores, 123, Centro")
	if err != nil {
		return err
	}
	pharmacy, err := ensureLocation(ctx, svc.Locations, "Farmácia Sempre Viva", "Farmácia", "Avenida Principal, 456, Bairro Novo")
	if err != nil {
		return err
	}
	electronics, err := ensureLocation(ctx, svc.Locations, "Loja de Eletrônicos Tech Tudo", "Loja", "Shopping Center, Loja 10, Vila Rica")
	if err != nil {
		return err
	}

	food, err := ensureCategory(ctx, svc.Categories, "Alimentação", "Gastos com comida e bebidas.")
	if err != nil {
		return err
	}
	health, err := ensureCategory(ctx, svc.Categories, "Saúde", "Gastos com medicamentos, consultas e exames.")
	if err != nil {
		return err
	}
	if _, err := ensureCategory(ctx, svc.Categories, "Transporte", "Gastos com combustível, passagens e manutenção de veículo."); err != nil {
		return err
	}
	education, err := ensureCategory(ctx, svc.Categories, "Educação", "Gastos com mensalidades, livros e cursos.")
	if err != nil {
		return err
	}

	purchases := []domain.PurchaseCreate{
		{
			PurchaseDate:       at("2025-06-01T10:00:00Z"),
			TotalValue:         money("150.75"),
			Description:        ptr("Compras de supermercado para o mês."),
			UserID:             joao.ID,
			PurchaseLocationID: market.ID,
			Expenses: []domain.ExpenseInput{
				{Value: money("50.25"), ExpenseDate: at("2025-06-01T10:15:00Z"), Description: ptr("Arroz e feijão."), ExpenseType: "Alimentos", CategoryID: food.ID, UserID: joao.ID},
				{Value: money("25.00"), ExpenseDate: at("2025-06-01T10:30:00Z"), Description: ptr("Frutas e verduras."), ExpenseType: "Alimentos", CategoryID: food.ID, UserID: joao.ID},
			},
			PurchasePaymentMethods: []domain.PaymentAllocationInput{
				{PaidValue: money("150.75"), PaymentMethodID: credit.ID},
			},
		},
		{
			PurchaseDate:       at("2025-06-05T15:30:00Z"),
			TotalValue:         money("75.00"),
			Description:        ptr("Compra de medicamentos na farmácia."),
			UserID:             maria.ID,
			PurchaseLocationID: pharmacy.ID,
			Expenses: []domain.ExpenseInput{
				{Value: money("75.00"), ExpenseDate: at("2025-06-05T15:45:00Z"), Description: ptr("Remédio para dor de cabeça."), ExpenseType: "Medicamento", CategoryID: health.ID, UserID: maria.ID},
			},
			PurchasePaymentMethods: []domain.PaymentAllocationInput{
				{PaidValue: money("75.00"), PaymentMethodID: cash.ID},
			},
		},
		{
			PurchaseDate:       at("2025-06-10T11:00:00Z"),
			TotalValue:         money("1200.00"),
			Description:        ptr("Notebook novo para trabalho."),
			UserID:             joao.ID,
			PurchaseLocationID: electronics.ID,
			Expenses: []domain.ExpenseInput{
				{Value: money("1200.00"), ExpenseDate: at("2025-06-10T11:15:00Z"), Description: ptr("Notebook Dell Inspiron."), ExpenseType: "Eletrônico", CategoryID: education.ID, UserID: joao.ID},
			},
			PurchasePaymentMethods: []domain.PaymentAllocationInput{
				{PaidValue: money("1200.00"), PaymentMethodID: debit.ID},
			},
		},
	}

	existing, err := svc.Purchases.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list purchases: %w", err)
	}
	for _, in := range purchases {
		if hasPurchase(existing, in) {
			continue
		}
		p, err := svc.Purchases.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("create purchase %q: %w", *in.Description, err)
		}
		slog.Info("Seeded purchase", "purchase_id", p.ID, "expenses", len(p.Expenses))
	}
	return nil
}

func ensureUser(ctx context.Context, users *service.UserService, name, email, password string) (*domain.User, error) {
	u, err := users.Create(ctx, service.NewUser{Name: name, Email: email, Password: password})
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, fmt.Errorf("seed user %s: %w", email, err)
	}
	u, err = users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, fmt.Errorf("seed user %s: existing row not readable: %v", email, err)
	}
	return u, nil
}

func ensurePaymentMethod(ctx context.Context, methods *service.PaymentMethodService, name, kind string) (*domain.PaymentMethod, error) {
	m, err := methods.Create(ctx, domain.PaymentMethodCreate{PaymentMethodName: name, PaymentMethodType: kind})
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, fmt.Errorf("seed payment method %s: %w", name, err)
	}
	all, err := methods.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed payment method %s: %w", name, err)
	}
	for i := range all {
		if all[i].PaymentMethodName == name {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("seed payment method %s: conflict but row not found", name)
}

func ensureCategory(ctx context.Context, categories *service.CategoryService, name, description string) (*domain.Category, error) {
	c, err := categories.Create(ctx, domain.CategoryCreate{CategoryName: name, Description: ptr(description)})
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, fmt.Errorf("seed category %s: %w", name, err)
	}
	all, err := categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed category %s: %w", name, err)
	}
	for i := range all {
		if all[i].CategoryName == name {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("seed category %s: conflict but row not found", name)
}

// У мест покупок нет уникального ключа, ищем по имени.
func ensureLocation(ctx context.Context, locations *service.PurchaseLocationService, name, kind, address string) (*domain.PurchaseLocation, error) {
	all, err := locations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed location %s: %w", name, err)
	}
	for i := range all {
		if all[i].LocationName == name {
			return &all[i], nil
		}
	}
	l, err := locations.Create(ctx, domain.PurchaseLocationCreate{LocationName: name, LocationType: kind, Address: ptr(address)})
	if err != nil {
		return nil, fmt.Errorf("seed location %s: %w", name, err)
	}
	return l, nil
}

func hasPurchase(existing []domain.Purchase, in domain.PurchaseCreate) bool {
	for _, p := range existing {
		if p.UserID == in.UserID && p.Description != nil && in.Description != nil && *p.Description == *in.Description {
			return true
		}
	}
	return false
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }
