package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"purchase-tracker/internal/domain"
	"purchase-tracker/migrations"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Интеграционные тесты запускаются только при заданном DB_DSN_TEST.
func setupStorage(t *testing.T) (*Storage, *pgxpool.Pool) {
	t.Helper()
	dsn := os.Getenv("DB_DSN_TEST")
	if dsn == "" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST to a PostgreSQL DSN to enable")
	}

	if err := migrations.Up(dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	pool, err := Connect(ctx, dsn, 1)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE expenses, purchase_payment_methods, purchases,
		purchase_locations, payment_methods, categories, users RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewStorage(pool), pool
}

type catalog struct {
	user     *domain.User
	category *domain.Category
	method   *domain.PaymentMethod
	location *domain.PurchaseLocation
}

func seedCatalog(t *testing.T, s *Storage) catalog {
	t.Helper()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, domain.UserCreate{Name: "João Silva", Email: "joao.silva@example.com", PasswordHash: "$2a$04$hash"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	category, err := s.CreateCategory(ctx, domain.CategoryCreate{CategoryName: "Alimentação"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	method, err := s.CreatePaymentMethod(ctx, domain.PaymentMethodCreate{PaymentMethodName: "Pix", PaymentMethodType: "Transferência"})
	if err != nil {
		t.Fatalf("create payment method: %v", err)
	}
	location, err := s.CreatePurchaseLocation(ctx, domain.PurchaseLocationCreate{LocationName: "Supermercado Bom Preço", LocationType: "Supermercado"})
	if err != nil {
		t.Fatalf("create location: %v", err)
	}
	return catalog{user, category, method, location}
}

func purchaseInput(c catalog) domain.PurchaseCreate {
	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return domain.PurchaseCreate{
		PurchaseDate:       day,
		TotalValue:         decimal.RequireFromString("150.75"),
		UserID:             c.user.ID,
		PurchaseLocationID: c.location.ID,
		Expenses: []domain.ExpenseInput{
			{Value: decimal.RequireFromString("50.25"), ExpenseDate: day, ExpenseType: "Alimentos", CategoryID: c.category.ID, UserID: c.user.ID},
			{Value: decimal.RequireFromString("25.00"), ExpenseDate: day, ExpenseType: "Alimentos", CategoryID: c.category.ID, UserID: c.user.ID},
		},
		PurchasePaymentMethods: []domain.PaymentAllocationInput{
			{PaidValue: decimal.RequireFromString("150.75"), PaymentMethodID: c.method.ID},
		},
	}
}

func countChildren(t *testing.T, pool *pgxpool.Pool, purchaseID int) (expenses, allocations int) {
	t.Helper()
	ctx := context.Background()
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM expenses WHERE purchase_id = $1`, purchaseID).Scan(&expenses); err != nil {
		t.Fatal(err)
	}
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM purchase_payment_methods WHERE purchase_id = $1`, purchaseID).Scan(&allocations); err != nil {
		t.Fatal(err)
	}
	return expenses, allocations
}

func TestPurchaseRoundTrip(t *testing.T) {
	s, _ := setupStorage(t)
	c := seedCatalog(t, s)
	ctx := context.Background()

	created, err := s.CreatePurchase(ctx, purchaseInput(c))
	if err != nil {
		t.Fatalf("CreatePurchase: %v", err)
	}
	if len(created.Expenses) != 2 || len(created.PurchasePaymentMethods) != 1 {
		t.Fatalf("children = %d/%d", len(created.Expenses), len(created.PurchasePaymentMethods))
	}
	for _, e := range created.Expenses {
		if e.PurchaseID != created.ID {
			t.Errorf("expense purchase_id = %d, want %d", e.PurchaseID, created.ID)
		}
	}

	got, err := s.FindPurchase(ctx, created.ID)
	if err != nil || got == nil {
		t.Fatalf("FindPurchase = %v, %v", got, err)
	}
	if !got.TotalValue.Equal(decimal.RequireFromString("150.75")) {
		t.Errorf("totalValue = %s", got.TotalValue)
	}
	if !got.Expenses[0].Value.Equal(decimal.RequireFromString("50.25")) || !got.Expenses[1].Value.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expense values = %s, %s", got.Expenses[0].Value, got.Expenses[1].Value)
	}
	alloc := got.PurchasePaymentMethods[0]
	if alloc.PurchaseID != created.ID || alloc.PaymentMethod == nil || alloc.PaymentMethod.PaymentMethodName != "Pix" {
		t.Errorf("allocation = %+v", alloc)
	}
	if got.PurchaseLocation == nil || got.User == nil || got.User.Email != "joao.silva@example.com" {
		t.Errorf("relations not loaded: %+v", got)
	}

	list, err := s.ListPurchases(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListPurchases = %d, %v", len(list), err)
	}
	if list[0].PurchasePaymentMethods[0].PaymentMethod != nil {
		t.Error("list must not nest payment methods")
	}
}

func TestCreatePurchaseRollsBackOnBadChild(t *testing.T) {
	s, pool := setupStorage(t)
	c := seedCatalog(t, s)
	ctx := context.Background()

	in := purchaseInput(c)
	in.Expenses[1].CategoryID = 9999

	_, err := s.CreatePurchase(ctx, in)
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("err = %v, want ErrInvalidReference", err)
	}

	var n int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM purchases`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("purchases = %d, header must be rolled back", n)
	}
}

func TestUpdatePurchaseChildren(t *testing.T) {
	s, pool := setupStorage(t)
	c := seedCatalog(t, s)
	ctx := context.Background()

	p, err := s.CreatePurchase(ctx, purchaseInput(c))
	if err != nil {
		t.Fatal(err)
	}

	desc := "nova descrição"
	if _, err := s.UpdatePurchase(ctx, p.ID, domain.PurchaseUpdate{Description: &desc}); err != nil {
		t.Fatalf("header update: %v", err)
	}
	if e, a := countChildren(t, pool, p.ID); e != 2 || a != 1 {
		t.Errorf("without lists: children = %d/%d, want 2/1", e, a)
	}

	updated, err := s.UpdatePurchase(ctx, p.ID, domain.PurchaseUpdate{ReplaceExpenses: true})
	if err != nil {
		t.Fatalf("clear expenses: %v", err)
	}
	if len(updated.Expenses) != 0 || len(updated.PurchasePaymentMethods) != 1 {
		t.Errorf("after expenses: [] children = %d/%d", len(updated.Expenses), len(updated.PurchasePaymentMethods))
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Errorf("description = %v", updated.Description)
	}

	_, err = s.UpdatePurchase(ctx, 424242, domain.PurchaseUpdate{Description: &desc})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing purchase err = %v, want ErrNotFound", err)
	}
}

func TestDeletePurchaseRemovesChildren(t *testing.T) {
	s, pool := setupStorage(t)
	c := seedCatalog(t, s)
	ctx := context.Background()

	p, err := s.CreatePurchase(ctx, purchaseInput(c))
	if err != nil {
		t.Fatal(err)
	}

	deleted, err := s.DeletePurchase(ctx, p.ID)
	if err != nil || !deleted {
		t.Fatalf("DeletePurchase = %v, %v", deleted, err)
	}
	if e, a := countChildren(t, pool, p.ID); e != 0 || a != 0 {
		t.Errorf("orphans left: %d/%d", e, a)
	}

	deleted, err = s.DeletePurchase(ctx, p.ID)
	if err != nil || deleted {
		t.Errorf("second delete = %v, %v; want false, nil", deleted, err)
	}
}

func TestUniqueAndMissingRows(t *testing.T) {
	s, _ := setupStorage(t)
	c := seedCatalog(t, s)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.UserCreate{Name: "Outro", Email: c.user.Email, PasswordHash: "x"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate email err = %v, want ErrConflict", err)
	}
	if u, err := s.FindUser(ctx, c.user.ID); err != nil || u.Name != "João Silva" {
		t.Errorf("existing user changed: %+v, %v", u, err)
	}

	_, err = s.CreateCategory(ctx, domain.CategoryCreate{CategoryName: c.category.CategoryName})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate category err = %v", err)
	}
	_, err = s.CreatePaymentMethod(ctx, domain.PaymentMethodCreate{PaymentMethodName: "Pix", PaymentMethodType: "x"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate payment method err = %v", err)
	}

	for name, del := range map[string]func(context.Context, int) (bool, error){
		"user":           s.DeleteUser,
		"category":       s.DeleteCategory,
		"payment method": s.DeletePaymentMethod,
		"location":       s.DeletePurchaseLocation,
	} {
		ok, err := del(ctx, 424242)
		if ok || err != nil {
			t.Errorf("%s: delete missing = %v, %v", name, ok, err)
		}
	}

	if u, err := s.FindUser(ctx, 424242); u != nil || err != nil {
		t.Errorf("FindUser missing = %v, %v", u, err)
	}

	name := "x"
	if _, err := s.UpdatePurchaseLocation(ctx, 424242, domain.PurchaseLocationUpdate{LocationName: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update missing location err = %v", err)
	}
}

func TestDeleteReferencedCategory(t *testing.T) {
	s, _ := setupStorage(t)
	c := seedCatalog(t, s)
	ctx := context.Background()

	if _, err := s.CreatePurchase(ctx, purchaseInput(c)); err != nil {
		t.Fatal(err)
	}

	_, err := s.DeleteCategory(ctx, c.category.ID)
	if !errors.Is(err, domain.ErrInUse) {
		t.Errorf("err = %v, want ErrInUse", err)
	}
}

func TestManyPurchases(t *testing.T) {
	s, _ := setupStorage(t)
	c := seedCatalog(t, s)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		in := purchaseInput(c)
		in.Description = ptr(fmt.Sprintf("compra %d", i))
		if _, err := s.CreatePurchase(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.ListPurchases(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 5 {
		t.Fatalf("len = %d", len(list))
	}
	for _, p := range list {
		if len(p.Expenses) != 2 || len(p.PurchasePaymentMethods) != 1 {
			t.Errorf("purchase %d children = %d/%d", p.ID, len(p.Expenses), len(p.PurchasePaymentMethods))
		}
	}
}

func ptr[T any](v T) *T { return &v }
