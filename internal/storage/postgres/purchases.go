// internal/storage/postgres/purchases.go
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"purchase-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const purchaseSelect = `
	SELECT
		p.id, p.purchase_date, p.total_value, p.description,
		p.user_id, p.purchase_location_id, p.created_at, p.updated_at,
		u.id, u.name, u.email, u.password, u.created_at, u.updated_at,
		l.id, l.location_name, l.location_type, l.address, l.created_at, l.updated_at
	FROM purchases p
	JOIN users u ON u.id = p.user_id
	JOIN purchase_locations l ON l.id = p.purchase_location_id
`

// === PurchaseStorage ===

func (s *Storage) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	purchases, err := loadPurchases(ctx, s.db, "ORDER BY p.id", nil, false)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}

func (s *Storage) FindPurchase(ctx context.Context, id int) (*domain.Purchase, error) {
	purchases, err := loadPurchases(ctx, s.db, "WHERE p.id = $1", []any{id}, true)
	if err != nil {
		return nil, fmt.Errorf("find purchase: %w", err)
	}
	if len(purchases) == 0 {
		return nil, nil
	}
	return &purchases[0], nil
}

// CreatePurchase: шапка, расходы и оплаты: всё или ничего.
func (s *Storage) CreatePurchase(ctx context.Context, in domain.PurchaseCreate) (*domain.Purchase, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var purchaseID int
	err = tx.QueryRow(ctx, `
		INSERT INTO purchases (purchase_date, total_value, description, user_id, purchase_location_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, in.PurchaseDate, in.TotalValue, in.Description, in.UserID, in.PurchaseLocationID).Scan(&purchaseID)
	if err != nil {
		return nil, wrapErr("insert purchase", err)
	}

	if err := insertExpenses(ctx, tx, purchaseID, in.Expenses); err != nil {
		return nil, err
	}
	if err := insertAllocations(ctx, tx, purchaseID, in.PurchasePaymentMethods); err != nil {
		return nil, err
	}

	purchases, err := loadPurchases(ctx, tx, "WHERE p.id = $1", []any{purchaseID}, false)
	if err != nil {
		return nil, fmt.Errorf("reload purchase: %w", err)
	}
	if len(purchases) == 0 {
		return nil, fmt.Errorf("reload purchase %d: created row is missing", purchaseID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	slog.Debug("CreatePurchase completed", "purchase_id", purchaseID,
		"expenses", len(in.Expenses), "payment_methods", len(in.PurchasePaymentMethods))
	return &purchases[0], nil
}

// UpdatePurchase меняет переданные поля шапки и, если список передан,
// полностью заменяет расходы и/или оплаты (удалить всё, вставить заново).
func (s *Storage) UpdatePurchase(ctx context.Context, id int, in domain.PurchaseUpdate) (*domain.Purchase, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var purchaseID int
	err = tx.QueryRow(ctx, `
		UPDATE purchases SET
			purchase_date = COALESCE($2, purchase_date),
			total_value = COALESCE($3, total_value),
			description = COALESCE($4, description),
			user_id = COALESCE($5, user_id),
			purchase_location_id = COALESCE($6, purchase_location_id),
			updated_at = now()
		WHERE id = $1
		RETURNING id
	`, id, in.PurchaseDate, in.TotalValue, in.Description, in.UserID, in.PurchaseLocationID).Scan(&purchaseID)
	if err != nil {
		if noRows(err) {
			return nil, fmt.Errorf("update purchase %d: %w", id, domain.ErrNotFound)
		}
		return nil, wrapErr("update purchase", err)
	}

	if in.ReplaceExpenses {
		if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE purchase_id = $1`, id); err != nil {
			return nil, fmt.Errorf("clear old expenses: %w", err)
		}
		if err := insertExpenses(ctx, tx, id, in.Expenses); err != nil {
			return nil, err
		}
	}

	if in.ReplacePaymentMethods {
		if _, err := tx.Exec(ctx, `DELETE FROM purchase_payment_methods WHERE purchase_id = $1`, id); err != nil {
			return nil, fmt.Errorf("clear old payment methods: %w", err)
		}
		if err := insertAllocations(ctx, tx, id, in.PurchasePaymentMethods); err != nil {
			return nil, err
		}
	}

	purchases, err := loadPurchases(ctx, tx, "WHERE p.id = $1", []any{id}, false)
	if err != nil {
		return nil, fmt.Errorf("reload purchase: %w", err)
	}
	if len(purchases) == 0 {
		return nil, fmt.Errorf("reload purchase %d: %w", id, domain.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	slog.Debug("UpdatePurchase completed", "purchase_id", id,
		"replace_expenses", in.ReplaceExpenses, "replace_payment_methods", in.ReplacePaymentMethods)
	return &purchases[0], nil
}

// DeletePurchase: сначала дочерние строки, потом шапка. false, если покупки не было.
func (s *Storage) DeletePurchase(ctx context.Context, id int) (bool, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE purchase_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete expenses: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM purchase_payment_methods WHERE purchase_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete payment methods: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return false, wrapDeleteErr("delete purchase", err)
	}
	if result.RowsAffected() == 0 {
		slog.Warn("DeletePurchase: purchase not found", "purchase_id", id)
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit tx: %w", err)
	}
	return true, nil
}

// insertExpenses вставляет расходы одной пачкой (pgx.Batch, один round trip).
func insertExpenses(ctx context.Context, tx pgx.Tx, purchaseID int, expenses []domain.ExpenseInput) error {
	if len(expenses) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range expenses {
		batch.Queue(`
			INSERT INTO expenses (value, expense_date, description, expense_type, purchase_id, category_id, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, e.Value, e.ExpenseDate, e.Description, e.ExpenseType, purchaseID, e.CategoryID, e.UserID)
	}

	br := tx.SendBatch(ctx, batch)
	for range expenses {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return wrapErr("insert expense", err)
		}
	}
	if err := br.Close(); err != nil {
		return wrapErr("insert expenses", err)
	}
	return nil
}

func insertAllocations(ctx context.Context, tx pgx.Tx, purchaseID int, allocations []domain.PaymentAllocationInput) error {
	if len(allocations) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, a := range allocations {
		batch.Queue(`
			INSERT INTO purchase_payment_methods (paid_value, purchase_id, payment_method_id)
			VALUES ($1, $2, $3)
		`, a.PaidValue, purchaseID, a.PaymentMethodID)
	}

	br := tx.SendBatch(ctx, batch)
	for range allocations {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return wrapErr("insert purchase payment method", err)
		}
	}
	if err := br.Close(); err != nil {
		return wrapErr("insert purchase payment methods", err)
	}
	return nil
}

// loadPurchases читает шапки (с пользователем и местом покупки),
// затем двумя запросами подтягивает расходы и оплаты для всех найденных покупок.
func loadPurchases(ctx context.Context, q querier, tail string, args []any, nestPaymentMethods bool) ([]domain.Purchase, error) {
	rows, err := q.Query(ctx, purchaseSelect+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		var p domain.Purchase
		var u domain.User
		var l domain.PurchaseLocation
		err := rows.Scan(
			&p.ID, &p.PurchaseDate, &p.TotalValue, &p.Description,
			&p.UserID, &p.PurchaseLocationID, &p.CreatedAt, &p.UpdatedAt,
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
			&l.ID, &l.LocationName, &l.LocationType, &l.Address, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.User = &u
		p.PurchaseLocation = &l
		p.Expenses = []domain.Expense{}
		p.PurchasePaymentMethods = []domain.PurchasePaymentMethod{}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	if len(purchases) == 0 {
		return purchases, nil
	}

	ids := make([]int, len(purchases))
	index := make(map[int]int, len(purchases))
	for i, p := range purchases {
		ids[i] = p.ID
		index[p.ID] = i
	}

	if err := attachExpenses(ctx, q, ids, index, purchases); err != nil {
		return nil, err
	}
	if err := attachAllocations(ctx, q, ids, index, purchases, nestPaymentMethods); err != nil {
		return nil, err
	}
	return purchases, nil
}

func attachExpenses(ctx context.Context, q querier, ids []int, index map[int]int, purchases []domain.Purchase) error {
	rows, err := q.Query(ctx, `
		SELECT id, value, expense_date, description, expense_type, purchase_id, category_id, user_id
		FROM expenses
		WHERE purchase_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Value, &e.ExpenseDate, &e.Description, &e.ExpenseType,
			&e.PurchaseID, &e.CategoryID, &e.UserID); err != nil {
			return fmt.Errorf("scan expense: %w", err)
		}
		i := index[e.PurchaseID]
		purchases[i].Expenses = append(purchases[i].Expenses, e)
	}
	return rows.Err()
}

func attachAllocations(ctx context.Context, q querier, ids []int, index map[int]int, purchases []domain.Purchase, nest bool) error {
	rows, err := q.Query(ctx, `
		SELECT
			ppm.id, ppm.paid_value, ppm.purchase_id, ppm.payment_method_id,
			pm.payment_method_name, pm.payment_method_type, pm.created_at, pm.updated_at
		FROM purchase_payment_methods ppm
		JOIN payment_methods pm ON pm.id = ppm.payment_method_id
		WHERE ppm.purchase_id = ANY($1)
		ORDER BY ppm.id
	`, ids)
	if err != nil {
		return fmt.Errorf("query purchase payment methods: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.PurchasePaymentMethod
		var pm domain.PaymentMethod
		if err := rows.Scan(&a.ID, &a.PaidValue, &a.PurchaseID, &a.PaymentMethodID,
			&pm.PaymentMethodName, &pm.PaymentMethodType, &pm.CreatedAt, &pm.UpdatedAt); err != nil {
			return fmt.Errorf("scan purchase payment method: %w", err)
		}
		if nest {
			pm.ID = a.PaymentMethodID
			a.PaymentMethod = &pm
		}
		i := index[a.PurchaseID]
		purchases[i].PurchasePaymentMethods = append(purchases[i].PurchasePaymentMethods, a)
	}
	return rows.Err()
}
