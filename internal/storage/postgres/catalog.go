// internal/storage/postgres/catalog.go
package postgres

import (
	"context"
	"fmt"
	"purchase-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

// === CategoryStorage ===

const categoryColumns = `id, category_name, description, created_at, updated_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.CategoryName, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY category_name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (s *Storage) FindCategory(ctx context.Context, id int) (*domain.Category, error) {
	c, err := scanCategory(s.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return c, nil
}

func (s *Storage) CreateCategory(ctx context.Context, in domain.CategoryCreate) (*domain.Category, error) {
	c, err := scanCategory(s.db.QueryRow(ctx, `
		INSERT INTO categories (category_name, description)
		VALUES ($1, $2)
		RETURNING `+categoryColumns, in.CategoryName, in.Description))
	if err != nil {
		return nil, wrapErr("create category", err)
	}
	return c, nil
}

func (s *Storage) UpdateCategory(ctx context.Context, id int, in domain.CategoryUpdate) (*domain.Category, error) {
	c, err := scanCategory(s.db.QueryRow(ctx, `
		UPDATE categories SET
			category_name = COALESCE($2, category_name),
			description = COALESCE($3, description),
			updated_at = now()
		WHERE id = $1
		RETURNING `+categoryColumns, id, in.CategoryName, in.Description))
	if err != nil {
		if noRows(err) {
			return nil, fmt.Errorf("update category %d: %w", id, domain.ErrNotFound)
		}
		return nil, wrapErr("update category", err)
	}
	return c, nil
}

func (s *Storage) DeleteCategory(ctx context.Context, id int) (bool, error) {
	result, err := s.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, wrapDeleteErr("delete category", err)
	}
	return result.RowsAffected() > 0, nil
}

// === PaymentMethodStorage ===

const paymentMethodColumns = `id, payment_method_name, payment_method_type, created_at, updated_at`

func scanPaymentMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	var pm domain.PaymentMethod
	if err := row.Scan(&pm.ID, &pm.PaymentMethodName, &pm.PaymentMethodType, &pm.CreatedAt, &pm.UpdatedAt); err != nil {
		return nil, err
	}
	return &pm, nil
}

func (s *Storage) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	rows, err := s.db.Query(ctx, `SELECT `+paymentMethodColumns+` FROM payment_methods ORDER BY payment_method_name`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	methods := []domain.PaymentMethod{}
	for rows.Next() {
		pm, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, *pm)
	}
	return methods, rows.Err()
}

func (s *Storage) FindPaymentMethod(ctx context.Context, id int) (*domain.PaymentMethod, error) {
	pm, err := scanPaymentMethod(s.db.QueryRow(ctx, `SELECT `+paymentMethodColumns+` FROM payment_methods WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	return pm, nil
}

func (s *Storage) CreatePaymentMethod(ctx context.Context, in domain.PaymentMethodCreate) (*domain.PaymentMethod, error) {
	pm, err := scanPaymentMethod(s.db.QueryRow(ctx, `
		INSERT INTO payment_methods (payment_method_name, payment_method_type)
		VALUES ($1, $2)
		RETURNING `+paymentMethodColumns, in.PaymentMethodName, in.PaymentMethodType))
	if err != nil {
		return nil, wrapErr("create payment method", err)
	}
	return pm, nil
}

func (s *Storage) UpdatePaymentMethod(ctx context.Context, id int, in domain.PaymentMethodUpdate) (*domain.PaymentMethod, error) {
	pm, err := scanPaymentMethod(s.db.QueryRow(ctx, `
		UPDATE payment_methods SET
			payment_method_name = COALESCE($2, payment_method_name),
			payment_method_type = COALESCE($3, payment_method_type),
			updated_at = now()
		WHERE id = $1
		RETURNING `+paymentMethodColumns, id, in.PaymentMethodName, in.PaymentMethodType))
	if err != nil {
		if noRows(err) {
			return nil, fmt.Errorf("update payment method %d: %w", id, domain.ErrNotFound)
		}
		return nil, wrapErr("update payment method", err)
	}
	return pm, nil
}

func (s *Storage) DeletePaymentMethod(ctx context.Context, id int) (bool, error) {
	result, err := s.db.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return false, wrapDeleteErr("delete payment method", err)
	}
	return result.RowsAffected() > 0, nil
}

// === PurchaseLocationStorage ===

const locationColumns = `id, location_name, location_type, address, created_at, updated_at`

func scanLocation(row pgx.Row) (*domain.PurchaseLocation, error) {
	var l domain.PurchaseLocation
	if err := row.Scan(&l.ID, &l.LocationName, &l.LocationType, &l.Address, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Storage) ListPurchaseLocations(ctx context.Context) ([]domain.PurchaseLocation, error) {
	rows, err := s.db.Query(ctx, `SELECT `+locationColumns+` FROM purchase_locations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list purchase locations: %w", err)
	}
	defer rows.Close()

	locations := []domain.PurchaseLocation{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase location: %w", err)
		}
		locations = append(locations, *l)
	}
	return locations, rows.Err()
}

func (s *Storage) FindPurchaseLocation(ctx context.Context, id int) (*domain.PurchaseLocation, error) {
	l, err := scanLocation(s.db.QueryRow(ctx, `SELECT `+locationColumns+` FROM purchase_locations WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find purchase location: %w", err)
	}
	return l, nil
}

func (s *Storage) CreatePurchaseLocation(ctx context.Context, in domain.PurchaseLocationCreate) (*domain.PurchaseLocation, error) {
	l, err := scanLocation(s.db.QueryRow(ctx, `
		INSERT INTO purchase_locations (location_name, location_type, address)
		VALUES ($1, $2, $3)
		RETURNING `+locationColumns, in.LocationName, in.LocationType, in.Address))
	if err != nil {
		return nil, wrapErr("create purchase location", err)
	}
	return l, nil
}

func (s *Storage) UpdatePurchaseLocation(ctx context.Context, id int, in domain.PurchaseLocationUpdate) (*domain.PurchaseLocation, error) {
	l, err := scanLocation(s.db.QueryRow(ctx, `
		UPDATE purchase_locations SET
			location_name = COALESCE($2, location_name),
			location_type = COALESCE($3, location_type),
			address = COALESCE($4, address),
			updated_at = now()
		WHERE id = $1
		RETURNING `+locationColumns, id, in.LocationName, in.LocationType, in.Address))
	if err != nil {
		if noRows(err) {
			return nil, fmt.Errorf("update purchase location %d: %w", id, domain.ErrNotFound)
		}
		return nil, wrapErr("update purchase location", err)
	}
	return l, nil
}

func (s *Storage) DeletePurchaseLocation(ctx context.Context, id int) (bool, error) {
	result, err := s.db.Exec(ctx, `DELETE FROM purchase_locations WHERE id = $1`, id)
	if err != nil {
		return false, wrapDeleteErr("delete purchase location", err)
	}
	return result.RowsAffected() > 0, nil
}
