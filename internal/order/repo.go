package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrForbidden = errors.New("order belongs to another user")
)

// CreateItem is one line of the create_order call, already normalized by the
// service (unit defaulted, price resolved to a 2dp string).
type CreateItem struct {
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	QuantityUnit string `json:"quantity_unit"`
	UnitPrice    string `json:"unit_price"`
}

type CreateParams struct {
	UserID          string
	ShippingAddress ShippingAddress
	Items           []CreateItem
	TotalAmount     string
}

type Repository interface {
	// Create invokes the create_order database function, which inserts the
	// order and its items, decrements product stock and clears the user's
	// cart as one transaction. It returns the new order id.
	Create(ctx context.Context, p CreateParams) (string, error)
	GetDetails(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, p CreateParams) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	addr, err := json.Marshal(p.ShippingAddress)
	if err != nil {
		return "", err
	}
	items, err := json.Marshal(p.Items)
	if err != nil {
		return "", err
	}

	var id string
	err = r.db.QueryRow(ctx, `
		SELECT create_order($1, $2::jsonb, $3::jsonb, $4::numeric)
	`, p.UserID, addr, items, p.TotalAmount).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PGRepo) GetDetails(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, status, total_amount::text, shipping_address, created_at, updated_at
		FROM orders WHERE id=$1
	`, id).Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, status, total_amount::text, shipping_address, created_at, updated_at
		FROM orders WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.itemsFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) itemsFor(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.quantity, i.quantity_unit, i.price::text,
		       p.id, p.name, COALESCE(p.image, '')
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id=$1
		ORDER BY i.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Quantity, &it.QuantityUnit, &it.Price,
			&it.Product.ID, &it.Product.Name, &it.Product.Image); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
