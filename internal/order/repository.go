package order

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	CreateTx(ctx context.Context, input CreateInput) (*Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, buyer_name, buyer_email, buyer_phone, delivery_address, total_amount, status, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.BuyerName,
		&o.BuyerEmail,
		&o.BuyerPhone,
		&o.DeliveryAddress,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM orders
		ORDER BY created_at DESC
	`, orderColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	index := make(map[int]int)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		o.Items = []OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Order, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE id = $1
	`, orderColumns), id)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o.Items, err = r.loadItems(ctx, `WHERE oi.order_id = $1`, id)
	if err != nil {
		return nil, err
	}

	return o, nil
}

// loadItems fetches order items with their denormalized product snapshot.
// The join is LEFT so a deleted product does not hide the line item.
func (r *repository) loadItems(ctx context.Context, where string, args ...any) ([]OrderItem, error) {
	query := fmt.Sprintf(`
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       p.id, p.name, p.price, p.image_url
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		%s
		ORDER BY oi.id
	`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var (
			item         OrderItem
			productID    sql.NullInt64
			productName  sql.NullString
			productPrice sql.NullFloat64
			imageURL     sql.NullString
		)
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&productID,
			&productName,
			&productPrice,
			&imageURL,
		)
		if err != nil {
			return nil, err
		}

		if productID.Valid {
			item.Product.ID = int(productID.Int64)
			item.Product.Name = productName.String
			item.Product.Price = productPrice.Float64
			if imageURL.Valid {
				item.Product.ImageURL = &imageURL.String
			}
		} else {
			// Product row is gone; keep the snapshot price from the item.
			item.Product.ID = item.ProductID
			item.Product.Price = item.Price
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *repository) CreateTx(ctx context.Context, input CreateInput) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var orderID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (buyer_name, buyer_email, buyer_phone, delivery_address, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, 'PENDING')
		RETURNING id
	`, input.BuyerName, input.BuyerEmail, input.BuyerPhone, input.DeliveryAddress, input.TotalAmount).Scan(&orderID)
	if err != nil {
		return nil, err
	}

	for _, item := range input.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, orderID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			return nil, err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1, updated_at = NOW()
			WHERE id = $2
		`, item.Quantity, item.ProductID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, orderID)
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, orderColumns), status, id)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}
