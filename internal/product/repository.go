package product

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, input Input) (*Product, error)
	Update(ctx context.Context, id int, input Input) (*Product, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, image_url, category, stock, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*Product, error) {
	var (
		p           Product
		description sql.NullString
		imageURL    sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&description,
		&p.Price,
		&imageURL,
		&p.Category,
		&p.Stock,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		p.Description = &description.String
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}

	return &p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM products
		ORDER BY category, name
	`, productColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1
	`, productColumns), id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, input Input) (*Product, error) {
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		INSERT INTO products (name, description, price, image_url, category, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, productColumns),
		input.Name, input.Description, input.Price, input.ImageURL, input.Category, stock,
	)

	return scanProduct(row)
}

func (r *repository) Update(ctx context.Context, id int, input Input) (*Product, error) {
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}

	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		UPDATE products
		SET name = $1, description = $2, price = $3, image_url = $4, category = $5, stock = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING %s
	`, productColumns),
		input.Name, input.Description, input.Price, input.ImageURL, input.Category, stock, id,
	)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
