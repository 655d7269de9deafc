package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PostgresRepository is the production Repository binding over the catalog
// database. Writes are last-write-wins; there is no version check discipline
// between concurrent admin sessions.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) InsertProduct(ctx context.Context, np NewProduct) (Product, error) {
	var p Product
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO products (id, name, price, category, description, image, stock, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			RETURNING id, name, price, category, description, image, stock, created_at, updated_at
		`
		row := tx.QueryRowContext(ctx, query, uuid.NewString(), np.Name, np.Price, np.Category, np.Description, np.Image, np.Stock)
		if err := scanProduct(row, &p); err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}
		return nil
	})
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) GetProductByID(ctx context.Context, id string) (Product, error) {
	query := `
		SELECT id, name, price, category, description, image, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	var p Product
	row := r.db.QueryRowContext(ctx, query, id)
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, err
		}
		return Product{}, fmt.Errorf("failed to query product: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, id string, np NewProduct) (Product, error) {
	var p Product
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE products
			SET name = $1, price = $2, category = $3, description = $4, image = $5, stock = $6, updated_at = NOW()
			WHERE id = $7
			RETURNING id, name, price, category, description, image, stock, created_at, updated_at
		`
		row := tx.QueryRowContext(ctx, query, np.Name, np.Price, np.Category, np.Description, np.Image, np.Stock, id)
		if err := scanProduct(row, &p); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return err
			}
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]Product, error) {
	query := `
		SELECT id, name, price, category, description, image, stock, created_at, updated_at
		FROM products
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var list []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return list, nil
}

func (r *PostgresRepository) InsertCategory(ctx context.Context, name string) (Category, error) {
	var cat Category
	query := `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
		RETURNING id, name
	`
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), name).Scan(&cat.ID, &cat.Name)
	if err != nil {
		return Category{}, fmt.Errorf("failed to insert category: %w", err)
	}
	return cat, nil
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var list []Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		list = append(list, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, p *Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.Image, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostgresRepository) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if er := tx.Rollback(); er != nil && !errors.Is(er, sql.ErrTxDone) {
			return fmt.Errorf("failed to rollback withTx: %w", err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit withTx: %w", err)
	}
	return nil
}
