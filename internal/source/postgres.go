package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"vitrina/internal/catalog"
)

const queryTimeout = 5 * time.Second

// PostgresSource reads the catalog straight from the products table.
// It is the deployment mode where the browser runs next to the database
// instead of going through the REST gateway.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

const productColumns = `
	id, title, description, price, media, categories, is_featured,
	admin_note, discount_percent, promotion_start, promotion_end,
	created_at, popularity_count
`

func (s *PostgresSource) FetchAll(ctx context.Context) ([]*catalog.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC;`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, newError("fetch all", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (s *PostgresSource) FetchByCategoryLabels(ctx context.Context, labels []string) ([]*catalog.Product, error) {
	if len(labels) == 0 {
		return s.FetchAll(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + productColumns + `
		FROM products
		WHERE categories @> $1
		ORDER BY created_at DESC;`
	rows, err := s.db.Query(ctx, query, labels)
	if err != nil {
		return nil, newError("fetch by categories", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (s *PostgresSource) IncrementPopularity(ctx context.Context, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cmd, err := s.db.Exec(ctx,
		`UPDATE products SET popularity_count = COALESCE(popularity_count, 0) + 1 WHERE id = $1;`,
		productID,
	)
	if err != nil {
		return newError("increment popularity", err)
	}
	if cmd.RowsAffected() == 0 {
		return newError("increment popularity", fmt.Errorf("product %q not found", productID))
	}
	return nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanProducts(rows pgxRows) ([]*catalog.Product, error) {
	var products []*catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Price, &p.Media, &p.Categories,
			&p.IsFeatured, &p.AdminNote, &p.DiscountPercent, &p.PromotionStart,
			&p.PromotionEnd, &p.CreatedAt, &p.PopularityCount,
		); err != nil {
			return nil, newError("scan product", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, newError("rows iteration", err)
	}
	return products, nil
}
