package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, slug, title, author, price, promotional_price, stock_qty, cover_image,
		category_id, isbn, published_year, description, language, status, created_at, updated_at`

// Search full-text sobre fts_vector con websearch en español; incluye la categoría.
func (r *ProductRepo) Search(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
	sql := `
		SELECT p.title, p.slug, p.price, p.cover_image, p.author, c.name, c.slug
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.fts_vector @@ websearch_to_tsquery('spanish', $1)
		LIMIT $2`
	rows, err := r.q.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var results []repository.SearchResult
	for rows.Next() {
		var res repository.SearchResult
		var catName, catSlug *string
		if err := rows.Scan(&res.Product.Title, &res.Product.Slug, &res.Product.Price,
			&res.Product.CoverImage, &res.Product.Author, &catName, &catSlug); err != nil {
			return nil, fmt.Errorf("scan search result: %w", err)
		}
		if catName != nil && catSlug != nil {
			res.Category = &entity.CategoryRef{Name: *catName, Slug: *catSlug}
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// Create persiste un nuevo producto. El ID lo asigna la secuencia de la tabla.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	sql := `
		INSERT INTO products (slug, title, author, price, promotional_price, stock_qty, cover_image,
			category_id, isbn, published_year, description, language, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, sql,
		product.Slug, product.Title, product.Author, product.Price, product.PromotionalPrice,
		product.StockQty, product.CoverImage, product.CategoryID, product.ISBN, product.PublishedYear,
		product.Description, product.Language, product.Status, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&p.ID, &p.Slug, &p.Title, &p.Author, &p.Price, &p.PromotionalPrice, &p.StockQty,
		&p.CoverImage, &p.CategoryID, &p.ISBN, &p.PublishedYear, &p.Description,
		&p.Language, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. El slug no cambia después de creado.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	sql := `
		UPDATE products
		SET title = $2, author = $3, price = $4, promotional_price = $5, stock_qty = $6,
			cover_image = $7, category_id = $8, isbn = $9, description = $10,
			language = $11, status = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, sql,
		product.ID, product.Title, product.Author, product.Price, product.PromotionalPrice,
		product.StockQty, product.CoverImage, product.CategoryID, product.ISBN,
		product.Description, product.Language, product.Status, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Falla si hay pedidos que lo referencian
// (FK), lo que se reporta al usuario como fallo genérico de eliminación.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
