package repositories

import (
	"context"
	"fmt"
	"strings"

	"stonestore/internal/models"
	"stonestore/pkg/database"
)

type ProductRepository interface {
	ListVisible(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	ListHome(ctx context.Context, limit int) ([]*models.Product, error)
}

type productRepo struct {
	db database.DBTX
}

func NewProductRepo(db database.DBTX) ProductRepository {
	return &productRepo{db: db}
}

// ListVisible returns active, in-stock products with their category name,
// featured first and newest next.
func (r *productRepo) ListVisible(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT p.id, p.name, p.slug, p.description, p.price, p.compare_at_price,
		       p.image_url, p.gallery, p.brand, p.discount_percent, p.quantity,
		       p.color, p.size, p.material, p.is_featured,
		       c.name AS category_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.is_active = TRUE AND p.quantity > 0`)

	args := []any{}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		fmt.Fprintf(&sb, " AND c.slug = $%d", len(args))
	}
	if filter.FeaturedOnly {
		sb.WriteString(" AND p.is_featured = TRUE")
	}

	args = append(args, filter.Limit, filter.Offset)
	fmt.Fprintf(&sb, " ORDER BY p.is_featured DESC, p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p := &models.Product{IsActive: true}
		err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.CompareAtPrice,
			&p.ImageURL, &p.Gallery, &p.Brand, &p.DiscountPercent, &p.Quantity,
			&p.Color, &p.Size, &p.Material, &p.IsFeatured,
			&p.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListHome returns the short projection used by the home page grid.
func (r *productRepo) ListHome(ctx context.Context, limit int) ([]*models.Product, error) {
	query := `
		SELECT id, name, price, image_url, discount_percent, brand
		FROM products
		WHERE is_active = TRUE AND quantity > 0
		ORDER BY is_featured DESC, created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list home products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p := &models.Product{IsActive: true}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.DiscountPercent, &p.Brand); err != nil {
			return nil, fmt.Errorf("scan home product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list home products: %w", err)
	}
	return products, nil
}
