package schema

const seedImage = "/static/images/placeholder.jpg"
const seedGallery = `["/static/images/placeholder.jpg"]`

type seedSet struct {
	table  string
	insert string
	rows   [][]any
}

// seedSets are inserted table by table, each only while its table is empty.
// Products look their category up by slug so ids never have to line up.
var seedSets = []seedSet{
	{
		table: "web_widgets",
		insert: `
		INSERT INTO web_widgets (widget_type, title, content, config, position, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rows: [][]any{
			{"marquee", nil, "STONE | PREMIUM SNEAKERS | BETWEEN 11/20/2025 AND 12/15/2025 MAY BE RETURNED",
				`{"speed": 30, "color": "#000000", "bgColor": "#ffffff"}`, 1, 0},
			{"hero", "STONE", "between 11/20/2025 and 12/15/2025 may be returned", `{}`, 2, 0},
			{"info", "INFORMATION #LINDON", "money model options, four, savings", `{}`, 3, 0},
			{"collection", "New Collection",
				"Explore our carefully curated selection of premium sneakers. Each pair is designed with meticulous attention to detail and crafted from the finest materials.",
				`{"buttonText": "VIEW COLLECTION"}`, 4, 0},
		},
	},
	{
		table: "categories",
		insert: `
		INSERT INTO categories (name, slug, parent_id, sort_order)
		VALUES ($1, $2, $3, $4)`,
		rows: [][]any{
			{"Sneakers", "sneakers", nil, 1},
			{"Boots", "boots", nil, 2},
			{"Sandals", "sandals", nil, 3},
			{"Accessories", "accessories", nil, 4},
		},
	},
	{
		table: "products",
		insert: `
		INSERT INTO products (name, slug, description, price, compare_at_price, image_url, gallery,
		                      category_id, brand, sku, color, size, material,
		                      discount_percent, quantity, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
		        (SELECT id FROM categories WHERE slug = $8), $9, $10, $11, $12, $13,
		        $14, $15, $16)`,
		rows: [][]any{
			{"KPOCCOBKM", "kpoccobkm-1", "Premium sneakers with unique design", "120.00", "150.00",
				seedImage, seedGallery, "sneakers", "STONE", "STN-001", "Black", "42", "Leather", 20, 10, true},
			{"KPOCCOBKM Pro", "kpoccobkm-pro", "Advanced version with better materials", "140.00", "180.00",
				seedImage, seedGallery, "sneakers", "STONE", "STN-002", "White", "40-45", "Suede", 22, 8, true},
			{"KPOCCOBKM Lite", "kpoccobkm-lite", "Lightweight version for everyday wear", "130.00", nil,
				seedImage, seedGallery, "sneakers", "STONE", "STN-003", "Gray", "39-44", "Mesh", 0, 15, true},
			{"KPOCCOBKM Ultra", "kpoccobkm-ultra", "Ultimate performance sneakers", "150.00", "200.00",
				seedImage, seedGallery, "sneakers", "STONE", "STN-004", "Black/White", "41-43", "Leather/Mesh", 25, 5, true},
		},
	},
	{
		table: "carousel_items",
		insert: `
		INSERT INTO carousel_items (title, subtitle, image_url, link_url, button_text)
		VALUES ($1, $2, $3, $4, $5)`,
		rows: [][]any{
			{"New Collection 2024", "Discover the latest designs", seedImage, "/catalog", "SHOP NOW"},
			{"Limited Edition", "Exclusive items available", seedImage, "/catalog?filter=limited", "VIEW"},
			{"Summer Sale", "Up to 50% off selected items", seedImage, "/catalog?filter=sale", "SHOP SALE"},
		},
	},
}
