package schema

// tableStatements create the storefront tables. Order matters: categories must
// exist before products reference them.
var tableStatements = []struct {
	table string
	ddl   string
}{
	{
		table: "web_widgets",
		ddl: `
		CREATE TABLE IF NOT EXISTS web_widgets (
			id BIGSERIAL PRIMARY KEY,
			widget_type VARCHAR(50) NOT NULL,
			title VARCHAR(255),
			content TEXT,
			config TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			position INTEGER NOT NULL DEFAULT 0,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		table: "categories",
		ddl: `
		CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			slug VARCHAR(100) UNIQUE,
			parent_id BIGINT REFERENCES categories (id) ON DELETE SET NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		table: "products",
		ddl: `
		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE,
			description TEXT,
			price DECIMAL(10, 2) NOT NULL CHECK (price >= 0),
			compare_at_price DECIMAL(10, 2),
			image_url TEXT,
			gallery TEXT,
			category_id BIGINT REFERENCES categories (id),
			brand VARCHAR(100),
			sku VARCHAR(100),
			color VARCHAR(50),
			size VARCHAR(50),
			material VARCHAR(100),
			discount_percent INTEGER NOT NULL DEFAULT 0,
			quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			views INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		table: "carousel_items",
		ddl: `
		CREATE TABLE IF NOT EXISTS carousel_items (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(255),
			subtitle VARCHAR(255),
			image_url TEXT NOT NULL,
			link_url VARCHAR(500),
			button_text VARCHAR(100),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}
