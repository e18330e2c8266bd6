// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/carousel": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List carousel slides",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CarouselResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CategoriesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "description": "Active products with stock, featured first then newest.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List visible products",
                "parameters": [
                    {"type": "integer", "default": 12, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Rows to skip", "name": "offset", "in": "query"},
                    {"type": "string", "description": "Category slug", "name": "category", "in": "query"},
                    {"type": "string", "description": "Only featured products when true", "name": "featured", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProductsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/widgets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List active widgets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.WidgetsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.CarouselItemView": {
            "type": "object",
            "properties": {
                "button_text": {"type": "string"},
                "image_url": {"type": "string"},
                "link_url": {"type": "string"},
                "subtitle": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "models.CarouselResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.CarouselItemView"}},
                "success": {"type": "boolean"}
            }
        },
        "models.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryView"}},
                "success": {"type": "boolean"}
            }
        },
        "models.CategoryView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "parent_id": {"type": "integer"},
                "slug": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.ProductView": {
            "type": "object",
            "properties": {
                "brand": {"type": "string"},
                "category_name": {"type": "string"},
                "color": {"type": "string"},
                "compare_at_price": {"type": "number"},
                "compare_price_formatted": {"type": "string"},
                "description": {"type": "string"},
                "discount_percent": {"type": "integer"},
                "gallery": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "integer"},
                "image_url": {"type": "string"},
                "is_featured": {"type": "boolean"},
                "main_image": {"type": "string"},
                "material": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "price_formatted": {"type": "string"},
                "quantity": {"type": "integer"},
                "size": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "models.ProductsResponse": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/models.ProductView"}},
                "success": {"type": "boolean"},
                "total": {"type": "integer"}
            }
        },
        "models.WidgetView": {
            "type": "object",
            "properties": {
                "config": {"type": "object", "additionalProperties": true},
                "content": {"type": "string"},
                "position": {"type": "integer"},
                "title": {"type": "string"},
                "widget_type": {"type": "string"}
            }
        },
        "models.WidgetsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "widgets": {"type": "array", "items": {"$ref": "#/definitions/models.WidgetView"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "STONE Storefront API",
	Description:      "Read-only catalog endpoints backing the STONE storefront and web app.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
