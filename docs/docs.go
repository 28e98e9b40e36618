// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {"tags": ["health"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/api/snapshots": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["snapshots"], "summary": "List snapshots", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["snapshots"], "summary": "Create a snapshot", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/api/snapshots/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["snapshots"], "summary": "Get a snapshot", "parameters": [{"type": "string", "description": "Snapshot ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["snapshots"], "summary": "Delete a snapshot", "parameters": [{"type": "string", "description": "Snapshot ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/snapshots/{id}/breakdown": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["snapshots"], "summary": "Snapshot breakdown by category", "parameters": [{"type": "string", "description": "Snapshot ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Create a category", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/categories/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Update a category", "parameters": [{"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/line-items": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["line-items"], "summary": "Create a line item", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/line-items/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["line-items"], "summary": "Rename a line item", "parameters": [{"type": "string", "description": "Line item ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/dashboard": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["dashboard"], "summary": "Dashboard", "responses": {"200": {"description": "OK"}}}
        },
        "/api/export": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["export"], "summary": "Export snapshots", "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "parameters": [{"type": "string", "description": "csv (default) or xlsx", "name": "format", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/settings": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["settings"], "summary": "Get settings", "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["settings"], "summary": "Update settings", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/currencies": {
            "get": {"tags": ["settings"], "summary": "List supported currencies", "responses": {"200": {"description": "OK"}}}
        },
        "/api/account": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["account"], "summary": "Delete account", "responses": {"200": {"description": "OK"}}}
        },
        "/api/auth/session": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current session", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "\"Enter your Bearer token in the format: ` + "`" + `Bearer {token}` + "`" + `\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Net Worth API",
	Description:      "Snapshot ledger for tracking assets, liabilities and net worth over time",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
