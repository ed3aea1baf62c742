// Package docs registers the OpenAPI document served at /swagger.
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
        "/api/v1/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Email or password is not valid"}}}},
        "/api/v1/auth/register": {"post": {"tags": ["Auth"], "summary": "Sign up", "responses": {"200": {"description": "OK"}, "400": {"description": "Registration failed"}}}},
        "/api/v1/auth/guest": {"post": {"tags": ["Auth"], "summary": "Guest log in", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/logout": {"post": {"tags": ["Auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/session": {"get": {"tags": ["Auth"], "summary": "Current session", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/guard": {"get": {"tags": ["Auth"], "summary": "Page guard", "parameters": [{"type": "string", "name": "page", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List tasks", "parameters": [{"type": "string", "name": "bucket", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Tasks"], "summary": "Create a task", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Remote storage unavailable"}}}
        },
        "/api/v1/tasks/{id}": {
            "get": {"tags": ["Tasks"], "summary": "Get task detail", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Tasks"], "summary": "Update a task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Tasks"], "summary": "Delete a task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/tasks/{id}/bucket": {"patch": {"tags": ["Tasks"], "summary": "Move a task to another bucket", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid bucket"}}}},
        "/api/v1/tasks/{id}/subtasks": {"post": {"tags": ["Subtasks"], "summary": "Add a subtask", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/tasks/{id}/subtasks/{index}": {
            "put": {"tags": ["Subtasks"], "summary": "Rename a subtask", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "index", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Subtasks"], "summary": "Delete a subtask", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "index", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/tasks/{id}/subtasks/{index}/toggle": {"post": {"tags": ["Subtasks"], "summary": "Toggle a subtask", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "integer", "name": "index", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/contacts": {
            "get": {"tags": ["Contacts"], "summary": "List contacts", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Contacts"], "summary": "Create a contact", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid fields"}}}
        },
        "/api/v1/contacts/{id}": {
            "get": {"tags": ["Contacts"], "summary": "Get contact detail", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Contacts"], "summary": "Update a contact", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Contacts"], "summary": "Delete a contact", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/board": {"get": {"tags": ["Board"], "summary": "Board view", "parameters": [{"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/board/summary": {"get": {"tags": ["Board"], "summary": "Summary page", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/sync": {"get": {"tags": ["Sync"], "summary": "Sync status", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/sync/retry": {"post": {"tags": ["Sync"], "summary": "Replay pending operations", "responses": {"200": {"description": "OK"}, "409": {"description": "Retry already running"}}}},
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "API is not ready"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "Kanban task and contact board backed by a remote REST storage API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
