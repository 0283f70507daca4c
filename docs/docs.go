// Package docs registers the OpenAPI description served at /swagger.
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
    "securityDefinitions": {
        "UserID": {
            "type": "apiKey",
            "name": "X-User-ID",
            "in": "header"
        }
    },
    "security": [{"UserID": []}],
    "paths": {
        "/ping": {
            "get": {
                "tags": ["public"],
                "summary": "Health check",
                "responses": {}
            }
        },
        "/sessions": {
            "post": {
                "tags": ["sessions"],
                "summary": "Start an evaluation session",
                "responses": {}
            }
        },
        "/sessions/{id}": {
            "get": {
                "tags": ["sessions"],
                "summary": "Get a session",
                "responses": {}
            },
            "patch": {
                "tags": ["sessions"],
                "summary": "Apply an answer change and recompute discounts",
                "responses": {}
            },
            "delete": {
                "tags": ["sessions"],
                "summary": "Discard a session",
                "responses": {}
            }
        },
        "/sessions/{id}/discounts/{category}": {
            "patch": {
                "tags": ["sessions"],
                "summary": "Override a category discount",
                "responses": {}
            }
        },
        "/sessions/{id}/refresh": {
            "post": {
                "tags": ["sessions"],
                "summary": "Reload area and unit prices",
                "responses": {}
            }
        },
        "/sessions/{id}/submit": {
            "post": {
                "tags": ["sessions"],
                "summary": "Persist the session as an evaluation",
                "responses": {}
            }
        },
        "/evaluations/{id}/sessions": {
            "post": {
                "tags": ["sessions"],
                "summary": "Open a stored evaluation for editing",
                "responses": {}
            }
        },
        "/evaluations/preview": {
            "post": {
                "tags": ["evaluations"],
                "summary": "Compute discounts without storing",
                "responses": {}
            }
        },
        "/evaluations": {
            "get": {
                "tags": ["evaluations"],
                "summary": "List evaluations",
                "responses": {}
            }
        },
        "/evaluations/export": {
            "get": {
                "tags": ["evaluations"],
                "summary": "Export evaluations as xlsx",
                "responses": {}
            }
        },
        "/evaluations/{id}": {
            "get": {
                "tags": ["evaluations"],
                "summary": "Get an evaluation",
                "responses": {}
            },
            "delete": {
                "tags": ["evaluations"],
                "summary": "Delete an in-progress evaluation",
                "responses": {}
            }
        },
        "/evaluations/{id}/reopen": {
            "patch": {
                "tags": ["evaluations"],
                "summary": "Reopen a completed evaluation",
                "responses": {}
            }
        },
        "/evaluations/{id}/status": {
            "patch": {
                "tags": ["evaluations"],
                "summary": "Set a review status",
                "responses": {}
            }
        },
        "/settings": {
            "get": {
                "tags": ["settings"],
                "summary": "Get contract settings",
                "responses": {}
            },
            "put": {
                "tags": ["settings"],
                "summary": "Save contract settings",
                "responses": {}
            }
        },
        "/units": {
            "get": {
                "tags": ["units"],
                "summary": "List units",
                "responses": {}
            },
            "post": {
                "tags": ["units"],
                "summary": "Create a unit",
                "responses": {}
            }
        },
        "/units/{id}": {
            "get": {
                "tags": ["units"],
                "summary": "Get a unit",
                "responses": {}
            },
            "put": {
                "tags": ["units"],
                "summary": "Update a unit",
                "responses": {}
            },
            "delete": {
                "tags": ["units"],
                "summary": "Delete a unit",
                "responses": {}
            }
        },
        "/profile": {
            "get": {
                "tags": ["profile"],
                "summary": "Get the caller profile",
                "responses": {}
            },
            "put": {
                "tags": ["profile"],
                "summary": "Save the caller profile",
                "responses": {}
            }
        },
        "/alerts": {
            "get": {
                "tags": ["alerts"],
                "summary": "List alerts",
                "responses": {}
            },
            "post": {
                "tags": ["alerts"],
                "summary": "Create an alert",
                "responses": {}
            }
        },
        "/alerts/active": {
            "get": {
                "tags": ["alerts"],
                "summary": "List active alerts",
                "responses": {}
            }
        },
        "/alerts/{id}": {
            "put": {
                "tags": ["alerts"],
                "summary": "Update an alert",
                "responses": {}
            },
            "delete": {
                "tags": ["alerts"],
                "summary": "Delete an alert",
                "responses": {}
            }
        },
        "/hiring-docs": {
            "get": {
                "tags": ["hiring-docs"],
                "summary": "List hiring documents",
                "responses": {}
            },
            "post": {
                "tags": ["hiring-docs"],
                "summary": "Register a hiring document",
                "responses": {}
            }
        },
        "/hiring-docs/{id}": {
            "delete": {
                "tags": ["hiring-docs"],
                "summary": "Delete a hiring document",
                "responses": {}
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Get the dashboard",
                "responses": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Controle de Pragas API",
	Description:      "Monthly pest-control service evaluations with checklist-driven contractual discounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
