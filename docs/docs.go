// Package docs holds the OpenAPI document served under /swagger. Keep it in
// step with the handler annotations when routes change.
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
        "/api/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/api/certificates/generate": {
            "post": {
                "description": "Pairs a stored template with the supplied input values. Rendering happens on the client; the values are echoed unchecked.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["certificates"],
                "summary": "Compose certificate data",
                "parameters": [
                    {
                        "description": "Template id and values keyed by input id",
                        "name": "data",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.CertificateData"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Certificate"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/status": {
            "get": {
                "description": "Returns up to 1000 status checks in store order.",
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "List status checks",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.StatusCheck"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Record a status check",
                "parameters": [
                    {
                        "description": "Client name",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.StatusCheckCreate"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatusCheck"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/templates": {
            "get": {
                "description": "Returns up to 1000 templates in store order.",
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "List templates",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Template"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores a certificate template. The server assigns the id, createdAt and any missing input ids and styling.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Create a template",
                "parameters": [
                    {
                        "description": "Template to create",
                        "name": "template",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.TemplateCreate"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Template"}},
                    "400": {"description": "Malformed JSON", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "422": {"description": "Missing or mistyped fields", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/templates/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Get a template",
                "parameters": [
                    {"type": "string", "description": "Template ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Template"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Delete a template",
                "parameters": [
                    {"type": "string", "description": "Template ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Pings the document store. An unreachable cache does not fail the check.",
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.StatusResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Certificate": {
            "type": "object",
            "properties": {
                "inputValues": {"type": "object", "additionalProperties": {"type": "string"}},
                "template": {"$ref": "#/definitions/models.Template"}
            }
        },
        "models.CertificateData": {
            "type": "object",
            "required": ["inputValues", "templateId"],
            "properties": {
                "inputValues": {"type": "object", "additionalProperties": {"type": "string"}},
                "templateId": {"type": "string"}
            }
        },
        "models.StatusCheck": {
            "type": "object",
            "properties": {
                "client_name": {"type": "string"},
                "id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.StatusCheckCreate": {
            "type": "object",
            "required": ["client_name"],
            "properties": {
                "client_name": {"type": "string"}
            }
        },
        "models.Template": {
            "type": "object",
            "properties": {
                "backgroundImage": {"description": "base64 encoded", "type": "string"},
                "createdAt": {"type": "string"},
                "height": {"type": "integer"},
                "id": {"type": "string"},
                "inputs": {"type": "array", "items": {"$ref": "#/definitions/models.TextInput"}},
                "name": {"type": "string"},
                "width": {"type": "integer"}
            }
        },
        "models.TemplateCreate": {
            "type": "object",
            "required": ["backgroundImage", "height", "name", "width"],
            "properties": {
                "backgroundImage": {"type": "string"},
                "height": {"type": "integer"},
                "inputs": {"type": "array", "items": {"$ref": "#/definitions/models.TextInputCreate"}},
                "name": {"type": "string"},
                "width": {"type": "integer"}
            }
        },
        "models.TextInput": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "fontFamily": {"type": "string"},
                "fontSize": {"type": "integer"},
                "height": {"type": "number"},
                "id": {"type": "string"},
                "placeholder": {"type": "string"},
                "width": {"type": "number"},
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "models.TextInputCreate": {
            "type": "object",
            "required": ["height", "placeholder", "width", "x", "y"],
            "properties": {
                "color": {"type": "string"},
                "fontFamily": {"type": "string"},
                "fontSize": {"type": "integer"},
                "height": {"type": "number"},
                "id": {"type": "string"},
                "placeholder": {"type": "string"},
                "width": {"type": "number"},
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "utils.StatusResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "utils.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
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
	Title:            "Certificate Generator API",
	Description:      "Stores certificate templates and composes certificate data for client-side rendering.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
