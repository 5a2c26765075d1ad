package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Sports Master API",
        "description": "Backend for the sports class booking platform",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Session token minting"},
        {"name": "Users", "description": "Accounts, roles and promotions"},
        {"name": "Classes", "description": "Class catalog and approval workflow"},
        {"name": "Selections", "description": "Pre-payment class selections"},
        {"name": "Payments", "description": "Payment intents, settlement and receipts"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/jwt": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Issue session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload"}
                }
            }
        },
        "/users": {
            "post": {
                "tags": ["Users"],
                "summary": "Register user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "200": {"description": "Already registered"}
                }
            },
            "get": {
                "tags": ["Users"],
                "summary": "List users (admin)",
                "responses": {
                    "200": {"description": "Users", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/users/admin/{email}": {
            "get": {
                "tags": ["Users"],
                "summary": "Check admin role for own account",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Role flag", "schema": {"$ref": "#/definitions/RoleCheckResponse"}}
                }
            }
        },
        "/users/admin/{id}": {
            "patch": {
                "tags": ["Users"],
                "summary": "Promote user to admin",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Updated user"},
                    "404": {"description": "Unknown user"}
                }
            }
        },
        "/users/instructor/{email}": {
            "get": {
                "tags": ["Users"],
                "summary": "Check instructor role for own account",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Role flag", "schema": {"$ref": "#/definitions/RoleCheckResponse"}}
                }
            }
        },
        "/users/instructor/{id}": {
            "patch": {
                "tags": ["Users"],
                "summary": "Promote user to instructor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Updated user"},
                    "404": {"description": "Unknown user"}
                }
            }
        },
        "/allClass": {
            "get": {
                "tags": ["Classes"],
                "summary": "List catalog",
                "responses": {
                    "200": {"description": "Classes", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/allClass/{email}": {
            "get": {
                "tags": ["Classes"],
                "summary": "List an instructor's classes",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Classes"}
                }
            }
        },
        "/manageClass": {
            "get": {
                "tags": ["Classes"],
                "summary": "List the caller's own classes (instructor)",
                "responses": {
                    "200": {"description": "Classes"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/addClass": {
            "post": {
                "tags": ["Classes"],
                "summary": "Submit a class for review (instructor)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created pending review"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/addClass/approve/{id}": {
            "patch": {
                "tags": ["Classes"],
                "summary": "Approve a class (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Approved"},
                    "404": {"description": "Unknown class"}
                }
            }
        },
        "/addClass/deny/{id}": {
            "patch": {
                "tags": ["Classes"],
                "summary": "Deny a class (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Denied"},
                    "404": {"description": "Unknown class"}
                }
            }
        },
        "/feedback/{id}": {
            "put": {
                "tags": ["Classes"],
                "summary": "Leave feedback on a class (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FeedbackRequest"}}
                ],
                "responses": {
                    "200": {"description": "Saved"}
                }
            }
        },
        "/selectClass": {
            "get": {
                "tags": ["Selections"],
                "summary": "List staged selections",
                "responses": {
                    "200": {"description": "Selections"}
                }
            },
            "post": {
                "tags": ["Selections"],
                "summary": "Stage a class selection",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "200": {"description": "Category already selected"}
                }
            }
        },
        "/selectClass/delete/{id}": {
            "delete": {
                "tags": ["Selections"],
                "summary": "Remove a staged selection",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Removed"}
                }
            }
        },
        "/create-payment-intent": {
            "post": {
                "tags": ["Payments"],
                "summary": "Create payment intent",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PaymentIntentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Client secret"},
                    "502": {"description": "Payment provider failure"}
                }
            }
        },
        "/payments": {
            "post": {
                "tags": ["Payments"],
                "summary": "Record a completed payment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SettlementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Settled"}
                }
            },
            "get": {
                "tags": ["Payments"],
                "summary": "List payment history",
                "responses": {
                    "200": {"description": "Payments"}
                }
            }
        },
        "/payments/short": {
            "get": {
                "tags": ["Payments"],
                "summary": "List payment history newest first",
                "responses": {
                    "200": {"description": "Payments"}
                }
            }
        },
        "/payments/{id}/receipt": {
            "get": {
                "tags": ["Payments"],
                "summary": "Get a receipt download link",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Signed download link"},
                    "403": {"description": "Receipt belongs to another account"}
                }
            }
        },
        "/receipts/download": {
            "get": {
                "tags": ["Payments"],
                "summary": "Download a receipt",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Receipt PDF"},
                    "403": {"description": "Invalid or expired token"}
                }
            }
        },
        "/payments/export": {
            "get": {
                "tags": ["Payments"],
                "summary": "Export payment statement",
                "parameters": [
                    {"name": "format", "in": "query", "required": false, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Statement file"}
                }
            }
        }
    },
    "definitions": {
        "TokenRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "photoURL": {"type": "string"}
            }
        },
        "RoleCheckResponse": {
            "type": "object",
            "properties": {
                "admin": {"type": "boolean"}
            }
        },
        "SubmitClassRequest": {
            "type": "object",
            "required": ["name", "category", "availableSeats"],
            "properties": {
                "name": {"type": "string"},
                "image": {"type": "string"},
                "category": {"type": "string"},
                "price": {"type": "number"},
                "availableSeats": {"type": "integer"}
            }
        },
        "FeedbackRequest": {
            "type": "object",
            "required": ["feedback"],
            "properties": {
                "feedback": {"type": "string"}
            }
        },
        "SelectClassRequest": {
            "type": "object",
            "required": ["classId", "className", "category"],
            "properties": {
                "classId": {"type": "string"},
                "className": {"type": "string"},
                "category": {"type": "string"},
                "image": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "PaymentIntentRequest": {
            "type": "object",
            "required": ["price"],
            "properties": {
                "price": {"type": "number"}
            }
        },
        "SettlementRequest": {
            "type": "object",
            "required": ["transactionId", "amount"],
            "properties": {
                "transactionId": {"type": "string"},
                "amount": {"type": "number"},
                "classId": {"type": "string"},
                "className": {"type": "string"},
                "selectionId": {"type": "string"},
                "selectionIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
