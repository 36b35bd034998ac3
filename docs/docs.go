// Package docs holds the generated OpenAPI description served under
// /swagger. Regenerate with `swag init -g cmd/api/main.go`.
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Start the login flow by e-mailing an OTP",
                "parameters": [
                    {
                        "description": "client credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/main.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/orders/place-order": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Place an order",
                "parameters": [
                    {
                        "description": "checkout payload",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/order.CheckoutRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "main.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "order.CheckoutRequest": {
            "type": "object",
            "properties": {
                "clientId": {"type": "string"},
                "email": {"type": "string"},
                "orderStatus": {"type": "string"},
                "products": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/order.LineItem"}
                },
                "orderTotal": {"type": "string"},
                "shippingAddress": {"$ref": "#/definitions/order.ShippingAddress"},
                "shippingMethod": {"type": "string"},
                "trackingNumber": {"type": "string"},
                "shippingStatus": {"type": "string"},
                "paymentMethod": {"type": "string"},
                "amount": {"type": "string"},
                "transaction_id": {"type": "string"},
                "upiId": {"type": "string"},
                "cardNumber": {"type": "string"},
                "cardExpiryDate": {"type": "string"},
                "cvv": {"type": "string"}
            }
        },
        "order.LineItem": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "string"}
            }
        },
        "order.ShippingAddress": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "number": {"type": "string"},
                "street": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "pinCode": {"type": "string"},
                "locality": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Tea of Assam API",
	Description:      "Storefront and admin dashboard backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
