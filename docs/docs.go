// Package docs is the swag-registered OpenAPI document for the HomeFix API.
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
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a new user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.AuthResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Registration request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.RegisterRequest"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Login user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.AuthResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Login request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.LoginRequest"
						}
					}
				]
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Logout user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.MessageResponse"
						}
					}
				}
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/services": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "List services",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handlers.ListResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/models.Service"
											}
										}
									}
								}
							]
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/services/{serviceId}": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "Get service",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Service"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Service ID",
						"name": "serviceId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/technicians": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "List technicians",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handlers.ListResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/models.Technician"
											}
										}
									}
								}
							]
						}
					}
				},
				"parameters": [
					{
						"enum": [
							"plumbing",
							"electrical",
							"cleaning",
							"painting",
							"carpentry",
							"ac"
						],
						"type": "string",
						"description": "Category filter",
						"name": "specialization",
						"in": "query"
					}
				]
			}
		},
		"/technicians/{technicianId}": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "Get technician",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Technician"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Technician ID",
						"name": "technicianId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/technicians/{technicianId}/reviews": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "Technician reviews",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handlers.ListResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/models.Review"
											}
										}
									}
								}
							]
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Technician ID",
						"name": "technicianId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/bookings": {
			"post": {
				"tags": [
					"bookings"
				],
				"summary": "Create booking",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Booking"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"description": "Books a service visit. The amount comes from the service category price table.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Booking request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.CreateBookingInput"
						}
					}
				]
			},
			"get": {
				"tags": [
					"bookings"
				],
				"summary": "List my bookings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handlers.ListResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/models.Booking"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Customer email (admin only)",
						"name": "email",
						"in": "query"
					}
				]
			}
		},
		"/bookings/{bookingId}": {
			"get": {
				"tags": [
					"bookings"
				],
				"summary": "Get booking",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Booking"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Booking ID",
						"name": "bookingId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/bookings/{bookingId}/cancel": {
			"post": {
				"tags": [
					"bookings"
				],
				"summary": "Cancel booking",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Booking"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Booking ID",
						"name": "bookingId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/bookings/{bookingId}/reviews": {
			"post": {
				"tags": [
					"bookings"
				],
				"summary": "Review booking",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Review"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Booking ID",
						"name": "bookingId",
						"in": "path",
						"required": true
					},
					{
						"description": "Review",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.CreateReviewInput"
						}
					}
				]
			}
		},
		"/bookings/{bookingId}/payment": {
			"post": {
				"tags": [
					"payments"
				],
				"summary": "Start payment",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.PaymentSession"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Booking ID",
						"name": "bookingId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/bookings/{bookingId}/verify-payment": {
			"post": {
				"tags": [
					"payments"
				],
				"summary": "Verify payment",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Booking"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Booking ID",
						"name": "bookingId",
						"in": "path",
						"required": true
					},
					{
						"description": "Payment reference",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.VerifyPaymentRequest"
						}
					}
				]
			}
		},
		"/admin/stats": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Booking statistics",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Stats"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/bookings": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "All bookings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handlers.ListResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/models.Booking"
											}
										}
									}
								}
							]
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin/bookings/{bookingId}/status": {
			"put": {
				"tags": [
					"admin"
				],
				"summary": "Set booking status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Booking"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Booking ID",
						"name": "bookingId",
						"in": "path",
						"required": true
					},
					{
						"description": "New status",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.StatusUpdateRequest"
						}
					}
				]
			}
		},
		"/admin/seed": {
			"post": {
				"tags": [
					"admin"
				],
				"summary": "Seed catalog",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handlers.ListResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/models.Service"
											}
										}
									}
								}
							]
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"services.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"handlers.ListResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer",
					"example": 1
				},
				"data": {}
			}
		},
		"handlers.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string",
					"example": "Logout successful"
				}
			}
		},
		"handlers.VerifyPaymentRequest": {
			"type": "object",
			"properties": {
				"payment_ref": {
					"type": "string",
					"example": "PAY-1767225600000-A1B2C3"
				}
			}
		},
		"handlers.StatusUpdateRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"pending",
						"confirmed",
						"completed",
						"cancelled"
					],
					"example": "completed"
				}
			}
		},
		"services.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string",
					"example": "asha@example.com"
				},
				"password": {
					"type": "string",
					"minLength": 6,
					"example": "password123"
				}
			}
		},
		"services.RegisterRequest": {
			"type": "object",
			"required": [
				"email",
				"name",
				"password",
				"phone"
			],
			"properties": {
				"name": {
					"type": "string",
					"minLength": 2,
					"example": "Asha Rao"
				},
				"email": {
					"type": "string",
					"example": "asha@example.com"
				},
				"phone": {
					"type": "string",
					"example": "+919800000000"
				},
				"password": {
					"type": "string",
					"minLength": 6,
					"example": "password123"
				}
			}
		},
		"services.AuthResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				}
			}
		},
		"services.CreateBookingInput": {
			"type": "object",
			"required": [
				"scheduled_at",
				"service_id"
			],
			"properties": {
				"customer": {
					"$ref": "#/definitions/models.Customer"
				},
				"service_id": {
					"type": "string",
					"example": "svc-plumbing"
				},
				"technician_id": {
					"type": "string"
				},
				"scheduled_at": {
					"type": "string",
					"example": "2026-11-02 10:00"
				},
				"notes": {
					"type": "string",
					"maxLength": 1000
				}
			}
		},
		"services.CreateReviewInput": {
			"type": "object",
			"required": [
				"rating"
			],
			"properties": {
				"rating": {
					"type": "integer",
					"minimum": 1,
					"maximum": 5,
					"example": 5
				},
				"comment": {
					"type": "string",
					"maxLength": 2000
				}
			}
		},
		"services.PaymentSession": {
			"type": "object",
			"properties": {
				"booking_id": {
					"type": "string"
				},
				"payment_ref": {
					"type": "string"
				},
				"amount": {
					"type": "integer"
				},
				"currency": {
					"type": "string"
				},
				"payment_url": {
					"type": "string"
				},
				"qr_code": {
					"type": "string"
				},
				"expires_at": {
					"type": "string"
				}
			}
		},
		"models.Customer": {
			"type": "object",
			"required": [
				"email",
				"name",
				"phone"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				}
			}
		},
		"models.Booking": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"customer": {
					"$ref": "#/definitions/models.Customer"
				},
				"service_id": {
					"type": "string"
				},
				"technician_id": {
					"type": "string"
				},
				"scheduled_at": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"amount": {
					"type": "integer"
				},
				"currency": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"pending",
						"confirmed",
						"completed",
						"cancelled"
					]
				},
				"payment_status": {
					"type": "string",
					"enum": [
						"pending",
						"paid"
					]
				},
				"payment_ref": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"models.Stats": {
			"type": "object",
			"properties": {
				"totalBookings": {
					"type": "integer"
				},
				"pendingBookings": {
					"type": "integer"
				},
				"confirmedBookings": {
					"type": "integer"
				},
				"completedBookings": {
					"type": "integer"
				},
				"cancelledBookings": {
					"type": "integer"
				},
				"paidBookings": {
					"type": "integer"
				},
				"totalRevenue": {
					"type": "integer"
				}
			}
		},
		"models.Subservice": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"price": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				}
			}
		},
		"models.Service": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"icon": {
					"type": "string"
				},
				"price": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"borderColor": {
					"type": "string"
				},
				"subservices": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Subservice"
					}
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"models.Technician": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"specialization": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"experience": {
					"type": "integer"
				},
				"available": {
					"type": "boolean"
				},
				"rating": {
					"type": "number"
				},
				"reviewCount": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"models.Review": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"booking_id": {
					"type": "string"
				},
				"technician_id": {
					"type": "string"
				},
				"service_id": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"rating": {
					"type": "integer"
				},
				"comment": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the JWT.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "HomeFix Booking API",
	Description:      "Home-services booking backend: catalog, bookings, payments stub and admin stats",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
