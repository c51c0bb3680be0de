// Package docs registers the OpenAPI document served under /swagger.
//
// It mirrors the handler annotations; `go generate ./...` replaces it with
// the swag output.
package docs

//go:generate swag init -g cmd/api/main.go -d ../ -o . --parseInternal

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"termsOfService": "http://swagger.io/terms/",
		"contact": {
			"name": "API Support",
			"url": "http://www.swagger.io/support",
			"email": "support@swagger.io"
		},
		"license": {
			"name": "Apache 2.0",
			"url": "http://www.apache.org/licenses/LICENSE-2.0.html"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/ping": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Liveness probe",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK"
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Create an order",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CreateOrderRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"get": {
				"tags": [
					"orders"
				],
				"summary": "List orders, newest first",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "filter by status",
						"name": "status",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/response.OrderSummaryResponse"
							}
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}": {
			"get": {
				"tags": [
					"orders"
				],
				"description": "Notices list debounced responsible changes that could not be saved since the last read.",
				"summary": "Get an order with derived progress and timers",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"orders"
				],
				"summary": "Delete an order and release its busy markers",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}/status": {
			"patch": {
				"tags": [
					"orders"
				],
				"summary": "Move an order to another lifecycle status",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.UpdateStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/orders/{id}/stages/{stage}/timer": {
			"get": {
				"tags": [
					"stages"
				],
				"summary": "Current timer value",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.TimerResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}/stages/{stage}/timer/stream": {
			"get": {
				"tags": [
					"stages"
				],
				"summary": "Server-sent timer ticks",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}/stages/{stage}/progress": {
			"get": {
				"tags": [
					"stages"
				],
				"summary": "Stage progress bar",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StageProgressResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}/stages/{stage}/responsible": {
			"put": {
				"tags": [
					"stages"
				],
				"summary": "Assign the stage responsible",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.AssignRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"stages"
				],
				"summary": "Clear the stage responsible",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}/services/{type}/complete": {
			"post": {
				"tags": [
					"services"
				],
				"summary": "Complete a service",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.StageActionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/orders/{id}/services/{type}/reopen": {
			"post": {
				"tags": [
					"services"
				],
				"summary": "Reopen a service",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type",
						"name": "type",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}/services/{type}/responsible": {
			"put": {
				"tags": [
					"services"
				],
				"summary": "Assign the service responsible",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.AssignRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"services"
				],
				"summary": "Clear the service responsible",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type",
						"name": "type",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}/services/{type}/subtasks": {
			"post": {
				"tags": [
					"services"
				],
				"summary": "Add a sub-task",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.AddSubtaskRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/orders/{id}/services/{type}/subtasks/{subtask_id}": {
			"patch": {
				"tags": [
					"services"
				],
				"summary": "Select or complete a sub-task",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "sub-task id",
						"name": "subtask_id",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.PatchSubtaskRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/orders/{id}/services/{type}/progress": {
			"get": {
				"tags": [
					"services"
				],
				"summary": "Service checklist progress",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type",
						"name": "type",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ServiceProgressResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/employees": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "Roster with availability",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/response.EmployeeResponse"
							}
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/subtask-presets/{type}": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "Sub-task presets for a service type",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "service type",
						"name": "type",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/response.PresetResponse"
							}
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/pause-reasons": {
			"get": {
				"tags": [
					"catalog"
				],
				"summary": "Preset pause reasons",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "string"
							}
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/orders/{id}/stages/{stage}/start": {
			"post": {
				"tags": [
					"stages"
				],
				"summary": "Start a stage timer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.StageActionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/orders/{id}/stages/{stage}/pause": {
			"post": {
				"tags": [
					"stages"
				],
				"summary": "Pause a stage timer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.StageActionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/orders/{id}/stages/{stage}/resume": {
			"post": {
				"tags": [
					"stages"
				],
				"summary": "Resume a stage timer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.StageActionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/orders/{id}/stages/{stage}/complete": {
			"post": {
				"tags": [
					"stages"
				],
				"summary": "Complete a stage timer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.StageActionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/orders/{id}/stages/{stage}/reopen": {
			"post": {
				"tags": [
					"stages"
				],
				"summary": "Reopen a stage timer",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "stage",
						"name": "stage",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "service type (inspection stages and per-service retifica timers)",
						"name": "service_type",
						"in": "query"
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.StageActionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.OrderResponse"
						}
					},
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		}
	},
	"definitions": {
		"pkg.HTTPError": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"error": {
					"type": "object",
					"properties": {
						"code": {
							"type": "string"
						},
						"message": {
							"type": "string"
						}
					}
				}
			}
		},
		"request.CreateOrderRequest": {
			"type": "object",
			"required": [
				"id",
				"name"
			],
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"customer_id": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				},
				"opened_at": {
					"type": "string"
				},
				"expected_delivery": {
					"type": "string"
				},
				"services": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"type": {
								"type": "string"
							},
							"description": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"request.UpdateStatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"request.StageActionRequest": {
			"type": "object",
			"properties": {
				"responsible_id": {
					"type": "string"
				},
				"reason": {
					"type": "string"
				}
			}
		},
		"request.AssignRequest": {
			"type": "object",
			"required": [
				"employee_id"
			],
			"properties": {
				"employee_id": {
					"type": "string"
				},
				"debounce": {
					"type": "boolean"
				}
			}
		},
		"request.AddSubtaskRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"estimated_hours": {
					"type": "number"
				}
			}
		},
		"request.PatchSubtaskRequest": {
			"type": "object",
			"properties": {
				"completed": {
					"type": "boolean"
				},
				"selected": {
					"type": "boolean"
				}
			}
		},
		"response.TimerResponse": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"elapsed_ms": {
					"type": "integer"
				},
				"display": {
					"type": "string"
				}
			}
		},
		"response.StageProgressResponse": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"percentage": {
					"type": "integer"
				}
			}
		},
		"response.ServiceProgressResponse": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"percentage": {
					"type": "integer"
				},
				"completed": {
					"type": "boolean"
				},
				"completion_eligible": {
					"type": "boolean"
				}
			}
		},
		"response.SubtaskResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"selected": {
					"type": "boolean"
				},
				"completed": {
					"type": "boolean"
				},
				"estimated_hours": {
					"type": "number"
				}
			}
		},
		"response.ServiceResponse": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"stage": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"completed": {
					"type": "boolean"
				},
				"responsible_id": {
					"type": "string"
				},
				"responsible_name": {
					"type": "string"
				},
				"completion_date": {
					"type": "string"
				},
				"percentage": {
					"type": "integer"
				},
				"completion_eligible": {
					"type": "boolean"
				},
				"subtasks": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.SubtaskResponse"
					}
				}
			}
		},
		"response.PauseResponse": {
			"type": "object",
			"properties": {
				"start": {
					"type": "string"
				},
				"end": {
					"type": "string"
				},
				"reason": {
					"type": "string"
				}
			}
		},
		"response.StageResponse": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"stage": {
					"type": "string"
				},
				"service_type": {
					"type": "string"
				},
				"state": {
					"type": "string"
				},
				"percentage": {
					"type": "integer"
				},
				"completed": {
					"type": "boolean"
				},
				"started_at": {
					"type": "string"
				},
				"finished_at": {
					"type": "string"
				},
				"responsible_id": {
					"type": "string"
				},
				"responsible_name": {
					"type": "string"
				},
				"pauses": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.PauseResponse"
					}
				},
				"timer": {
					"$ref": "#/definitions/response.TimerResponse"
				}
			}
		},
		"response.OrderResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"customer_id": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"opened_at": {
					"type": "string"
				},
				"expected_delivery": {
					"type": "string"
				},
				"progress": {
					"type": "number"
				},
				"progress_percent": {
					"type": "integer"
				},
				"estimated_hours": {
					"type": "number"
				},
				"total_worked_ms": {
					"type": "integer"
				},
				"services": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.ServiceResponse"
					}
				},
				"stages": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.StageResponse"
					}
				},
				"notices": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.NoticeResponse"
					}
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"response.NoticeResponse": {
			"type": "object",
			"properties": {
				"target": {
					"type": "string"
				},
				"employee_id": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"at": {
					"type": "string"
				}
			}
		},
		"response.OrderSummaryResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"opened_at": {
					"type": "string"
				},
				"expected_delivery": {
					"type": "string"
				},
				"progress_percent": {
					"type": "integer"
				},
				"services": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"response.BusyResponse": {
			"type": "object",
			"properties": {
				"order_id": {
					"type": "string"
				},
				"stage": {
					"type": "string"
				},
				"service_type": {
					"type": "string"
				},
				"since": {
					"type": "string"
				}
			}
		},
		"response.EmployeeResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"specialties": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"availability": {
					"type": "string"
				},
				"busy_with": {
					"$ref": "#/definitions/response.BusyResponse"
				}
			}
		},
		"response.PresetResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"estimated_hours": {
					"type": "number"
				},
				"position": {
					"type": "integer"
				}
			}
		}
	},
	"securityDefinitions": {
		"Bearer": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Retífica OS API",
	Description:      "Shop-floor progress for engine rebuild orders: stage timers, sub-task checklists and responsible assignment, backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
