// Package docs contiene la especificación OpenAPI servida en /swagger.
// Se regenera con: swag init -g cmd/api/main.go
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
		"/signup": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Registrar usuario",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/users.userResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"502": {
						"description": "storage error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"parameters": [
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/users.signUpRequest"
						}
					}
				]
			}
		},
		"/signin": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Iniciar sesión",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/users.tokenPairResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/users.signInRequest"
						}
					}
				]
			}
		},
		"/token/refresh": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Renovar access token",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/users.accessResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/users.refreshRequest"
						}
					}
				]
			}
		},
		"/profile": {
			"get": {
				"tags": [
					"profile"
				],
				"summary": "Ver perfil",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/users.userResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"profile"
				],
				"summary": "Editar perfil",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/users.userResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"502": {
						"description": "storage error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/users.updateProfileRequest"
						}
					}
				]
			}
		},
		"/pets": {
			"get": {
				"tags": [
					"pets"
				],
				"summary": "Listar mascotas",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/pets.petResponse"
							}
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"pets"
				],
				"summary": "Crear mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pets.petResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"502": {
						"description": "storage error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/pets.petRequest"
						}
					}
				]
			}
		},
		"/pets/{petID}": {
			"get": {
				"tags": [
					"pets"
				],
				"summary": "Ver mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pets.petResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "petID",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"pets"
				],
				"summary": "Editar mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pets.petResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"502": {
						"description": "storage error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "petID",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/pets.petRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"pets"
				],
				"summary": "Borrar mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "petID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/calendar": {
			"get": {
				"tags": [
					"calendar"
				],
				"summary": "Listar eventos",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/calendar.eventResponse"
							}
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "pet_id",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"calendar"
				],
				"summary": "Crear evento",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/calendar.eventResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/calendar.eventRequest"
						}
					}
				]
			}
		},
		"/calendar/{eventID}": {
			"get": {
				"tags": [
					"calendar"
				],
				"summary": "Ver evento",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/calendar.eventResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "eventID",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"calendar"
				],
				"summary": "Editar evento",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/calendar.eventResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "eventID",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/calendar.eventRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"calendar"
				],
				"summary": "Borrar evento",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "eventID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/journal": {
			"get": {
				"tags": [
					"journal"
				],
				"summary": "Listar entradas",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/journal.entryResponse"
							}
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "pet_id",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"journal"
				],
				"summary": "Crear entrada",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/journal.entryResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/journal.entryRequest"
						}
					}
				]
			}
		},
		"/journal/{entryID}": {
			"get": {
				"tags": [
					"journal"
				],
				"summary": "Ver entrada",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/journal.entryResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "entryID",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"journal"
				],
				"summary": "Editar entrada",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/journal.entryResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "entryID",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/journal.entryRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"journal"
				],
				"summary": "Borrar entrada",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "entryID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/partners": {
			"get": {
				"tags": [
					"partners"
				],
				"summary": "Listar partners",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/partners.partnerResponse"
							}
						}
					}
				}
			}
		},
		"/partners/watchlist": {
			"get": {
				"tags": [
					"partners"
				],
				"summary": "Ver watchlist",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/partners.watchlistResponse"
							}
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"partners"
				],
				"summary": "Agregar a watchlist",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/partners.watchlistResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/partners.watchlistRequest"
						}
					}
				]
			}
		},
		"/partners/watchlist/{partnerID}": {
			"delete": {
				"tags": [
					"partners"
				],
				"summary": "Quitar de watchlist",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "partnerID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/forum": {
			"get": {
				"tags": [
					"forum"
				],
				"summary": "Listar posts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/forum.postResponse"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"forum"
				],
				"summary": "Crear post",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/forum.postResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"502": {
						"description": "storage error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/forum.postRequest"
						}
					}
				]
			}
		},
		"/forum/{postID}": {
			"get": {
				"tags": [
					"forum"
				],
				"summary": "Ver post",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/forum.postResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "postID",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"forum"
				],
				"summary": "Editar post",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/forum.postResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"502": {
						"description": "storage error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "postID",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/forum.postRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"forum"
				],
				"summary": "Borrar post",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "postID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/forum/{postID}/comments": {
			"get": {
				"tags": [
					"forum"
				],
				"summary": "Listar comentarios",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/forum.commentResponse"
							}
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "postID",
						"in": "path",
						"required": true
					}
				]
			},
			"post": {
				"tags": [
					"forum"
				],
				"summary": "Comentar",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/forum.commentResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "postID",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/forum.commentRequest"
						}
					}
				]
			}
		},
		"/forum/{postID}/comments/{commentID}": {
			"put": {
				"tags": [
					"forum"
				],
				"summary": "Editar comentario",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/forum.commentResponse"
						}
					},
					"400": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "postID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "commentID",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "payload",
						"required": true,
						"schema": {
							"$ref": "#/definitions/forum.commentRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"forum"
				],
				"summary": "Borrar comentario",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "postID",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "commentID",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/forum/{postID}/like": {
			"post": {
				"tags": [
					"forum"
				],
				"summary": "Alternar like",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/forum.likeResponse"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/web.ErrorResponse"
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
						"name": "postID",
						"in": "path",
						"required": true
					}
				]
			}
		}
	},
	"definitions": {
		"web.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"fields": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"users.signUpRequest": {
			"type": "object",
			"properties": {
				"full_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"users.signInRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"users.refreshRequest": {
			"type": "object",
			"properties": {
				"refresh": {
					"type": "string"
				}
			}
		},
		"users.updateProfileRequest": {
			"type": "object",
			"properties": {
				"full_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"users.userResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"photo_url": {
					"type": "string",
					"x-nullable": true
				}
			}
		},
		"users.tokenPairResponse": {
			"type": "object",
			"properties": {
				"access": {
					"type": "string"
				},
				"refresh": {
					"type": "string"
				},
				"access_expires_at": {
					"type": "string",
					"format": "date-time"
				},
				"refresh_expires_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"users.accessResponse": {
			"type": "object",
			"properties": {
				"access": {
					"type": "string"
				}
			}
		},
		"pets.petRequest": {
			"type": "object",
			"properties": {
				"pet_name": {
					"type": "string"
				},
				"breed": {
					"type": "string"
				},
				"sex": {
					"type": "string",
					"enum": [
						"male",
						"female",
						"unknown"
					]
				},
				"birthday": {
					"type": "string"
				}
			}
		},
		"pets.petResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"pet_name": {
					"type": "string"
				},
				"breed": {
					"type": "string"
				},
				"sex": {
					"type": "string",
					"enum": [
						"male",
						"female",
						"unknown"
					]
				},
				"birthday": {
					"type": "string",
					"x-nullable": true
				},
				"photo_url": {
					"type": "string",
					"x-nullable": true
				}
			}
		},
		"calendar.eventRequest": {
			"type": "object",
			"properties": {
				"pet_id": {
					"type": "string"
				},
				"event_type": {
					"type": "string"
				},
				"event_title": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"start_time": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"completed": {
					"type": "boolean"
				}
			}
		},
		"calendar.eventResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"pet_id": {
					"type": "string"
				},
				"event_type": {
					"type": "string"
				},
				"event_title": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"start_time": {
					"type": "string",
					"x-nullable": true
				},
				"description": {
					"type": "string"
				},
				"completed": {
					"type": "boolean"
				}
			}
		},
		"journal.entryRequest": {
			"type": "object",
			"properties": {
				"pet_id": {
					"type": "string"
				},
				"entry_type": {
					"type": "string"
				},
				"entry_title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"journal.entryResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"pet_id": {
					"type": "string"
				},
				"entry_type": {
					"type": "string"
				},
				"entry_title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"partners.partnerResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"site_name": {
					"type": "string"
				},
				"site_url": {
					"type": "string"
				},
				"partner_type": {
					"type": "string"
				},
				"rating": {
					"type": "number"
				},
				"photo_url": {
					"type": "string",
					"x-nullable": true
				}
			}
		},
		"partners.watchlistRequest": {
			"type": "object",
			"properties": {
				"partner_id": {
					"type": "string"
				}
			}
		},
		"partners.watchlistResponse": {
			"type": "object",
			"properties": {
				"partner_id": {
					"type": "string"
				},
				"added_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"forum.postRequest": {
			"type": "object",
			"properties": {
				"post_text": {
					"type": "string"
				}
			}
		},
		"forum.commentRequest": {
			"type": "object",
			"properties": {
				"comment_text": {
					"type": "string"
				}
			}
		},
		"forum.commentResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"user_full": {
					"type": "string"
				},
				"comment_text": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"forum.postResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"user_full": {
					"type": "string"
				},
				"user_photo": {
					"type": "string",
					"x-nullable": true
				},
				"post_text": {
					"type": "string"
				},
				"photo_url": {
					"type": "string",
					"x-nullable": true
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"likes_count": {
					"type": "integer"
				},
				"has_liked": {
					"type": "boolean"
				},
				"comments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/forum.commentResponse"
					}
				}
			}
		},
		"forum.likeResponse": {
			"type": "object",
			"properties": {
				"liked": {
					"type": "boolean"
				},
				"likes_count": {
					"type": "integer"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Bearer {access token}",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Care Service API",
	Description:      "Backend de cuidado de mascotas: usuarios, mascotas, calendario, diario, partners y foro.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
