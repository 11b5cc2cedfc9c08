// Package docs contém o documento OpenAPI servido em /swagger/.
// Gerado a partir das anotações dos handlers (swag init -g cmd/main.go).
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
		"/inventory": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"inventory"
				],
				"summary": "Lista todas as cervejas",
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/beer.BeerResponse"
							}
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"inventory"
				],
				"summary": "Cadastra uma cerveja",
				"description": "Cria uma cerveja no inventário. O nome deve ser único.",
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
						"description": "Dados da cerveja",
						"name": "beer",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/beer.BeerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/beer.BeerResponse"
						}
					},
					"400": {
						"description": "Payload inválido",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"409": {
						"description": "Nome já registrado",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					}
				}
			}
		},
		"/inventory/{name}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"inventory"
				],
				"summary": "Busca uma cerveja pelo nome",
				"parameters": [
					{
						"type": "string",
						"description": "Nome exato da cerveja",
						"name": "name",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/beer.BeerResponse"
						}
					},
					"404": {
						"description": "Cerveja não encontrada",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					}
				}
			}
		},
		"/inventory/{id}": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"inventory"
				],
				"summary": "Substitui os dados de uma cerveja",
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
						"description": "ID da cerveja",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Dados da cerveja",
						"name": "beer",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/beer.BeerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/beer.BeerResponse"
						}
					},
					"400": {
						"description": "Payload inválido",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"404": {
						"description": "Cerveja não encontrada",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"409": {
						"description": "Nome pertence a outra cerveja",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"inventory"
				],
				"summary": "Remove uma cerveja",
				"description": "Remove a cerveja e devolve os dados que ela tinha no momento da remoção.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID da cerveja",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/beer.BeerResponse"
						}
					},
					"404": {
						"description": "Cerveja não encontrada",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					}
				}
			}
		},
		"/inventory/{id}/increment": {
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"inventory"
				],
				"summary": "Incrementa o estoque",
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
						"description": "ID da cerveja",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Unidades (0 a 100)",
						"name": "quantity",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.QuantityRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/beer.BeerResponse"
						}
					},
					"400": {
						"description": "Payload inválido ou capacidade máxima excedida",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"404": {
						"description": "Cerveja não encontrada",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					}
				}
			}
		},
		"/inventory/{id}/decrement": {
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"inventory"
				],
				"summary": "Decrementa o estoque",
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
						"description": "ID da cerveja",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Unidades (0 a 100)",
						"name": "quantity",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.QuantityRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/beer.BeerResponse"
						}
					},
					"400": {
						"description": "Payload inválido ou estoque ficaria negativo",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"404": {
						"description": "Cerveja não encontrada",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/register": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Registra um novo usuário",
				"description": "Cria um novo usuário, hasheia a senha e salva no banco de dados. O primeiro usuário é admin.",
				"parameters": [
					{
						"description": "Credenciais de registro (email e senha)",
						"name": "registration",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.UserRegistration"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Usuário criado com sucesso",
						"schema": {
							"$ref": "#/definitions/domain.User"
						}
					},
					"400": {
						"description": "Payload inválido",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"409": {
						"description": "Email já cadastrado",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"500": {
						"description": "Erro interno do servidor",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Autentica um usuário e retorna um JWT",
				"parameters": [
					{
						"description": "Credenciais do usuário (email e senha)",
						"name": "login",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/user.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Token JWT emitido",
						"schema": {
							"$ref": "#/definitions/user.LoginResponse"
						}
					},
					"400": {
						"description": "Payload inválido",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"401": {
						"description": "Credenciais inválidas",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					},
					"500": {
						"description": "Erro interno do servidor",
						"schema": {
							"$ref": "#/definitions/domain.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"beer.BeerRequest": {
			"type": "object",
			"properties": {
				"brand": {
					"type": "string",
					"example": "Ambev"
				},
				"max_quantity": {
					"type": "integer",
					"example": 50
				},
				"name": {
					"type": "string",
					"example": "Brahma"
				},
				"quantity": {
					"type": "integer",
					"example": 10
				},
				"type": {
					"type": "string",
					"example": "LAGER"
				}
			}
		},
		"beer.BeerResponse": {
			"type": "object",
			"properties": {
				"brand": {
					"type": "string",
					"example": "Ambev"
				},
				"id": {
					"type": "string",
					"example": "7f1c1a8e-3d4b-4c55-9e0a-1b2c3d4e5f60"
				},
				"max_quantity": {
					"type": "integer",
					"example": 50
				},
				"name": {
					"type": "string",
					"example": "Brahma"
				},
				"quantity": {
					"type": "integer",
					"example": 10
				},
				"type": {
					"type": "string",
					"example": "LAGER"
				},
				"type_description": {
					"type": "string",
					"example": "Lager"
				}
			}
		},
		"domain.ErrorResponse": {
			"type": "object",
			"properties": {
				"category": {
					"type": "string",
					"example": "NOT_FOUND"
				},
				"code": {
					"type": "integer",
					"example": 404
				},
				"message": {
					"type": "string",
					"example": "Recurso não encontrado: cerveja 'Heineken'"
				}
			}
		},
		"domain.QuantityRequest": {
			"type": "object",
			"properties": {
				"quantity": {
					"type": "integer",
					"example": 10
				}
			}
		},
		"domain.User": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"domain.UserRegistration": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "operador@beerstock.dev"
				},
				"password": {
					"type": "string",
					"example": "s3nh4-f0rte"
				}
			}
		},
		"user.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "operador@beerstock.dev"
				},
				"password": {
					"type": "string",
					"example": "s3nh4-f0rte"
				}
			}
		},
		"user.LoginResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Informe \"Bearer <token>\"",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo guarda as informações exportadas do documento.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BeerStock API",
	Description:      "Inventário de cervejas com unicidade por nome e limite de estoque.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
