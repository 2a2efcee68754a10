// Package docs Route Suggestion Service API.
//
// Сгенерировано swag по аннотациям в cmd/api и internal/delivery/http/handler.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/points": {
            "get": {
                "description": "Возвращает источник GeoJSON со всеми местами каталога для добавления на карту",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Все места каталога",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.GeoJSONSource"}
                    }
                }
            }
        },
        "/filter": {
            "get": {
                "description": "Возвращает места, у которых есть хотя бы один из интересов и совпадает запрошенный темп и компания",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Фильтр мест по интересам",
                "parameters": [
                    {"type": "string", "description": "Маска интересов", "name": "interests", "in": "query"},
                    {"type": "string", "description": "Маска пожеланий", "name": "wishes", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Place"}}
                    }
                }
            }
        },
        "/id": {
            "get": {
                "description": "Возвращает номера установленных битов маски по возрастанию",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Разбор маски",
                "parameters": [
                    {"type": "string", "description": "Маска", "name": "of", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"type": "integer"}}
                    }
                }
            }
        },
        "/route": {
            "get": {
                "description": "Подбирает места по интересам и пожеланиям, упорядочивает их от точки входа\nи возвращает ссылку на Mapbox Directions API. Если подходящих мест нет, ok=false.",
                "produces": ["application/json"],
                "tags": ["Route"],
                "summary": "Построение маршрута",
                "parameters": [
                    {"type": "string", "description": "Маска интересов", "name": "interests", "in": "query"},
                    {"type": "string", "description": "Маска пожеланий", "name": "wishes", "in": "query"},
                    {"type": "string", "description": "Токен Mapbox", "name": "mapToken", "in": "query"},
                    {"type": "string", "description": "Токен Mapbox (старое имя)", "name": "mapboxgl-token", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.RouteResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/utils.ErrorResponse"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/utils.ErrorResponse"}
                    }
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "description": "Возвращает размер каталога и состояние подключенных зависимостей",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка состояния",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.HealthResponse"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/dto.HealthResponse"}
                    }
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "description": "Возвращает количество построенных маршрутов, разбивку по способу передвижения\nи самые посещаемые места",
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Статистика маршрутов",
                "parameters": [
                    {"type": "integer", "description": "Количество мест в топе (1-100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/utils.SuccessResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.StatsResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/utils.ErrorResponse"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/utils.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Place": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "coordinates": {"type": "array", "items": {"type": "number"}},
                "title": {"type": "string"},
                "title_short": {"type": "string"},
                "color": {"type": "string"},
                "icon": {"type": "string"},
                "interests": {"type": "integer"},
                "wishes": {"type": "integer"}
            }
        },
        "domain.PointGeometry": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "coordinates": {"type": "array", "items": {"type": "number"}}
            }
        },
        "domain.FeatureProperties": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "title_short": {"type": "string"},
                "color": {"type": "string"},
                "icon": {"type": "string"},
                "interests": {"type": "integer"},
                "wishes": {"type": "integer"}
            }
        },
        "domain.Feature": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "id": {"type": "string"},
                "geometry": {"$ref": "#/definitions/domain.PointGeometry"},
                "properties": {"$ref": "#/definitions/domain.FeatureProperties"}
            }
        },
        "domain.FeatureCollection": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "features": {"type": "array", "items": {"$ref": "#/definitions/domain.Feature"}}
            }
        },
        "domain.GeoJSONSource": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "data": {"$ref": "#/definitions/domain.FeatureCollection"}
            }
        },
        "domain.PlaceVisits": {
            "type": "object",
            "properties": {
                "place_id": {"type": "string"},
                "visits": {"type": "integer"}
            }
        },
        "domain.RouteStatistics": {
            "type": "object",
            "properties": {
                "total_routes": {"type": "integer"},
                "by_movement": {"type": "object", "additionalProperties": {"type": "integer"}},
                "top_places": {"type": "array", "items": {"$ref": "#/definitions/domain.PlaceVisits"}},
                "avg_distance_km": {"type": "number"},
                "last_updated": {"type": "string"}
            }
        },
        "dto.RouteResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "movement": {"type": "string"},
                "link": {"type": "string"},
                "places": {"type": "object"}
            }
        },
        "dto.CatalogHealth": {
            "type": "object",
            "properties": {
                "places": {"type": "integer"},
                "entry_points": {"type": "integer"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "catalog": {"$ref": "#/definitions/dto.CatalogHealth"},
                "dependencies": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.StatsResponse": {
            "type": "object",
            "properties": {
                "stats": {"$ref": "#/definitions/domain.RouteStatistics"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Route Suggestion Service API",
	Description:      "Сервис подбора пешеходных и велосипедных маршрутов по фиксированному каталогу мест.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
