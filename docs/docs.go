// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/alternatives": {
            "get": {
                "description": "Find other sections of the same course meeting in the same first slot",
                "produces": ["application/json"],
                "tags": ["alternatives"],
                "summary": "Get alternative sections",
                "parameters": [
                    {"type": "string", "description": "Course code", "name": "code", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.AlternativeSet"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/alternatives/timetable": {
            "post": {
                "description": "Replace each physical liberal section with the next-ranked same-area section that fits; majors and remote sections are kept",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["alternatives"],
                "summary": "Recommend an alternative timetable",
                "parameters": [
                    {"description": "Codes of the current timetable", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.RecommendRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.Timetable"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/timetable": {
            "post": {
                "description": "Greedily pick major and liberal sections that meet the credit targets without overlapping. A shortfall is reported in meta.success, not as an error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["timetable"],
                "summary": "Generate a timetable",
                "parameters": [
                    {"description": "Selection request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SelectionRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.GenerationResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        }
    },
    "definitions": {
        "domain.AlternativeSet": {
            "type": "object",
            "properties": {
                "alternatives": {"type": "array", "items": {"$ref": "#/definitions/domain.Section"}},
                "current": {"$ref": "#/definitions/domain.Section"}
            }
        },
        "domain.GenerationMeta": {
            "type": "object",
            "properties": {
                "actualLiberalCredits": {"type": "integer"},
                "actualMajorCredits": {"type": "integer"},
                "areaDistribution": {"type": "object", "additionalProperties": {"type": "integer"}},
                "requestedLiberalCredits": {"type": "integer"},
                "requestedMajorCredits": {"type": "integer"},
                "success": {"type": "boolean"}
            }
        },
        "domain.GenerationResult": {
            "type": "object",
            "properties": {
                "meta": {"$ref": "#/definitions/domain.GenerationMeta"},
                "offline": {"$ref": "#/definitions/domain.RoleLists"},
                "online": {"$ref": "#/definitions/domain.RoleLists"}
            }
        },
        "domain.MeetingTime": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "end": {"type": "string"},
                "start": {"type": "string"}
            }
        },
        "domain.RecommendRequest": {
            "type": "object",
            "required": ["codes"],
            "properties": {
                "codes": {"type": "array", "minItems": 1, "items": {"type": "string"}}
            }
        },
        "domain.RoleLists": {
            "type": "object",
            "properties": {
                "liberal": {"type": "array", "items": {"$ref": "#/definitions/domain.Section"}},
                "major": {"type": "array", "items": {"$ref": "#/definitions/domain.Section"}}
            }
        },
        "domain.Section": {
            "type": "object",
            "properties": {
                "area": {"type": "string"},
                "code": {"type": "string"},
                "credit": {"type": "integer"},
                "department": {"type": "string"},
                "grade": {"type": "integer"},
                "meetingTimes": {"type": "array", "items": {"$ref": "#/definitions/domain.MeetingTime"}},
                "name": {"type": "string"},
                "ranking": {"type": "integer"},
                "semester": {"type": "integer"},
                "type": {"type": "string"},
                "weight": {"type": "integer"}
            }
        },
        "domain.SelectionRequest": {
            "type": "object",
            "required": ["department", "grade", "liberalCredits", "majorCredits", "semester"],
            "properties": {
                "department": {"type": "string"},
                "grade": {"type": "integer", "minimum": 1},
                "liberalAreas": {"type": "array", "items": {"type": "string"}},
                "liberalCredits": {"type": "integer", "minimum": 0},
                "majorCredits": {"type": "integer", "minimum": 0},
                "semester": {"type": "integer", "minimum": 1}
            }
        },
        "domain.Timetable": {
            "type": "object",
            "properties": {
                "offline": {"$ref": "#/definitions/domain.RoleLists"},
                "online": {"$ref": "#/definitions/domain.RoleLists"}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{"https", "http"},
	Title:            "KMU Timetable API",
	Description:      "Generates weekly class timetables and recommends alternative sections",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
