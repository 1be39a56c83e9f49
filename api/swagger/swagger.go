package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "PSUSphere API",
        "description": "Administration of colleges, programs, students, organizations and memberships.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "in": "header",
            "name": "Authorization"
        }
    },
    "tags": [
        {
            "name": "Authentication"
        },
        {
            "name": "Home"
        },
        {
            "name": "Colleges"
        },
        {
            "name": "Programs"
        },
        {
            "name": "Students"
        },
        {
            "name": "Organizations"
        },
        {
            "name": "Org Members"
        }
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"summary": "Readiness check", "responses": {"200": {"description": "Ready"}, "503": {"description": "Database unreachable"}}}
        },
        "/metrics": {
            "get": {"summary": "Prometheus metrics", "produces": ["text/plain"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/auth/login": {
            "post": {"tags": ["Authentication"], "summary": "Authenticate administrator", "parameters": [{"name": "next", "in": "query", "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "429": {"description": "Too many attempts", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/auth/logout": {
            "post": {"tags": ["Authentication"], "summary": "End the browser session", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/auth/me": {
            "get": {"tags": ["Authentication"], "summary": "Current administrator", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "No session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/": {
            "get": {"tags": ["Home"], "summary": "Landing page", "description": "Every organization, unpaginated, plus record counts per entity.", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "No session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/colleges": {
            "get": {"tags": ["Colleges"], "summary": "List colleges", "parameters": [{"name": "q", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "No session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Colleges"], "summary": "Create college", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CollegeRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/colleges/export": {
            "get": {"tags": ["Colleges"], "summary": "Export colleges", "produces": ["text/csv", "application/pdf"], "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}, {"name": "q", "in": "query", "type": "string"}], "responses": {"200": {"description": "File download"}, "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/colleges/{id}": {
            "get": {"tags": ["Colleges"], "summary": "Get college detail", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Colleges"], "summary": "Update college", "description": "Omitted fields keep their stored value.", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CollegePatch"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Colleges"], "summary": "Delete college", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Still referenced", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/programs": {
            "get": {"tags": ["Programs"], "summary": "List programs", "parameters": [{"name": "q", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "No session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Programs"], "summary": "Create program", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProgramRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/programs/export": {
            "get": {"tags": ["Programs"], "summary": "Export programs", "produces": ["text/csv", "application/pdf"], "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}, {"name": "q", "in": "query", "type": "string"}], "responses": {"200": {"description": "File download"}, "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/programs/{id}": {
            "get": {"tags": ["Programs"], "summary": "Get program detail", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Programs"], "summary": "Update program", "description": "Omitted fields keep their stored value.", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProgramPatch"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Programs"], "summary": "Delete program", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Still referenced", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/students": {
            "get": {"tags": ["Students"], "summary": "List students", "parameters": [{"name": "q", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "No session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Students"], "summary": "Create student", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/students/export": {
            "get": {"tags": ["Students"], "summary": "Export students", "produces": ["text/csv", "application/pdf"], "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}, {"name": "q", "in": "query", "type": "string"}], "responses": {"200": {"description": "File download"}, "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/students/{id}": {
            "get": {"tags": ["Students"], "summary": "Get student detail", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Students"], "summary": "Update student", "description": "Omitted fields keep their stored value.", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentPatch"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Students"], "summary": "Delete student", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Still referenced", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/organizations": {
            "get": {"tags": ["Organizations"], "summary": "List organizations", "parameters": [{"name": "q", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "No session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Organizations"], "summary": "Create organization", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrganizationRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/organizations/export": {
            "get": {"tags": ["Organizations"], "summary": "Export organizations", "produces": ["text/csv", "application/pdf"], "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}, {"name": "q", "in": "query", "type": "string"}], "responses": {"200": {"description": "File download"}, "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/organizations/{id}": {
            "get": {"tags": ["Organizations"], "summary": "Get organization detail", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Organizations"], "summary": "Update organization", "description": "Omitted fields keep their stored value.", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrganizationPatch"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Organizations"], "summary": "Delete organization", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Still referenced", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/org-members": {
            "get": {"tags": ["Org Members"], "summary": "List org members", "parameters": [{"name": "q", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "No session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Org Members"], "summary": "Create organization member", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrgMemberRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/org-members/export": {
            "get": {"tags": ["Org Members"], "summary": "Export org members", "produces": ["text/csv", "application/pdf"], "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}, {"name": "q", "in": "query", "type": "string"}], "responses": {"200": {"description": "File download"}, "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/v1/org-members/{id}": {
            "get": {"tags": ["Org Members"], "summary": "Get organization member detail", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Org Members"], "summary": "Update organization member", "description": "Omitted fields keep their stored value.", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrgMemberPatch"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Org Members"], "summary": "Delete organization member", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Still referenced", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}},
            "required": ["username", "password"]
        },
        "CollegeRequest": {
            "type": "object",
            "properties": {"college_name": {"type": "string", "maxLength": 150}},
            "required": ["college_name"]
        },
        "CollegePatch": {
            "type": "object",
            "properties": {"college_name": {"type": "string"}}
        },
        "ProgramRequest": {
            "type": "object",
            "properties": {"prog_name": {"type": "string", "maxLength": 150}, "college_id": {"type": "string", "format": "uuid"}},
            "required": ["prog_name", "college_id"]
        },
        "ProgramPatch": {
            "type": "object",
            "properties": {"prog_name": {"type": "string"}, "college_id": {"type": "string"}}
        },
        "StudentRequest": {
            "type": "object",
            "properties": {"student_id": {"type": "string", "maxLength": 15}, "firstname": {"type": "string", "maxLength": 25}, "lastname": {"type": "string", "maxLength": 25}, "middlename": {"type": "string", "maxLength": 25}, "program_id": {"type": "string", "format": "uuid"}},
            "required": ["student_id", "firstname", "lastname", "middlename", "program_id"]
        },
        "StudentPatch": {
            "type": "object",
            "properties": {"student_id": {"type": "string"}, "firstname": {"type": "string"}, "lastname": {"type": "string"}, "middlename": {"type": "string"}, "program_id": {"type": "string"}}
        },
        "OrganizationRequest": {
            "type": "object",
            "properties": {"name": {"type": "string", "maxLength": 250}, "description": {"type": "string", "maxLength": 250}, "college_id": {"type": "string", "format": "uuid"}},
            "required": ["name", "description", "college_id"]
        },
        "OrganizationPatch": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "college_id": {"type": "string"}}
        },
        "OrgMemberRequest": {
            "type": "object",
            "properties": {"student_id": {"type": "string", "format": "uuid"}, "organization_id": {"type": "string", "format": "uuid"}, "date_joined": {"type": "string", "format": "date"}},
            "required": ["student_id", "organization_id", "date_joined"]
        },
        "OrgMemberPatch": {
            "type": "object",
            "properties": {"student_id": {"type": "string"}, "organization_id": {"type": "string"}, "date_joined": {"type": "string"}}
        },
        "Pagination": {
            "type": "object",
            "properties": {"page": {"type": "integer"}, "page_size": {"type": "integer"}, "total_count": {"type": "integer"}, "total_pages": {"type": "integer"}, "has_next": {"type": "boolean"}, "has_previous": {"type": "boolean"}}
        },
        "APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}, "details": {"type": "object", "additionalProperties": {"type": "string"}}}
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {"data": {"type": "object"}, "error": {"$ref": "#/definitions/APIError"}, "pagination": {"$ref": "#/definitions/Pagination"}, "meta": {"type": "object"}}
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
