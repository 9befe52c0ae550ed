package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Samadhaan Complaint API",
    "description": "Complaint submission, triage and statistics backend",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/api/health": {
      "get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}
    },
    "/api/complaints": {
      "post": {"tags": ["complaints"], "summary": "Submit a complaint", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}}},
      "get": {"tags": ["complaints"], "summary": "List complaints (owner-scoped unless admin)", "responses": {"200": {"description": "OK"}}}
    },
    "/api/complaints/my": {
      "get": {"tags": ["complaints"], "summary": "List own complaints", "responses": {"200": {"description": "OK"}}}
    },
    "/api/complaints/{id}": {
      "get": {"tags": ["complaints"], "summary": "Get one complaint", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not found"}}}
    },
    "/api/complaints/{id}/status": {
      "patch": {"tags": ["complaints"], "summary": "Update complaint status (admin)", "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}, "404": {"description": "Not found"}}}
    },
    "/api/stats/total": {"get": {"tags": ["stats"], "summary": "Total complaints", "responses": {"200": {"description": "OK"}}}},
    "/api/stats/pending": {"get": {"tags": ["stats"], "summary": "Pending complaints", "responses": {"200": {"description": "OK"}}}},
    "/api/stats/resolved": {"get": {"tags": ["stats"], "summary": "Resolved complaints", "responses": {"200": {"description": "OK"}}}},
    "/api/stats/category-distribution": {"get": {"tags": ["stats"], "summary": "Category distribution", "responses": {"200": {"description": "OK"}}}},
    "/api/stats/status-distribution": {"get": {"tags": ["stats"], "summary": "Status distribution", "responses": {"200": {"description": "OK"}}}},
    "/api/stats/all": {"get": {"tags": ["stats"], "summary": "Combined statistics", "responses": {"200": {"description": "OK"}}}},
    "/api/export/csv": {"get": {"tags": ["export"], "summary": "Export complaints as CSV", "responses": {"200": {"description": "OK"}}}},
    "/api/profile/me": {"get": {"tags": ["profile"], "summary": "Current user profile", "responses": {"200": {"description": "OK"}}}},
    "/api/profile/update": {"put": {"tags": ["profile"], "summary": "Update profile", "responses": {"200": {"description": "OK"}}}},
    "/api/profile/change-password": {"put": {"tags": ["profile"], "summary": "Change password", "responses": {"200": {"description": "OK"}}}}
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
