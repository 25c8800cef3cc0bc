// Package apitest runs an in-memory fake of the housing backend for tests.
// It deliberately reproduces the real server's envelope inconsistency: each
// resource list comes back in a different shape (bare array, data array,
// resource-keyed, nested under data), and some entities carry the legacy
// "_id" identifier. Tests exercising the normalizer and stores get the wire
// behaviour the production client actually has to tolerate.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
)

type entity = map[string]any

// Server is the fake backend. Mutate the exported fields before issuing
// requests; they are guarded by mu for the handlers' sake.
type Server struct {
	URL   string
	Token string

	mu          sync.Mutex
	nextID      int
	maintenance []entity
	invoices    []entity
	items       []entity
	orders      []entity
	users       []entity

	// failing holds resource paths that answer 500 until cleared, for
	// partial-hydration tests.
	failing map[string]bool

	srv *httptest.Server
}

// New starts the fake backend with seeded fixtures. Callers must Close it.
func New() *Server {
	s := &Server{
		Token:   "test-token",
		failing: map[string]bool{},
	}
	s.seed()

	e := echo.New()
	e.HideBanner = true

	e.HEAD("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/auth/login", s.login)
	e.POST("/auth/logout", s.ok)
	e.GET("/auth/me", s.auth(s.me))

	e.GET("/maintenance", s.auth(s.listMaintenance))
	e.POST("/maintenance", s.auth(s.create(&s.maintenance, "MNT")))
	e.PUT("/maintenance/:id/status", s.auth(s.setStatus(&s.maintenance)))

	e.GET("/invoices", s.auth(s.listInvoices))
	e.PUT("/invoices/:id/status", s.auth(s.setStatus(&s.invoices)))

	e.GET("/grocery/items", s.auth(s.listItems))
	e.POST("/grocery/items", s.auth(s.create(&s.items, "GRC")))
	e.PUT("/grocery/items/:id", s.auth(s.patch(&s.items)))
	e.PUT("/grocery/items/:id/stock", s.auth(s.patch(&s.items)))
	e.DELETE("/grocery/items/:id", s.auth(s.remove(&s.items)))

	e.GET("/grocery/orders", s.auth(s.listOrders))
	e.POST("/grocery/orders", s.auth(s.create(&s.orders, "ORD")))
	e.PUT("/grocery/orders/:id/status", s.auth(s.setStatus(&s.orders)))

	e.GET("/users", s.auth(s.listUsers))

	e.POST("/pdf/invoice/:id", s.auth(s.pdf))
	e.POST("/pdf/order/:id", s.auth(s.pdf))

	s.srv = httptest.NewServer(e)
	s.URL = s.srv.URL
	return s
}

func (s *Server) Close() { s.srv.Close() }

// Fail makes every request to the given resource path prefix answer 500.
func (s *Server) Fail(path string) {
	s.mu.Lock()
	s.failing[path] = true
	s.mu.Unlock()
}

func (s *Server) seed() {
	s.maintenance = []entity{
		{"id": "MNT-1", "roomNumber": "204", "type": "plumbing", "description": "leaking tap", "priority": "high", "status": "pending"},
	}
	// Legacy deployment shape: Mongo _id, no roomNumber.
	s.invoices = []entity{
		{"_id": "INV-001", "invoiceNumber": "INV-001", "userId": "204", "amount": 350.0, "type": "rent", "status": "pending", "dueDate": "2025-09-01"},
		{"_id": "INV-002", "invoiceNumber": "INV-002", "userId": "310", "amount": 42.5, "type": "utilities", "status": "pending", "dueDate": "2025-09-01"},
	}
	s.items = []entity{
		{"id": "GRC-1", "name": "Rice 5kg", "category": "staples", "price": 12.0, "stock": 40},
		{"id": "GRC-2", "name": "Eggs (12)", "category": "dairy", "price": 3.5, "stock": 12},
	}
	s.orders = []entity{
		{"id": "ORD-1", "roomNumber": "204", "items": []entity{{"name": "Rice 5kg", "quantity": 1, "price": 12.0, "total": 12.0}}, "total": 12.0, "status": "pending"},
	}
	s.users = []entity{
		{"id": "USR-1", "username": "resident1", "name": "Arun Kumar", "roomNumber": "204", "type": "resident"},
		{"id": "USR-2", "username": "admin", "name": "Site Admin", "type": "admin"},
	}
}

// auth enforces the bearer token the way the real backend does.
func (s *Server) auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header != "Bearer "+s.Token {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
		}
		s.mu.Lock()
		failing := s.failing[strings.SplitN(strings.TrimPrefix(c.Path(), "/"), "/:", 2)[0]]
		s.mu.Unlock()
		if failing {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database unavailable"})
		}
		return next(c)
	}
}

func (s *Server) ok(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation failed",
			"errors":  echo.Map{"username": "is required", "password": "is required"},
		})
	}
	if req.Password != "password123" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}
	s.mu.Lock()
	user := s.users[0]
	s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"token": s.Token, "user": user}})
}

func (s *Server) me(c echo.Context) error {
	s.mu.Lock()
	user := s.users[0]
	s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"user": user}})
}

// Each list handler uses a different envelope on purpose.

func (s *Server) listMaintenance(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"data": s.maintenance})
}

func (s *Server) listInvoices(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"invoices": s.invoices})
}

func (s *Server) listItems(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"items": s.items}})
}

func (s *Server) listOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.orders)
}

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"data": s.users})
}

func (s *Server) create(list *[]entity, prefix string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body entity
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		s.mu.Lock()
		s.nextID++
		body["id"] = fmt.Sprintf("%s-%d", prefix, 100+s.nextID)
		if _, ok := body["status"]; !ok {
			body["status"] = "pending"
		}
		*list = append(*list, body)
		s.mu.Unlock()
		return c.JSON(http.StatusCreated, echo.Map{"data": body})
	}
}

// setStatus patches only the status field and echoes the stored entity,
// ignoring any extra submitted fields (payment proof, notes) the way some
// backend deployments do.
func (s *Server) setStatus(list *[]entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body entity
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		e := find(*list, c.Param("id"))
		if e == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		if v, ok := body["status"]; ok {
			e["status"] = v
		}
		return c.JSON(http.StatusOK, echo.Map{"data": e})
	}
}

func (s *Server) patch(list *[]entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body entity
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		e := find(*list, c.Param("id"))
		if e == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		for k, v := range body {
			if v != nil {
				e[k] = v
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"data": e})
	}
}

func (s *Server) remove(list *[]entity) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		id := c.Param("id")
		kept := (*list)[:0]
		found := false
		for _, e := range *list {
			if identifier(e) == id {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		*list = kept
		if !found {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}

func (s *Server) pdf(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{"pdfUrl": s.URL + "/pdf/" + c.Param("id") + ".pdf"}})
}

func find(list []entity, id string) entity {
	for _, e := range list {
		if identifier(e) == id {
			return e
		}
	}
	return nil
}

func identifier(e entity) string {
	if v, ok := e["id"].(string); ok && v != "" {
		return v
	}
	v, _ := e["_id"].(string)
	return v
}
