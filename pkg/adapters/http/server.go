package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
	"github.com/aretw0/canopy/pkg/views"
	"github.com/aretw0/canopy/pkg/widget"
)

// Server exposes the widget and action API over HTTP.
type Server struct {
	store      ports.Store
	dispatcher ports.Dispatcher
	streams    *StreamManager
	logger     *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStreamManager attaches an externally created stream manager, letting
// the caller share it with the dispatch engine as its broadcaster.
func WithStreamManager(sm *StreamManager) Option {
	return func(s *Server) {
		if sm != nil {
			s.streams = sm
		}
	}
}

// NewServer creates a Server over the given store and dispatcher.
func NewServer(store ports.Store, dispatcher ports.Dispatcher, opts ...Option) *Server {
	s := &Server{
		store:      store,
		dispatcher: dispatcher,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.streams == nil {
		s.streams = NewStreamManager(s.logger)
	}
	return s
}

// Streams returns the SSE fan-out, for wiring as the engine's broadcaster.
func (s *Server) Streams() *StreamManager {
	return s.streams
}

// Handler builds the routed HTTP handler with CORS enabled.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.index)
	r.Route("/api", func(r chi.Router) {
		r.Get("/widget/products", s.productListWidget)
		r.Get("/widget/contact-form", s.contactFormWidget)
		r.Get("/widget/cart", s.cartWidget)
		r.Post("/widget-action", s.widgetAction)
		r.Get("/products", s.listProducts)
		r.Get("/cart", s.cartContents)
		r.Get("/submissions", s.listSubmissions)
		r.Get("/health", s.health)
		r.Get("/events", s.events)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// widgetEnvelope is the response shape of the GET /api/widget/* endpoints.
type widgetEnvelope struct {
	Success bool           `json:"success"`
	Widget  *widget.Node   `json:"widget,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// dataEnvelope is the response shape of the GET /api/* data endpoints.
type dataEnvelope struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func (s *Server) productListWidget(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.Products(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Failed to generate product widget", err)
		return
	}

	category := r.URL.Query().Get("category")
	inStock := r.URL.Query().Get("inStock")
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if inStock != "" && p.InStock != (inStock == "true") {
			continue
		}
		filtered = append(filtered, p)
	}

	meta := map[string]any{
		"total":     len(filtered),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	var node widget.Node
	if perPage := intQuery(r, "perPage"); perPage > 0 {
		page := intQuery(r, "page")
		if page < 1 {
			page = 1
		}
		totalPages := (len(filtered) + perPage - 1) / perPage
		if totalPages > 0 && page > totalPages {
			page = totalPages
		}
		start := (page - 1) * perPage
		end := start + perPage
		if end > len(filtered) {
			end = len(filtered)
		}
		if start > len(filtered) {
			start = len(filtered)
		}
		node = views.ProductPage(filtered[start:end], page, perPage, len(filtered))
		meta["page"] = page
		meta["perPage"] = perPage
		meta["totalPages"] = totalPages
	} else {
		node = views.ProductList(filtered)
	}

	s.writeJSON(w, http.StatusOK, widgetEnvelope{
		Success: true,
		Widget:  &node,
		Meta:    meta,
	})
}

// intQuery parses an integer query parameter, returning 0 when absent or
// malformed.
func intQuery(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) contactFormWidget(w http.ResponseWriter, r *http.Request) {
	node := views.ContactForm()
	s.writeJSON(w, http.StatusOK, widgetEnvelope{
		Success: true,
		Widget:  &node,
		Meta: map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (s *Server) cartWidget(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.CartItems(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Failed to generate cart widget", err)
		return
	}
	products, err := s.store.Products(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Failed to generate cart widget", err)
		return
	}

	node := views.Cart(items, products)
	s.writeJSON(w, http.StatusOK, widgetEnvelope{
		Success: true,
		Widget:  &node,
		Meta: map[string]any{
			"itemCount": len(items),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (s *Server) widgetAction(w http.ResponseWriter, r *http.Request) {
	var req domain.DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("widget-action: invalid request body", "err", err)
		s.writeJSON(w, http.StatusBadRequest, dataEnvelope{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := s.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		status, msg := mapDispatchError(err)
		s.logger.Warn("widget-action rejected", "err", err, "status", status)
		s.writeJSON(w, status, dataEnvelope{Success: false, Error: msg})
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// mapDispatchError translates engine rejections to wire status and message.
func mapDispatchError(err error) (int, string) {
	var actionErr *widget.ActionError
	if errors.As(err, &actionErr) {
		return http.StatusBadRequest, "Invalid action structure"
	}
	if errors.Is(err, domain.ErrProductNotFound) {
		return http.StatusNotFound, "Product not found"
	}
	if errors.Is(err, domain.ErrProductOutOfStock) {
		return http.StatusBadRequest, "Product is out of stock"
	}
	var missing *domain.MissingFieldsError
	if errors.As(err, &missing) {
		return http.StatusBadRequest, "Name and reason are required fields"
	}
	if errors.Is(err, widget.ErrInputTooLarge) || errors.Is(err, widget.ErrInvalidUTF8) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.Products(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	s.writeJSON(w, http.StatusOK, dataEnvelope{
		Success: true,
		Data:    products,
		Meta:    map[string]any{"total": len(products)},
	})
}

// cartEntry is a cart item joined with its product for the admin endpoint.
type cartEntry struct {
	domain.CartItem
	Product *domain.Product `json:"product,omitempty"`
}

func (s *Server) cartContents(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.CartItems(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	products, err := s.store.Products(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	entries := make([]cartEntry, 0, len(items))
	for _, item := range items {
		entry := cartEntry{CartItem: item}
		if p, ok := byID[item.ProductID]; ok {
			entry.Product = &p
		}
		entries = append(entries, entry)
	}

	s.writeJSON(w, http.StatusOK, dataEnvelope{
		Success: true,
		Data:    entries,
		Meta: map[string]any{
			"itemCount":     len(items),
			"totalQuantity": domain.TotalQuantity(items),
		},
	})
}

func (s *Server) listSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.store.Submissions(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	s.writeJSON(w, http.StatusOK, dataEnvelope{
		Success: true,
		Data:    subs,
		Meta:    map[string]any{"total": len(subs)},
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   strings.TrimSpace(canopy.Version),
	})
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Canopy Widget Server",
		"version": strings.TrimSpace(canopy.Version),
		"endpoints": map[string]any{
			"widgets": map[string]string{
				"GET /api/widget/products":     "Get dynamic product list widget",
				"GET /api/widget/contact-form": "Get contact form widget",
				"GET /api/widget/cart":         "Get shopping cart widget",
			},
			"actions": map[string]string{
				"POST /api/widget-action": "Handle widget actions (clicks, form submissions, etc.)",
			},
			"data": map[string]string{
				"GET /api/products":    "Get all products",
				"GET /api/cart":        "Get cart contents",
				"GET /api/submissions": "Get form submissions",
			},
			"utility": map[string]string{
				"GET /api/health": "Health check",
				"GET /api/events": "Server-sent events stream",
			},
		},
	})
}

// events handles the SSE subscription.
func (s *Server) events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("events: streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.streams.Subscribe()
	defer cancel()

	s.logger.Info("SSE client connected")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string, err error) {
	s.logger.Error(msg, "err", err)
	s.writeJSON(w, status, dataEnvelope{Success: false, Error: msg})
}
