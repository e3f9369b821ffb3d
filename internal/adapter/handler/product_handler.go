package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rl1809/webstore/internal/core/domain"
	"github.com/rl1809/webstore/internal/core/service"
)

const msgMissingFields = "Bad Request. Please fill all fields"

// Pinger reports whether the database behind the API is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type ProductHandler struct {
	productService *service.ProductService
	db             Pinger
}

type ProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

type ProductResponse struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

// ProductFieldsResponse echoes the stored fields after a create or update.
type ProductFieldsResponse struct {
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

func NewProductHandler(productService *service.ProductService, db Pinger) *ProductHandler {
	return &ProductHandler{productService: productService, db: db}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CountProducts answers with a bare integer unless the client asks for JSON.
func (h *ProductHandler) CountProducts(w http.ResponseWriter, r *http.Request) {
	total, err := h.productService.CountProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusOK, CountResponse{Count: total})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, strconv.FormatInt(total, 10))
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if p == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(*p))
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Msg: msgMissingFields})
		return
	}

	p, err := h.productService.CreateProduct(r.Context(), req.Name, req.Price)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductFieldsResponse(p))
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Msg: msgMissingFields})
		return
	}

	p, err := h.productService.UpdateProduct(r.Context(), id, req.Name, req.Price)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductFieldsResponse(p))
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		log.Printf("request %s: health check: %v", RequestIDFrom(r.Context()), err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Msg: "invalid product id"})
		return 0, false
	}
	return id, true
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: json.Number(p.Price.String())}
}

func toProductFieldsResponse(p domain.Product) ProductFieldsResponse {
	return ProductFieldsResponse{Name: p.Name, Price: json.Number(p.Price.String())}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrMissingFields) {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Msg: msgMissingFields})
		return
	}
	writeError(w, r, err)
}

// writeError reports an infrastructure failure with its raw message as body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("request %s: %s %s: %v", RequestIDFrom(r.Context()), r.Method, r.URL.Path, err)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	io.WriteString(w, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
