package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/niksmo/elegance-storefront/internal/core/port"
)

// StorefrontHandler exposes the storefront state machine over JSON.
// Every state-changing route operates on the caller's session.
type StorefrontHandler struct {
	sessions port.SessionStates
	catalog  port.CatalogProvider
	showcase port.ShowcaseProvider
	content  port.ContentProvider
	streamer port.ViewStreamer
}

func New(
	sessions port.SessionStates,
	catalog port.CatalogProvider,
	showcase port.ShowcaseProvider,
	content port.ContentProvider,
	streamer port.ViewStreamer,
) StorefrontHandler {
	return StorefrontHandler{sessions, catalog, showcase, content, streamer}
}

func (h StorefrontHandler) Route() *chi.Mux {
	r := chi.NewRouter()
	r.Use(WithSession)

	r.Group(func(r chi.Router) {
		r.Use(AllowJSON)

		r.Get("/v1/view", h.GetView)
		r.Post("/v1/view/section", h.PostSection)
		r.Post("/v1/view/cart-drawer", h.PostCartDrawer)

		r.Get("/v1/catalog", h.GetCatalog)
		r.Get("/v1/catalog/new", h.GetNewArrivals)
		r.Get("/v1/catalog/promo", h.GetDiscounted)
		r.Get("/v1/catalog/facets", h.GetFacets)

		r.Post("/v1/filters/categories/toggle", h.PostToggleCategory)
		r.Post("/v1/filters/brands/toggle", h.PostToggleBrand)
		r.Put("/v1/filters/price", h.PutPriceRange)
		r.Post("/v1/filters/reset", h.PostResetFilters)

		r.Get("/v1/cart", h.GetCart)
		r.Post("/v1/cart/items", h.PostCartItem)
		r.Patch("/v1/cart/items/{id}", h.PatchCartItem)
		r.Delete("/v1/cart/items/{id}", h.DeleteCartItem)

		r.Get("/v1/sections/{section}", h.GetSectionContent)
	})

	r.Get("/v1/ws", h.GetWS)

	return r
}

func (h StorefrontHandler) GetView(w http.ResponseWriter, r *http.Request) {
	state := h.state(r)
	writeJSON(w, http.StatusOK, toView(state.Snapshot()))
}

func (h StorefrontHandler) PostSection(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.PostSection"
	log := slog.With("op", op)

	var req SetSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	section, err := domain.ParseSection(req.Section)
	if err != nil {
		http.Error(w, "unknown section", http.StatusBadRequest)
		log.Warn("rejected section", "section", req.Section)
		return
	}

	state := h.state(r)
	state.SetActiveSection(section)
	writeJSON(w, http.StatusOK, toView(state.Snapshot()))
}

func (h StorefrontHandler) PostCartDrawer(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.PostCartDrawer"
	log := slog.With("op", op)

	var req CartOpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	state := h.state(r)
	state.SetCartOpen(req.Open)
	writeJSON(w, http.StatusOK, toView(state.Snapshot()))
}

func (h StorefrontHandler) GetCatalog(
	w http.ResponseWriter, r *http.Request,
) {
	snap := h.state(r).Snapshot()
	writeJSON(w, http.StatusOK, struct {
		Products   []Product `json:"products"`
		FoundCount int       `json:"found_count"`
	}{toProducts(snap.Products), snap.FoundCount})
}

func (h StorefrontHandler) GetNewArrivals(
	w http.ResponseWriter, r *http.Request,
) {
	writeJSON(w, http.StatusOK, toProducts(h.showcase.NewArrivals()))
}

func (h StorefrontHandler) GetDiscounted(
	w http.ResponseWriter, r *http.Request,
) {
	writeJSON(w, http.StatusOK, toProducts(h.showcase.Discounted()))
}

func (h StorefrontHandler) GetFacets(
	w http.ResponseWriter, r *http.Request,
) {
	writeJSON(w, http.StatusOK, Facets{
		Categories: h.catalog.Categories(),
		Brands:     h.catalog.Brands(),
		PriceMin:   domain.PriceFloor,
		PriceMax:   domain.PriceCeil,
	})
}

func (h StorefrontHandler) PostToggleCategory(
	w http.ResponseWriter, r *http.Request,
) {
	h.toggle(w, r, port.ViewState.ToggleCategory)
}

func (h StorefrontHandler) PostToggleBrand(
	w http.ResponseWriter, r *http.Request,
) {
	h.toggle(w, r, port.ViewState.ToggleBrand)
}

func (h StorefrontHandler) toggle(
	w http.ResponseWriter, r *http.Request,
	toggleFn func(port.ViewState, string),
) {
	const op = "StorefrontHandler.toggle"
	log := slog.With("op", op)

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.Value == "" {
		http.Error(w, "empty value", http.StatusBadRequest)
		return
	}

	state := h.state(r)
	toggleFn(state, req.Value)
	writeJSON(w, http.StatusOK, toView(state.Snapshot()))
}

func (h StorefrontHandler) PutPriceRange(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.PutPriceRange"
	log := slog.With("op", op)

	var req PriceRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	state := h.state(r)
	err := state.SetPriceRange(domain.PriceRange{Min: req.Min, Max: req.Max})
	if err != nil {
		http.Error(w, "invalid price range", http.StatusBadRequest)
		log.Warn("rejected price range", "min", req.Min, "max", req.Max)
		return
	}
	writeJSON(w, http.StatusOK, toView(state.Snapshot()))
}

func (h StorefrontHandler) PostResetFilters(
	w http.ResponseWriter, r *http.Request,
) {
	state := h.state(r)
	state.ResetFilters()
	writeJSON(w, http.StatusOK, toView(state.Snapshot()))
}

func (h StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCart(h.state(r).Snapshot()))
}

// PostCartItem adds one unit of the product to the session cart. The
// out-of-stock guard lives here, the cart engine stays guard-free.
func (h StorefrontHandler) PostCartItem(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.PostCartItem"
	log := slog.With("op", op)

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, err := h.catalog.ProductByID(req.ProductID)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		log.Warn("unknown product", "productID", req.ProductID)
		return
	}
	if !p.InStock {
		http.Error(w, "product is out of stock", http.StatusConflict)
		log.Warn("rejected out-of-stock add", "productID", p.ID)
		return
	}

	state := h.state(r)
	if err := state.AddToCart(p.ID); err != nil {
		http.Error(w, "failed to add product", http.StatusInternalServerError)
		log.Error("failed to add product", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(state.Snapshot()))
}

func (h StorefrontHandler) PatchCartItem(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.PatchCartItem"
	log := slog.With("op", op)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	state := h.state(r)
	if err := state.UpdateQuantity(id, req.Quantity); err != nil {
		if errors.Is(err, domain.ErrNegativeQuantity) {
			http.Error(w, "negative quantity", http.StatusBadRequest)
			log.Warn("rejected quantity", "quantity", req.Quantity)
			return
		}
		http.Error(w, "failed to update quantity", http.StatusInternalServerError)
		log.Error("failed to update quantity", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(state.Snapshot()))
}

func (h StorefrontHandler) DeleteCartItem(
	w http.ResponseWriter, r *http.Request,
) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	state := h.state(r)
	state.RemoveFromCart(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h StorefrontHandler) GetSectionContent(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetSectionContent"
	log := slog.With("op", op)

	section, err := domain.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		http.Error(w, "unknown section", http.StatusBadRequest)
		return
	}

	sc, err := h.content.SectionContent(section)
	if err != nil {
		http.Error(w, "section content unavailable", http.StatusNotFound)
		log.Error("missing section content", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toSectionContent(sc))
}

func (h StorefrontHandler) GetWS(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetWS"
	log := slog.With("op", op)

	state := h.state(r)
	err := h.streamer.Stream(w, r, sessionID(r), state.Snapshot())
	if err != nil {
		log.Warn("stream finished with error", "err", err)
	}
}

func (h StorefrontHandler) state(r *http.Request) port.ViewState {
	return h.sessions.State(sessionID(r))
}

func toCart(snap domain.ViewSnapshot) Cart {
	c := toView(snap)
	return Cart{
		Items:     c.Cart,
		Total:     c.CartTotal,
		TotalText: c.CartTotalText,
		Count:     c.CartCount,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}
