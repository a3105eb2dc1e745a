package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcenter/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it holds the usecase ports, the domain repository used by the tenant
// middleware, and a logger for structured logging. Routes are registered on
// a chi.Router for convenient method handling.
type Handler struct {
	delivery  port.DeliveryUseCase
	campaigns port.CampaignUseCase
	adgroups  port.AdGroupUseCase
	ads       port.AdvertisementUseCase
	listings  port.ListingUseCase
	domains   port.DomainRepository

	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Public delivery
// endpoints sit outside the tenant middleware; everything the dashboard
// uses goes through it.
func NewHandler(
	delivery port.DeliveryUseCase,
	campaigns port.CampaignUseCase,
	adgroups port.AdGroupUseCase,
	ads port.AdvertisementUseCase,
	listings port.ListingUseCase,
	domains port.DomainRepository,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		delivery:  delivery,
		campaigns: campaigns,
		adgroups:  adgroups,
		ads:       ads,
		listings:  listings,
		domains:   domains,
		logger:    logger,
	}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads", h.handleGetAds)
		r.Get("/ads/redirect", h.handleAdRedirect)

		r.Group(func(r chi.Router) {
			r.Use(h.resolveTenant)

			r.Get("/campaign-categories", h.handleCampaignCategories)
			r.Get("/group-types", h.handleGroupTypes)

			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", h.handleCampaignList)
				r.Post("/", h.handleCampaignCreate)
				r.Get("/{id}", h.handleCampaignGet)
				r.Put("/{id}", h.handleCampaignUpdate)
				r.Delete("/{id}", h.handleCampaignDelete)
			})
			r.Route("/adgroups", func(r chi.Router) {
				r.Get("/", h.handleAdGroupList)
				r.Post("/", h.handleAdGroupCreate)
				r.Get("/{id}", h.handleAdGroupGet)
				r.Put("/{id}", h.handleAdGroupUpdate)
				r.Delete("/{id}", h.handleAdGroupDelete)
			})
			r.Route("/advertisements", func(r chi.Router) {
				r.Get("/", h.handleAdvertisementList)
				r.Post("/", h.handleAdvertisementCreate)
				r.Get("/{id}", h.handleAdvertisementGet)
				r.Put("/{id}", h.handleAdvertisementUpdate)
				r.Delete("/{id}", h.handleAdvertisementDelete)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
