package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kisanbazaar/kisanbazaar-backend/api/responses"
	"github.com/kisanbazaar/kisanbazaar-backend/api/validators"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/marketrates"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/pagination"
)

// ListMarketRates returns reference wholesale prices, filterable by category,
// district and a bilingual product name search.
func ListMarketRates(svc *marketrates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := marketrates.ListFilter{
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
			District: strings.TrimSpace(r.URL.Query().Get("district")),
			Province: strings.TrimSpace(r.URL.Query().Get("province")),
			Search:   strings.TrimSpace(r.URL.Query().Get("search")),
			Limit:    limit,
		}

		list, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ListMarketRatesByCategory lists rates for one category given in the path.
func ListMarketRatesByCategory(svc *marketrates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), marketrates.ListFilter{
			Category: chi.URLParam(r, "category"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// SearchMarketRates matches product names in English or Nepali.
func SearchMarketRates(svc *marketrates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), marketrates.ListFilter{
			Search: chi.URLParam(r, "query"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ListRateCategories returns the distinct categories present in the table.
func ListRateCategories(svc *marketrates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ListRateDistricts returns the distinct districts present in the table.
func ListRateDistricts(svc *marketrates.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListDistricts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
