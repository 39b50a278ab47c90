package storefront

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"Tienda/internal/catalog"
	"Tienda/pkg/kit"
)

const cartLimitWindow = time.Minute

var defaultValidator = validator.New()

type Server struct {
	Catalog  *catalog.Snapshot
	Renderer *Renderer
	Featured FeaturedConfig

	SuggestionLimit int
	CartLimitPerMin int

	Metrics  *Metrics
	Log      *zap.Logger
	Validate *validator.Validate
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.readyz)

	r.Get("/", s.index)

	r.Route("/api/v1", func(rr chi.Router) {
		rr.Get("/mobile-search", s.mobileSearch)
		rr.Get("/close-mobile-search", s.closeMobileSearch)
		rr.Get("/search-suggestions", s.searchSuggestions)
		rr.Get("/products/featured", s.featured)

		if s.CartLimitPerMin > 0 {
			limiter := kit.NewIPRateLimiter(s.CartLimitPerMin, cartLimitWindow)
			rr.With(limiter.Middleware).Post("/cart", s.addToCart)
		} else {
			rr.Post("/cart", s.addToCart)
		}
	})

	return r
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if s.Catalog == nil || s.Catalog.Len() == 0 || s.Renderer == nil {
		s.log().Warn("readyz failed", zap.Bool("catalog", s.Catalog != nil), zap.Bool("renderer", s.Renderer != nil))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.writeFragment(w, r, "index")(s.Renderer.Index())
}

func (s *Server) mobileSearch(w http.ResponseWriter, r *http.Request) {
	s.writeFragment(w, r, "mobile search")(s.Renderer.MobileSearch())
}

func (s *Server) closeMobileSearch(w http.ResponseWriter, _ *http.Request) {
	kit.WriteHTML(w, http.StatusOK, nil)
}

func (s *Server) searchSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	matches := s.Catalog.Suggest(q, s.suggestionLimit())
	if s.Metrics != nil && catalog.NormalizeQuery(q) != "" {
		s.Metrics.SuggestionResults.Observe(float64(len(matches)))
	}

	s.writeFragment(w, r, "suggestions")(s.Renderer.Suggestions(q, matches))
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	s.writeFragment(w, r, "featured")(s.Renderer.Featured(FeaturedCards(s.Featured)))
}

func (s *Server) writeFragment(w http.ResponseWriter, r *http.Request, what string) func([]byte, error) {
	return func(body []byte, err error) {
		if err != nil {
			s.log().Error("render failed", zap.String("fragment", what), zap.Error(err))
			kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
			return
		}
		kit.WriteHTML(w, http.StatusOK, body)
	}
}

func (s *Server) suggestionLimit() int {
	if s.SuggestionLimit > 0 {
		return s.SuggestionLimit
	}
	return catalog.DefaultSuggestionLimit
}

func (s *Server) validator() *validator.Validate {
	if s.Validate != nil {
		return s.Validate
	}
	return defaultValidator
}

func (s *Server) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
