package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/bengobox/status-service/internal/httpapi/handlers"
	httpmiddleware "github.com/bengobox/status-service/internal/httpapi/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const (
	RootPath   = "/"
	StatusPath = "/api/v1/status"
)

// Route maps a method and path pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	Logger             *zap.Logger
	Routes             []Route
	Metrics            *httpmiddleware.Metrics
	MetricsPath        string
	CORSAllowedOrigins []string
	// HandlerTimeout cancels the request context after the given duration;
	// zero disables it.
	HandlerTimeout time.Duration
}

// Routes returns the application route table.
func Routes(statusHandler *handlers.StatusHandler) []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: RootPath, Handler: http.HandlerFunc(handlers.Root)},
		{Method: http.MethodGet, Pattern: StatusPath, Handler: http.HandlerFunc(statusHandler.Status)},
	}
}

// NewRouter wires HTTP routes. Unknown paths get 404 and known paths with an
// unregistered method get 405, both as JSON error envelopes.
func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	routes := append([]Route(nil), deps.Routes...)
	if deps.Metrics != nil && deps.MetricsPath != "" {
		routes = append(routes, Route{Method: http.MethodGet, Pattern: deps.MetricsPath, Handler: deps.Metrics.Handler()})
	}

	origins := deps.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(httpmiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.AccessLog(logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument)
	}
	r.Use(chimiddleware.Recoverer)
	if deps.HandlerTimeout > 0 {
		r.Use(chimiddleware.Timeout(deps.HandlerTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", httpmiddleware.RequestIDHeader},
		ExposedHeaders: []string{httpmiddleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.GetHead)

	r.NotFound(NotFound)
	r.MethodNotAllowed(methodNotAllowed(routes))

	answerOptions := optionsHandler(routes)
	registered := make(map[string]bool)
	for _, route := range routes {
		r.Method(route.Method, route.Pattern, route.Handler)
		if !registered[route.Pattern] {
			registered[route.Pattern] = true
			r.Options(route.Pattern, answerOptions)
		}
	}

	return r
}

// optionsHandler answers a plain OPTIONS request with the path's Allow list. CORS
// preflights are handled earlier by the cors middleware.
func optionsHandler(routes []Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", strings.Join(allowedMethods(routes, r.URL.Path), ", "))
		w.WriteHeader(http.StatusOK)
	}
}

func methodNotAllowed(routes []Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(routes, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		Error(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	}
}

// allowedMethods lists the methods registered for path; GET implies HEAD and
// every known path accepts OPTIONS.
func allowedMethods(routes []Route, path string) []string {
	var allowed []string
	seen := make(map[string]bool)
	add := func(method string) {
		if !seen[method] {
			seen[method] = true
			allowed = append(allowed, method)
		}
	}
	for _, route := range routes {
		if route.Pattern != path {
			continue
		}
		add(route.Method)
		if route.Method == http.MethodGet {
			add(http.MethodHead)
		}
	}
	if len(allowed) > 0 {
		add(http.MethodOptions)
	}
	return allowed
}
