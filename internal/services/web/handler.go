package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/sunit1986/JioBharatIQ-Server/internal/platform/errors"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/icons"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/id"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/logging"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/requestctx"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/svg"
	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/theme"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const svgSuffix = ".svg"

type handler struct {
	resolver *icons.Resolver
	catalog  []icons.Definition
	log      *logging.Logger
}

// NewHandler returns the icon routes.
func NewHandler(resolver *icons.Resolver, catalog []icons.Definition, log *logging.Logger) http.Handler {
	if resolver == nil {
		resolver = icons.NewResolver(nil)
	}
	if log == nil {
		log = logging.Nop()
	}
	h := &handler{resolver: resolver, catalog: catalog, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /icons", h.handleList)
	mux.HandleFunc("GET /icons/search", h.handleSearch)
	mux.HandleFunc("GET /icons/{file}", h.handleIcon)
	return otelhttp.NewHandler(h.withRequestID(mux), "icons.web")
}

// withRequestID tags each request with the caller's X-Request-Id or a fresh
// one, echoes it back and scopes the request logger to it.
func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestctx.RequestIDHeader))
		if requestID == "" {
			generated, err := id.NewID()
			if err != nil {
				h.log.Error(err, "generate request id")
			}
			requestID = generated
		}

		ctx := r.Context()
		log := h.log
		if requestID != "" {
			w.Header().Set(requestctx.RequestIDHeader, requestID)
			ctx = requestctx.WithRequestID(ctx, requestID)
			log = log.With("request_id", requestID)
		}
		next.ServeHTTP(w, r.WithContext(logging.WithContext(ctx, log)))
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("ok")); err != nil {
		logging.FromContext(r.Context()).Error(err, "write health response")
	}
}

func (h *handler) handleIcon(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(r.PathValue("file"), svgSuffix)
	if !ok || strings.TrimSpace(name) == "" {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()
	props := theme.NewProps(query.Get(theme.PropColor), query.Get(theme.PropSize), query.Get(theme.PropStyle))
	result := h.resolver.Resolve(name, props)
	if !result.Found() {
		logging.FromContext(r.Context()).With("icon", name).Debug("icon not found")
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	templ.Handler(result, templ.WithContentType(svg.MIMEType)).ServeHTTP(w, r)
}

func (h *handler) handleList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, listResponse{
		Keys:       icons.KeysIn(h.catalog, r.URL.Query().Get("category")),
		Categories: append([]string{}, icons.Categories(h.catalog)...),
	})
}

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, r, apperrors.New(apperrors.CodeInvalidArgument, "limit must be an integer"))
			return
		}
		limit = parsed
	}
	result, err := icons.Find(h.catalog, query.Get("q"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, result)
}

type listResponse struct {
	Keys       []icons.Key `json:"keys"`
	Categories []string    `json:"categories"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	h.writeJSON(w, r, code.HTTPStatus(), errorResponse{Code: string(code), Message: apperrors.GetMessage(err)})
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.FromContext(r.Context()).Error(err, "encode json response")
	}
}
