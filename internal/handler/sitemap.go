package handler

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

type route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SitemapHandler lists every registered route.
type SitemapHandler struct {
	routes chi.Routes
}

func NewSitemapHandler(routes chi.Routes) *SitemapHandler {
	return &SitemapHandler{routes: routes}
}

// HandleSitemap handles GET /.
func (h *SitemapHandler) HandleSitemap(w http.ResponseWriter, r *http.Request) {
	routes := []route{}
	err := chi.Walk(h.routes, func(method, path string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, route{Method: method, Path: path})
		return nil
	})
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":    "Available endpoints",
		"routes": routes,
	})
}
