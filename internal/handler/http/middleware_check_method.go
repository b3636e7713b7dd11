// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/nft-creator/internal/app"
	"github.com/MKhiriev/nft-creator/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi calls it when the request path matches a registered route but the HTTP
// method does not. It answers 405 with the plain-text body
// "Method not allowed" and an Allow header listing the methods registered for
// the path. No handler of the route runs, so nothing downstream is touched.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteText(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// allowedMethods lists the methods registered for the route whose pattern
// equals path. Parameterised patterns are not expanded.
func allowedMethods(router *chi.Mux, path string) []string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		return methods
	}

	return nil
}
