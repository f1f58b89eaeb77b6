package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter assembles the full handler chain: CORS on the outside, then the
// tenant rewrite (it must run before route matching), then the router.
func NewRouter(handler *Handler, rewrite func(http.Handler) http.Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		AllowOriginFunc:  func(origin string) bool { return true },
	})
	return c.Handler(rewrite(r))
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Guest Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
