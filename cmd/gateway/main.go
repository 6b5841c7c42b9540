package main

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// prefixes forwarded verbatim to the backend origin. Everything else 404s.
var forwardPrefixes = []string{"/api/", "/uploads/", "/oauth2/", "/login/oauth2/"}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// main runs the edge gateway that fronts the storefront: API, upload, and
// OAuth paths go to the backend, preserving path and query untouched.
// Usage: go run cmd/gateway/main.go
func main() {
	origin := getEnv("BACKEND_ORIGIN", "http://localhost:9999")
	listen := getEnv("GATEWAY_ADDR", ":8080")

	target, err := url.Parse(origin)
	if err != nil {
		log.Fatalf("❌ Invalid BACKEND_ORIGIN %q: %v", origin, err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("❌ Proxy error for %s: %v", r.URL.Path, err)
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprintln(w, "backend unavailable")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range forwardPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				proxy.ServeHTTP(w, r)
				return
			}
		}
		http.NotFound(w, r)
	})

	fmt.Printf("🚀 Gateway forwarding to %s on %s\n", origin, listen)
	if err := http.ListenAndServe(listen, mux); err != nil {
		log.Fatalf("❌ Gateway stopped: %v", err)
	}
}
