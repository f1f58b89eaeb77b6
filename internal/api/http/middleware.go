package httpapi

import (
	"net"
	"net/http"
	"strings"
	"time"

	"platter-guest/internal/session"
	"platter-guest/internal/tenant"
)

// RewriteOptions configures the tenant rewrite layer.
type RewriteOptions struct {
	Tenant tenant.Config
	// MarketingURL, when set, is where root-domain visitors are redirected.
	MarketingURL string
	// SecureCookies marks the session cookies Secure (production).
	SecureCookies bool
}

const cookieMaxAge = 365 * 24 * time.Hour

// NewTenantRewrite wraps the router with host-based tenant resolution. It
// runs before route matching: tenant hosts get their path rewritten to
// /{tenant}{path}, admin paths on tenant hosts are refused with a redirect,
// and root-domain requests other than /health go to the marketing site when
// one is configured. The session cookies are issued regardless of which
// branch is taken.
func NewTenantRewrite(opts RewriteOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ensureSessionCookies(w, r, opts.SecureCookies)

			sub := tenant.Resolve(requestURL(r), r.Host, opts.Tenant)
			if sub == "" {
				if opts.MarketingURL != "" && r.URL.Path != "/health" {
					http.Redirect(w, r, opts.MarketingURL, http.StatusTemporaryRedirect)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			// Never expose admin paths on a tenant host.
			if strings.HasPrefix(r.URL.Path, "/admin") {
				http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
				return
			}

			if r.URL.Path != "/health" {
				r.URL.Path = "/" + sub + r.URL.Path
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ensureSessionCookies issues the anonymous token pair on first visit. The
// token is also attached to the current request so handlers down the chain
// see it immediately.
func ensureSessionCookies(w http.ResponseWriter, r *http.Request, secure bool) {
	if _, err := r.Cookie(session.CookieName); err == nil {
		return
	}

	token := session.GenerateUserToken(r.UserAgent(), clientIP(r))
	expires := time.Now().Add(cookieMaxAge)

	serverCookie := &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	clientCookie := &http.Cookie{
		Name:     session.ClientCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(cookieMaxAge.Seconds()),
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, serverCookie)
	http.SetCookie(w, clientCookie)
	r.AddCookie(serverCookie)
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.RequestURI
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
