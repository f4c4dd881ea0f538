package web

import (
	"fmt"
	"net/url"
	"strings"
)

// The browser build of the page lives in ./wasm; the API serves it from public/.
//go:generate sh -c "GOOS=js GOARCH=wasm go build -o ../../public/solvo.wasm ./wasm"
//go:generate sh -c "cp \"$(go env GOROOT)/misc/wasm/wasm_exec.js\" ../../public/"

const (
	// NavLinks selects the links that close the mobile menu when clicked.
	NavLinks = ".nav-link, .menu-item, .mobile-menu-item, .dropdown-item"

	defaultHealthURL = "http://localhost:3000/api/health"
)

// HealthURL returns the health endpoint of the API that served the page at origin.
// Pages opened from disk have no usable origin and use the local API.
func HealthURL(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return defaultHealthURL
	}
	return strings.TrimRight(u.Scheme+"://"+u.Host, "/") + "/api/health"
}

// ToastStyle returns the inline style of a toast with the given background.
func ToastStyle(color string) string {
	return fmt.Sprintf("position: fixed; top: 20px; right: 20px; background: %s; color: #fff; "+
		"padding: 0.8rem 1.2rem; border-radius: 8px; z-index: 2000;", color)
}
