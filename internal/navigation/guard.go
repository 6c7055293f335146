package navigation

import (
	"fmt"
	"strconv"
	"strings"

	"auction-client/internal/clienterrors"
)

// Route is one entry of the client route table
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	GuestOnly    bool
}

// Routes is the client-side route surface. Dynamic :id segments match
// numeric values only.
var Routes = []Route{
	{Path: "/", Name: "Dashboard", RequiresAuth: true},
	{Path: "/login", Name: "Login", GuestOnly: true},
	{Path: "/signup", Name: "Signup", GuestOnly: true},
	{Path: "/profile", Name: "Profile", RequiresAuth: true},
	{Path: "/items", Name: "ItemsList", RequiresAuth: true},
	{Path: "/items/create", Name: "CreateItem", RequiresAuth: true},
	{Path: "/items/:id/edit", Name: "EditItem", RequiresAuth: true},
	{Path: "/items/:id", Name: "ItemDetail", RequiresAuth: true},
}

// Decision is the outcome of guarding one navigation
type Decision struct {
	Route    Route
	Redirect string
	Params   map[string]string
}

// Allowed reports whether the navigation may proceed to its target
func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

// Resolve matches a path against the route table and applies the guard:
// auth-required routes redirect anonymous users to /login, guest-only
// routes redirect authenticated users to /. The check is synchronous
// against the cached authentication flag; it never triggers a round trip.
func Resolve(path string, authenticated bool) (Decision, error) {
	route, params, ok := match(path)
	if !ok {
		return Decision{}, fmt.Errorf("navigation: %q: %w", path, clienterrors.ErrRouteNotFound)
	}

	decision := Decision{Route: route, Params: params}
	switch {
	case route.RequiresAuth && !authenticated:
		decision.Redirect = "/login"
	case route.GuestOnly && authenticated:
		decision.Redirect = "/"
	}
	return decision, nil
}

func match(path string) (Route, map[string]string, bool) {
	segments := split(path)
	for _, route := range Routes {
		if params, ok := matchRoute(route, segments); ok {
			return route, params, true
		}
	}
	return Route{}, nil, false
}

func matchRoute(route Route, segments []string) (map[string]string, bool) {
	pattern := split(route.Path)
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := map[string]string{}
	for i, part := range pattern {
		if strings.HasPrefix(part, ":") {
			if _, err := strconv.Atoi(segments[i]); err != nil {
				return nil, false
			}
			params[part[1:]] = segments[i]
			continue
		}
		if part != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
