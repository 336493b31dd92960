// Package nav builds the sidebar menu. Build is a pure function over
// (session user, current path) and is called on every page render.
package nav

import (
	"roastery/internal/models"
	"roastery/internal/session"
)

type Item struct {
	Href   string
	Label  string
	Icon   string
	Active bool
}

var baseEntries = []Item{
	{Href: "/dashboard", Label: "Dashboard", Icon: "🏠"},
	{Href: "/orders/new", Label: "Neue Bestellung", Icon: "🧾"},
	{Href: "/orders", Label: "Meine Bestellungen", Icon: "📦"},
	{Href: "/stock", Label: "Lagerbestand", Icon: "📊"},
}

var adminEntries = []Item{
	{Href: "/admin", Label: "Admin Dashboard", Icon: "🛠️"},
	{Href: "/admin/orders", Label: "Alle Bestellungen", Icon: "📚"},
	{Href: "/admin/production", Label: "Produktion", Icon: "🔥"},
	{Href: "/admin/coffees", Label: "Kaffeesorten", Icon: "☕"},
	{Href: "/admin/inventory", Label: "Lagerverwaltung", Icon: "🏭"},
	{Href: "/admin/users", Label: "Benutzer", Icon: "👥"},
}

// Build returns the menu for the given user, empty when nobody is
// logged in. Admins see the base entries plus the admin block. The
// active flag uses exact path equality.
func Build(user *session.User, currentPath string) []Item {
	if user == nil {
		return []Item{}
	}

	entries := baseEntries
	if user.Role == models.RoleAdmin {
		entries = append(append([]Item{}, baseEntries...), adminEntries...)
	}

	items := make([]Item, len(entries))
	for i, e := range entries {
		e.Active = currentPath == e.Href
		items[i] = e
	}
	return items
}
