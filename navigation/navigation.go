// Package navigation holds the client's fixed route table.
package navigation

import (
	"strconv"
	"strings"
)

type Screen struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	BottomNav bool   `json:"bottomNav"`
}

// Screens is the route table in match order; static paths precede the
// /referrals/:id pattern.
var Screens = []Screen{
	{Name: "splash", Path: "/"},
	{Name: "login", Path: "/login"},
	{Name: "home", Path: "/home", BottomNav: true},
	{Name: "profile", Path: "/profile", BottomNav: true},
	{Name: "referrals", Path: "/referrals", BottomNav: true},
	{Name: "referralForm", Path: "/referrals/new"},
	{Name: "referralConfirmation", Path: "/referrals/confirmation"},
	{Name: "referredProfile", Path: "/referrals/:id"},
	{Name: "chatbot", Path: "/chatbot", BottomNav: true},
	{Name: "documents", Path: "/documents"},
	{Name: "mentoring", Path: "/mentoring"},
}

type NavItem struct {
	Path  string `json:"path"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// BottomNavItems are the tabs of the bottom navigation bar.
var BottomNavItems = []NavItem{
	{Path: "/home", Icon: "home", Label: "Inicio"},
	{Path: "/referrals", Icon: "groups", Label: "Referidos"},
	{Path: "/chatbot", Icon: "smart_toy", Label: "bot JuniorPac"},
	{Path: "/profile", Icon: "person", Label: "Perfil"},
}

// Match is a resolved client path.
type Match struct {
	Screen Screen `json:"screen"`
	// ReferralID is set for /referrals/:id. Valid is false when the segment
	// is not a number; the screen then renders its not-found state.
	ReferralID *uint `json:"referralId,omitempty"`
	Valid      bool  `json:"valid"`
}

// Resolve maps a client path to its screen.
func Resolve(path string) (Match, bool) {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	for _, s := range Screens {
		prefix, isParam := strings.CutSuffix(s.Path, "/:id")
		if !isParam {
			if s.Path == path {
				return Match{Screen: s, Valid: true}, true
			}
			continue
		}

		segment, ok := strings.CutPrefix(path, prefix+"/")
		if !ok || segment == "" || strings.Contains(segment, "/") {
			continue
		}
		id, err := ParseReferralID(segment)
		if err != nil {
			return Match{Screen: s}, true
		}
		return Match{Screen: s, ReferralID: &id, Valid: true}, true
	}

	return Match{}, false
}

// ParseReferralID parses the :id segment of /referrals/:id.
func ParseReferralID(segment string) (uint, error) {
	id, err := strconv.ParseUint(segment, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ShowBottomNav reports whether the bottom bar is drawn on path.
func ShowBottomNav(path string) bool {
	for _, s := range Screens {
		if s.BottomNav && s.Path == path {
			return true
		}
	}
	return false
}

// ShowEmergencyButton reports whether the "Contacto de Emergencia" button
// sits above the bottom bar. Only the home screen has it.
func ShowEmergencyButton(path string) bool {
	return path == "/home"
}

// IsActive reports whether the tab for itemPath is highlighted at location.
// The Referidos tab stays active on every /referrals sub-screen.
func IsActive(itemPath, location string) bool {
	if itemPath == "/referrals" {
		return strings.HasPrefix(location, "/referrals")
	}
	return location == itemPath
}
