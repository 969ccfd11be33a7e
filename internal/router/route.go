// Package router gates the three top-level views on onboarding state and
// drives the onboarding wizard.
package router

import "strings"

type Route int

const (
	Landing Route = iota
	Onboarding
	App
)

func (r Route) String() string {
	switch r {
	case Onboarding:
		return "onboarding"
	case App:
		return "app"
	default:
		return "landing"
	}
}

// Path is the fragment that addresses the route.
func (r Route) Path() string {
	switch r {
	case Onboarding:
		return "#/onboarding"
	case App:
		return "#/app"
	default:
		return "#/"
	}
}

// ParseFragment maps a location fragment, with or without the leading '#',
// to a route. Unknown fragments fall back to Landing.
func ParseFragment(fragment string) Route {
	if fragment != "" && !strings.HasPrefix(fragment, "#") {
		fragment = "#" + fragment
	}
	switch fragment {
	case "#/onboarding":
		return Onboarding
	case "#/app":
		return App
	default:
		return Landing
	}
}

// Resolve applies the onboarding gate to a requested route.
func Resolve(onboardingComplete bool, requested Route) (Route, bool) {
	switch {
	case onboardingComplete && (requested == Landing || requested == Onboarding):
		return App, true
	case !onboardingComplete && requested == App:
		return Landing, true
	default:
		return requested, false
	}
}
