package router

import "github.com/julianstephens/hurryup/internal/logger"

// Router resolves navigation requests against the onboarding flag. Redirects
// replace the current history entry so back never loops between gated views.
type Router struct {
	history  *History
	current  Route
	complete func() bool

	// OnEnterOnboarding runs every time the onboarding view is shown.
	OnEnterOnboarding func()
	// OnChange runs after every resolved navigation.
	OnChange func(Route)
}

// New creates a router. complete reports the current onboarding flag.
func New(complete func() bool) *Router {
	return &Router{history: NewHistory(""), complete: complete}
}

// Start resolves the initial fragment, as on first load.
func (r *Router) Start(fragment string) Route {
	r.history.Replace(fragment)
	return r.handle()
}

// Navigate moves to path, pushing a history entry unless replace is set.
func (r *Router) Navigate(path string, replace bool) Route {
	if path == "" || path[0] != '#' {
		path = "#" + path
	}
	if replace {
		r.history.Replace(path)
	} else {
		r.history.Push(path)
	}
	return r.handle()
}

// Back returns to the previous history entry and resolves it again.
func (r *Router) Back() (Route, bool) {
	if !r.history.Back() {
		return r.current, false
	}
	return r.handle(), true
}

func (r *Router) Current() Route    { return r.current }
func (r *Router) History() *History { return r.history }

func (r *Router) handle() Route {
	requested := ParseFragment(r.history.Current())
	effective, redirected := Resolve(r.complete(), requested)
	if redirected {
		logger.Debug("route redirected", "from", requested, "to", effective)
		r.history.Replace(effective.Path())
	}

	r.current = effective
	if effective == Onboarding && r.OnEnterOnboarding != nil {
		r.OnEnterOnboarding()
	}
	if r.OnChange != nil {
		r.OnChange(effective)
	}
	return effective
}
