package router

import "testing"

func TestRouterRedirectReplacesHistory(t *testing.T) {
	complete := false
	r := New(func() bool { return complete })

	if got := r.Start(""); got != Landing {
		t.Fatalf("Start() = %v", got)
	}

	if got := r.Navigate("/app", false); got != Landing {
		t.Fatalf("Navigate(/app) = %v, want landing", got)
	}
	if r.History().Current() != "#/" {
		t.Errorf("redirect not written to history: %q", r.History().Current())
	}
	if r.History().Len() != 2 {
		t.Errorf("history len = %d, want 2", r.History().Len())
	}

	complete = true
	if got := r.Navigate("/onboarding", false); got != App {
		t.Fatalf("Navigate(/onboarding) after completion = %v", got)
	}
	// going back lands on a gated entry and is redirected in place
	got, ok := r.Back()
	if !ok || got != App {
		t.Errorf("Back() = %v, %v", got, ok)
	}
	if r.History().Current() != "#/app" {
		t.Errorf("Back() did not replace gated entry: %q", r.History().Current())
	}
}

func TestRouterOnboardingHook(t *testing.T) {
	r := New(func() bool { return false })
	entered := 0
	var changes []Route
	r.OnEnterOnboarding = func() { entered++ }
	r.OnChange = func(rt Route) { changes = append(changes, rt) }

	r.Start("#/")
	r.Navigate("/onboarding", false)
	r.Navigate("/", false)
	r.Navigate("/onboarding", false)

	if entered != 2 {
		t.Errorf("OnEnterOnboarding ran %d times, want 2", entered)
	}
	want := []Route{Landing, Onboarding, Landing, Onboarding}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v", changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("changes[%d] = %v, want %v", i, changes[i], want[i])
		}
	}
}

func TestRouterNavigateReplace(t *testing.T) {
	r := New(func() bool { return true })
	r.Start("#/app")
	r.Navigate("/app", true)
	if r.History().Len() != 1 {
		t.Errorf("replace navigation pushed an entry, len = %d", r.History().Len())
	}
	if _, ok := r.Back(); ok {
		t.Error("Back() at first entry should report false")
	}
}

func TestHistoryPushDropsForward(t *testing.T) {
	h := NewHistory("#/")
	h.Push("#/a")
	h.Push("#/b")
	h.Back()
	h.Push("#/c")
	if h.Len() != 3 || h.Current() != "#/c" {
		t.Errorf("len = %d current = %q", h.Len(), h.Current())
	}
}
