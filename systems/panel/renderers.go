package panel

import "github.com/go-home-io/panel/providers"

// Renderers combines several views into one.
type Renderers []providers.IRenderer

// Build creates controls on every view.
// Interaction on one view is reflected on the others before it reaches onToggle.
func (r Renderers) Build(states []bool, onToggle func(int, bool)) {
	for ii, v := range r {
		v.Build(states, r.siblingToggle(ii, onToggle))
	}
}

// Update changes control state on every view.
func (r Renderers) Update(index int, state bool) {
	for _, v := range r {
		v.Update(index, state)
	}
}

// ShowOffline attaches notice on every view.
func (r Renderers) ShowOffline(onRetry func()) {
	for _, v := range r {
		v.ShowOffline(onRetry)
	}
}

// HideOffline removes notice on every view.
func (r Renderers) HideOffline() {
	for _, v := range r {
		v.HideOffline()
	}
}

// Wraps onToggle of the view with the given position.
func (r Renderers) siblingToggle(source int, onToggle func(int, bool)) func(int, bool) {
	return func(index int, state bool) {
		for ii, v := range r {
			if ii != source {
				v.Update(index, state)
			}
		}

		onToggle(index, state)
	}
}
