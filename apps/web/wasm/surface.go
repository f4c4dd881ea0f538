//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"

	"github.com/trezcool/solvo/apps/web"
)

// clickTarget stands for the element of the click being handled by the document listener.
const clickTarget web.ElementID = "__clickTarget"

// domSurface renders the page with the browser DOM.
type domSurface struct {
	doc    js.Value
	target js.Value // see clickTarget

	onCardClick func(resourceID int)
}

func newDOMSurface(doc js.Value) *domSurface {
	return &domSurface{doc: doc, target: js.Null()}
}

func (s *domSurface) element(id web.ElementID) js.Value {
	switch id {
	case web.Body:
		return s.doc.Get("body")
	case clickTarget:
		return s.target
	case web.NotificationBadges:
		return s.doc.Call("querySelector", "."+string(id))
	default:
		return s.doc.Call("getElementById", string(id))
	}
}

func (s *domSurface) Has(id web.ElementID) bool {
	el := s.element(id)
	return !el.IsNull() && !el.IsUndefined()
}

func (s *domSurface) Contains(container, target web.ElementID) bool {
	if !s.Has(container) || !s.Has(target) {
		return false
	}
	return s.element(container).Call("contains", s.element(target)).Bool()
}

func (s *domSurface) Render(intent web.Intent) {
	switch in := intent.(type) {
	case web.SidebarIntent:
		s.toggleClass(web.MobileSidebar, "active", in.Active)
		s.toggleClass(web.MobileMenuOverlay, "active", in.Active)
	case web.ScrollLockIntent:
		overflow := ""
		if in.Locked {
			overflow = "hidden"
		}
		s.element(web.Body).Get("style").Set("overflow", overflow)
	case web.NotificationPanelIntent:
		s.toggleClass(web.NotificationPanel, "active", in.Open)
	case web.BadgeIntent:
		display := "none"
		if in.Visible {
			display = "flex"
		}
		s.each("."+string(web.NotificationBadges), func(badge js.Value) {
			badge.Set("textContent", strconv.Itoa(in.Count))
			badge.Get("style").Set("display", display)
		})
	case web.UserDropdownIntent:
		s.toggleClass(web.UserDropdown, "show", in.Open)
	case web.ResourceGridIntent:
		s.renderCards(in.Cards)
	case web.ToastIntent:
		s.each(".toast", func(t js.Value) { t.Call("remove") })
		toast := s.doc.Call("createElement", "div")
		toast.Set("className", "toast")
		toast.Set("textContent", in.Message)
		toast.Get("dataset").Set("toastId", in.ID)
		toast.Get("style").Set("cssText", web.ToastStyle(in.Color))
		s.element(web.Body).Call("appendChild", toast)
	case web.RemoveToastIntent:
		s.each(`.toast[data-toast-id="`+in.ID+`"]`, func(t js.Value) { t.Call("remove") })
	case web.LoadingIntent:
		s.toggleClass(web.LoadingOverlay, "active", in.Active)
	}
}

func (s *domSurface) renderCards(cards []web.Card) {
	grid := s.element(web.ResourcesGrid)
	grid.Set("innerHTML", "")

	for _, c := range cards {
		card := s.div("resource-card", "")

		thumb := s.div("resource-thumbnail", "")
		icon := s.doc.Call("createElement", "i")
		icon.Set("className", c.Icon)
		thumb.Call("appendChild", icon)

		info := s.div("resource-info", "")
		info.Call("appendChild", s.div("resource-title", c.Title))
		meta := s.div("resource-meta", "")
		for _, txt := range []string{c.Platform, c.Channel} {
			span := s.doc.Call("createElement", "span")
			span.Set("textContent", txt)
			meta.Call("appendChild", span)
		}
		info.Call("appendChild", meta)

		card.Call("appendChild", thumb)
		card.Call("appendChild", info)

		id := c.ResourceID
		card.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) interface{} {
			if s.onCardClick != nil {
				s.onCardClick(id)
			}
			return nil
		}))
		grid.Call("appendChild", card)
	}
}

// div returns a new <div> of the given class. The text is set as text, never as markup.
func (s *domSurface) div(class, text string) js.Value {
	el := s.doc.Call("createElement", "div")
	el.Set("className", class)
	if text != "" {
		el.Set("textContent", text)
	}
	return el
}

func (s *domSurface) toggleClass(id web.ElementID, class string, on bool) {
	if s.Has(id) {
		s.element(id).Get("classList").Call("toggle", class, on)
	}
}

func (s *domSurface) each(selector string, f func(js.Value)) {
	nodes := s.doc.Call("querySelectorAll", selector)
	for i := 0; i < nodes.Length(); i++ {
		f(nodes.Index(i))
	}
}
