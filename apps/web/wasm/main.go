//go:build js && wasm

// Command wasm runs the dashboard page in the browser. It is loaded by public/index.html.
package main

import (
	"context"
	"net/http"
	"syscall/js"

	"github.com/trezcool/solvo/apps/web"
	"github.com/trezcool/solvo/core/health"
)

func main() {
	win := js.Global()
	doc := win.Get("document")
	logger := consoleLogger{console: win.Get("console")}

	surface := newDOMSurface(doc)
	ctrl := web.NewController(web.Deps{
		Surface:       surface,
		Logger:        logger,
		Health:        health.NewProber(&http.Client{Timeout: health.DefaultPolicy.Timeout}, web.HealthURL(win.Get("location").Get("origin").String()), health.DefaultPolicy),
		Notifications: web.DefaultNotifications(),
		Resources:     web.DefaultResources(),
	})
	surface.onCardClick = ctrl.ResourceClick

	on := func(id web.ElementID, f func()) {
		if surface.Has(id) {
			surface.element(id).Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) interface{} {
				f()
				return nil
			}))
		}
	}
	on(web.MobileMenuButton, ctrl.ToggleMobileMenu)
	on(web.MobileMenuOverlay, ctrl.OverlayClick)
	on(web.NotificationButton, ctrl.ToggleNotifications)
	on(web.MarkAllReadButton, ctrl.MarkAllRead)
	on(web.UserMenuButton, ctrl.ToggleUserMenu)
	on(web.DailyChallengeBtn, ctrl.StartDailyChallenge)

	links := doc.Call("querySelectorAll", web.NavLinks)
	for i := 0; i < links.Length(); i++ {
		links.Index(i).Call("addEventListener", "click", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
			args[0].Call("preventDefault")
			ctrl.NavClick()
			return nil
		}))
	}

	doc.Call("addEventListener", "click", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		surface.target = args[0].Get("target")
		ctrl.DocumentClick(clickTarget)
		surface.target = js.Null()
		return nil
	}))
	win.Call("addEventListener", "resize", js.FuncOf(func(js.Value, []js.Value) interface{} {
		ctrl.Resize(win.Get("innerWidth").Int())
		return nil
	}))

	ctrl.Init(context.Background())
	select {} // keep the listeners alive
}
