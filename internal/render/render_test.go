package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppearanceClass(t *testing.T) {
	assert.Equal(t, "dark", AppearanceClass("dark"))
	assert.Equal(t, "light", AppearanceClass("light"))
	assert.Equal(t, "system", AppearanceClass(""))
	assert.Equal(t, "system", AppearanceClass("purple"))
}

func TestAppShell_ExplicitAppearanceSkipsMediaQuery(t *testing.T) {
	html, err := AppShell(AppShellProps{Title: "Resto", Appearance: "dark", CSRFToken: "tok-123"})
	assert.NoError(t, err)

	assert.Contains(t, html, `<html class="dark">`)
	assert.NotContains(t, html, "prefers-color-scheme")
	assert.Contains(t, html, `<meta name="csrf-token" content="tok-123">`)
}

func TestAppShell_SystemAppearanceEmitsMediaQuery(t *testing.T) {
	html, err := AppShell(AppShellProps{Title: "Resto", Appearance: "system"})
	assert.NoError(t, err)

	assert.Contains(t, html, `<html class="system">`)
	assert.Contains(t, html, "prefers-color-scheme: dark")
}

func TestAppShell_PreloadPromotionIsGuarded(t *testing.T) {
	html, err := AppShell(AppShellProps{Title: "Resto"})
	assert.NoError(t, err)

	promo := html[strings.Index(html, `link[rel="preload"]`):]
	assert.Contains(t, html, "try {")
	assert.Contains(t, promo, "stylesheet")
}

func TestPurchaseOrderPage_Confirm(t *testing.T) {
	html, err := PurchaseOrderPage(PurchaseOrderPageProps{
		Action:   "confirm",
		PONumber: "PO-000042",
		Message:  "Thank you for confirming.",
	})
	assert.NoError(t, err)

	assert.Contains(t, html, "Order Confirmed!")
	// Scope the class assertions to the card div: the stylesheet always
	// carries both rules.
	assert.Contains(t, html, `<div class="card card-success">`)
	assert.Contains(t, html, "PO-000042")
	assert.Contains(t, html, "Thank you for confirming.")
	assert.NotContains(t, html, `class="card card-danger"`)
}

func TestPurchaseOrderPage_AnythingElseRejects(t *testing.T) {
	for _, action := range []string{"reject", "CONFIRM", "decline", ""} {
		html, err := PurchaseOrderPage(PurchaseOrderPageProps{
			Action:   action,
			PONumber: "PO-000007",
			Message:  "Recorded.",
		})
		assert.NoError(t, err)

		assert.Contains(t, html, "Order Rejected", "action %q", action)
		assert.Contains(t, html, `<div class="card card-danger">`, "action %q", action)
		assert.NotContains(t, html, `class="card card-success"`, "action %q", action)
	}
}
