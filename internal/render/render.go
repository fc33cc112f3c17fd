// Package render produces the few server-rendered pages the API serves: the
// application shell and the supplier-facing purchase-order response page.
package render

import (
	"html/template"
	"strings"
)

// Appearance classes. An explicit hint wins; anything else defers to the
// client's media query at first paint.
const (
	AppearanceDark   = "dark"
	AppearanceLight  = "light"
	AppearanceSystem = "system"
)

// AppearanceClass resolves the html element class from the stored hint.
func AppearanceClass(hint string) string {
	switch hint {
	case AppearanceDark, AppearanceLight:
		return hint
	default:
		return AppearanceSystem
	}
}

type AppShellProps struct {
	Title      string
	Appearance string
	CSRFToken  string
	Body       template.HTML
}

type PurchaseOrderPageProps struct {
	Action   string
	PONumber string
	Message  string
}

// Confirmed reports whether the page renders the success variant. Only an
// exact "confirm" does; every other action renders the rejection card.
func (p PurchaseOrderPageProps) Confirmed() bool {
	return p.Action == "confirm"
}

func (p PurchaseOrderPageProps) Heading() string {
	if p.Confirmed() {
		return "Order Confirmed!"
	}
	return "Order Rejected"
}

func (p PurchaseOrderPageProps) CardClass() string {
	if p.Confirmed() {
		return "card card-success"
	}
	return "card card-danger"
}

var appShellTmpl = template.Must(template.New("app-shell").Parse(appShellHTML))
var purchaseOrderTmpl = template.Must(template.New("po-response").Parse(purchaseOrderHTML))

// AppShell renders the SPA host page. The appearance class is computed
// server-side so the first paint never flashes the wrong theme.
func AppShell(props AppShellProps) (string, error) {
	data := struct {
		AppShellProps
		AppearanceClass string
		SystemScript    bool
	}{
		AppShellProps:   props,
		AppearanceClass: AppearanceClass(props.Appearance),
	}
	data.SystemScript = data.AppearanceClass == AppearanceSystem

	var sb strings.Builder
	if err := appShellTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// PurchaseOrderPage renders the supplier response page. Pure function of its
// props; no request state leaks in.
func PurchaseOrderPage(props PurchaseOrderPageProps) (string, error) {
	var sb strings.Builder
	if err := purchaseOrderTmpl.Execute(&sb, props); err != nil {
		return "", err
	}
	return sb.String(), nil
}
