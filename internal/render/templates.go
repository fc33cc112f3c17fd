package render

// The shell carries two inline scripts. The appearance script only ships for
// the "system" class and applies the media query before first paint. The
// preload promotion script flips rel="preload" styles to live stylesheets and
// is wrapped in try/catch so a DOM quirk never blocks the page load.
const appShellHTML = `<!DOCTYPE html>
<html class="{{.AppearanceClass}}">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <meta name="csrf-token" content="{{.CSRFToken}}">
    <title>{{.Title}}</title>
{{- if .SystemScript}}
    <script>
        (function () {
            try {
                if (window.matchMedia('(prefers-color-scheme: dark)').matches) {
                    document.documentElement.classList.add('dark');
                }
            } catch (e) {}
        })();
    </script>
{{- end}}
    <script>
        try {
            document.querySelectorAll('link[rel="preload"][as="style"]').forEach(function (link) {
                link.rel = 'stylesheet';
            });
        } catch (e) {}
    </script>
</head>
<body>
    <div id="app">{{.Body}}</div>
</body>
</html>
`

const purchaseOrderHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Purchase Order {{.PONumber}}</title>
    <style>
        body { font-family: sans-serif; background: #f4f4f5; margin: 0; padding: 40px 16px; }
        .card { max-width: 480px; margin: 0 auto; background: #fff; border-radius: 8px; padding: 32px; text-align: center; border-top: 6px solid; }
        .card-success { border-top-color: #16a34a; }
        .card-success h1 { color: #16a34a; }
        .card-danger { border-top-color: #dc2626; }
        .card-danger h1 { color: #dc2626; }
        .po-number { color: #71717a; font-size: 14px; }
    </style>
</head>
<body>
    <div class="{{.CardClass}}">
        <h1>{{.Heading}}</h1>
        <p class="po-number">{{.PONumber}}</p>
        <p>{{.Message}}</p>
    </div>
</body>
</html>
`
