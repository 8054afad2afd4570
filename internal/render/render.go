// Package render builds the self-contained HTML document a widget window
// displays. Widget content is embedded verbatim: widgets are authored by
// the same user who runs the application, so no sanitization is applied
// (escaping would break legitimate widget markup).
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hiudyy/DashLayer/internal/model"
)

const documentTemplate = `<!DOCTYPE html>
<html lang="en" style="margin:0;padding:0;height:100%%;overflow:hidden;">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        *, *::before, *::after {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        html, body {
            width: 100%%;
            height: 100%%;
            overflow: hidden;
            background: transparent;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
        }

        #widget-root {
            width: 100%%;
            height: 100%%;
            opacity: %s;
        }

        %s
    </style>
</head>
<body>
    <div id="widget-root">%s</div>
    <script>
        try { %s } catch(e) { console.error('Widget error:', e); }
    </script>
</body>
</html>`

// Document renders the widget into a complete HTML page. The root
// container fills the window with opacity widget.Opacity/100; the user's
// script runs inside an exception guard so a faulty widget cannot take
// down its hosting window.
func Document(w model.Widget) string {
	opacity := strconv.FormatFloat(float64(w.Opacity)/100.0, 'g', -1, 64)
	return fmt.Sprintf(documentTemplate, w.Name, opacity, w.CSS, w.HTML, w.JS)
}

// WriteFile renders the widget and persists it as <dir>/<id>.html,
// creating dir if needed. Files live outside any watched asset directory
// so regenerating them never triggers a frontend rebuild.
func WriteFile(dir string, w model.Widget) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create widgets directory: %w", err)
	}

	path := filepath.Join(dir, w.ID+".html")
	if err := os.WriteFile(path, []byte(Document(w)), 0644); err != nil {
		return "", fmt.Errorf("failed to write widget HTML: %w", err)
	}
	return path, nil
}
