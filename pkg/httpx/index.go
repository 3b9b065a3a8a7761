package httpx

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"
)

// Endpoint describes one route for the index page.
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"lower": strings.ToLower,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
        }
        .container {
            background: white;
            border-radius: 12px;
            padding: 30px;
            box-shadow: 0 10px 40px rgba(0,0,0,0.1);
        }
        h1 { color: #333; margin-top: 0; }
        .endpoint {
            background: #f8f9fa;
            border-left: 4px solid #667eea;
            padding: 15px;
            margin: 15px 0;
            border-radius: 4px;
        }
        .method {
            display: inline-block;
            padding: 4px 12px;
            border-radius: 4px;
            font-weight: bold;
            font-size: 12px;
            margin-right: 10px;
        }
        .method.get { background: #28a745; color: white; }
        .method.post { background: #007bff; color: white; }
        .path { font-family: 'Courier New', monospace; color: #667eea; font-weight: bold; }
        .description { color: #666; margin-top: 8px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Title}}</h1>
        <p>Available endpoints:</p>
{{- range .Endpoints}}
        <div class="endpoint">
            <span class="method {{lower .Method}}">{{.Method}}</span>
            <span class="path">{{.Path}}</span>
            <div class="description">{{.Description}}</div>
        </div>
{{- end}}
    </div>
</body>
</html>
`))

// RenderIndex renders the endpoint listing page.
func RenderIndex(title string, endpoints []Endpoint) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, struct {
		Title     string
		Endpoints []Endpoint
	}{title, endpoints}); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return buf.Bytes(), nil
}

// IndexHandler renders the page once and serves the same bytes on every request.
func IndexHandler(title string, endpoints []Endpoint) (http.HandlerFunc, error) {
	page, err := RenderIndex(title, endpoints)
	if err != nil {
		return nil, err
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		HTML(w, http.StatusOK, page)
	}, nil
}
