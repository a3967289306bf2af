package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	docsPath     = "/swagger"
	docsSpecPath = docsPath + "/spec"
)

var docsPage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: {{.SpecURL}}, dom_id: '#swagger-ui', layout: 'BaseLayout',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset]});
  </script>
</body>
</html>`))

// APIDocs serves the OpenAPI document and a Swagger UI page that reads it.
type APIDocs struct {
	spec []byte
	page []byte
}

// NewAPIDocs renders the UI page once for spec. A nil *APIDocs answers 404.
func NewAPIDocs(spec []byte) (*APIDocs, error) {
	var page bytes.Buffer
	err := docsPage.Execute(&page, struct{ Title, SpecURL string }{"Child Wallet API", docsSpecPath})
	if err != nil {
		return nil, err
	}
	return &APIDocs{spec: spec, page: page.Bytes()}, nil
}

func (d *APIDocs) register(r gin.IRoutes) {
	r.GET(docsPath, d.UI)
	r.GET(docsSpecPath, d.Spec)
}

// Spec handles GET /swagger/spec.
func (d *APIDocs) Spec(c *gin.Context) {
	if d == nil || len(d.spec) == 0 {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/x-yaml", d.spec)
}

// UI handles GET /swagger.
func (d *APIDocs) UI(c *gin.Context) {
	if d == nil || len(d.spec) == 0 {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", d.page)
}
