package handlers

import (
	_ "embed"

	"github.com/gofiber/fiber/v3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

const docsPage = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Studio Planner API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/docs/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
    });
  };
</script>
</body>
</html>`

// OpenAPIDocument returns the embedded route catalogue.
func OpenAPIDocument(c fiber.Ctx) error {
	c.Type("yaml")
	return c.Send(openAPIDocument)
}

// DocsPage is a Swagger UI shell pointed at OpenAPIDocument.
func DocsPage(c fiber.Ctx) error {
	c.Type("html")
	return c.SendString(docsPage)
}
