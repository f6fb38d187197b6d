package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const docsHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Degen API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <h1>Degen API</h1>
    <p>API for managing cryptocurrency wallets.</p>
    <ul>
        <li><code>GET /wallets</code> &mdash; list all wallets</li>
        <li><code>GET /wallets/{id}</code> &mdash; get wallet by ID</li>
        <li><code>POST /wallets</code> &mdash; create a new wallet</li>
    </ul>
    <p>Interactive documentation: <a href="/swagger/index.html">Swagger UI</a>.
       Machine-readable spec: <a href="/openapi.json">openapi.json</a>,
       <a href="/openapi.yaml">openapi.yaml</a>.</p>
</body>
</html>
`

// Docs serves a static HTML overview of the API
// @Summary     API documentation
// @Description Returns a human-readable HTML page describing the API endpoints.
// @Tags        Health
// @Produce     html
// @Success     200  {string}  string  "Documentation page"
// @Router      /docs [get]
func (h *Handlers) Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsHTML))
}
