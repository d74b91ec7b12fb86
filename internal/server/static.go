package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphweave/graphweave/web"
)

// The viewer is two files embedded at build time. Served directly instead
// of via http.FileServer, which special-cases index.html with a redirect.
func registerViewer(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		serveAsset(c, "index.html", "text/html; charset=utf-8")
	})
	r.GET("/app.js", func(c *gin.Context) {
		serveAsset(c, "app.js", "application/javascript")
	})
}

func serveAsset(c *gin.Context, name, contentType string) {
	data, err := web.Assets.ReadFile(name)
	if err != nil {
		c.String(http.StatusNotFound, "asset not found")
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
