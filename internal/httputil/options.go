package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers for OPTIONS requests. Each one answers with 204 and an allow
// header listing the methods the route supports.

func options(c *gin.Context, allow string) {
	c.Header("allow", allow)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context)            { options(c, "OPTIONS, GET") }
func OptionsGetPost(c *gin.Context)        { options(c, "OPTIONS, GET, POST") }
func OptionsGetPatchDelete(c *gin.Context) { options(c, "OPTIONS, GET, PATCH, DELETE") }
