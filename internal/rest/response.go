package rest

import "github.com/gin-gonic/gin"

// HeaderDataSource tells callers whether a payload came from the database
// or from the fixed sample data.
const HeaderDataSource = "X-Data-Source"

const (
	DataSourceDatabase = "database"
	DataSourceFallback = "fallback"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func markDataSource(c *gin.Context, source string) {
	c.Header(HeaderDataSource, source)
	c.Header("Cache-Control", "no-store, max-age=0")
}
