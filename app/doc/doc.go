package doc

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

const elementsHTML = `
<!DOCTYPE html>
<html>
<head>
    <title>Country Configuration API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
    <style>
        body { margin: 0; padding: 0; height: 100vh; }
        elements-api { height: 100%; }
    </style>
</head>
<body>
    <elements-api
        apiDescriptionUrl="/swagger/doc.json"
        router="hash"
        layout="sidebar"
    ></elements-api>
</body>
</html>`

// swaggerJSON serves the registered document with the servers of the
// running environment added.
func swaggerJSON(env, addr string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := swag.ReadDoc()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read Swagger doc"})
			return
		}

		var document map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &document); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Swagger doc"})
			return
		}

		document["servers"] = serversFor(env, addr)

		modified, err := json.Marshal(document)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate Swagger doc"})
			return
		}

		c.Data(http.StatusOK, "application/json", modified)
	}
}

func serversFor(env, addr string) []map[string]interface{} {
	scheme := "http"
	if env == "production" {
		scheme = "https"
	}
	return []map[string]interface{}{
		{
			"url":         scheme + "://" + addr + "/",
			"description": env + " server",
		},
	}
}

func serveElements(c *gin.Context) {
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, elementsHTML)
}

// Init mounts the OpenAPI document and its viewer
func Init(r *gin.Engine, env, addr string) {
	r.GET("/swagger/doc.json", swaggerJSON(env, addr))
	r.GET("/docs/*any", serveElements)
}
