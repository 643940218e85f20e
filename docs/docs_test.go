package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The swagger template must stay in step with the routes the router
// actually mounts.
func TestDocTemplateCoversAPISurface(t *testing.T) {
	raw := strings.NewReplacer(
		"{{ marshal .Schemes }}", "[]",
		"{{escape .Description}}", "",
		"{{.Title}}", "",
		"{{.Version}}", "",
		"{{.Host}}", "",
		"{{.BasePath}}", "",
	).Replace(docTemplate)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	assert.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Contains(t, doc.Paths, "/auth/login")
	assert.Contains(t, doc.Paths, "/health")
	assert.Contains(t, doc.Paths, "/profile")
	for _, p := range []string{"/experience", "/projects", "/skills", "/tech-stack", "/references"} {
		assert.Contains(t, doc.Paths, p, p)
		assert.Contains(t, doc.Paths, p+"/{id}", p)

		assert.Contains(t, doc.Paths[p], "get")
		assert.Contains(t, doc.Paths[p], "post")
		assert.Contains(t, doc.Paths[p+"/{id}"], "get")
		assert.Contains(t, doc.Paths[p+"/{id}"], "put")
		assert.Contains(t, doc.Paths[p+"/{id}"], "delete")

		// Mutations carry the bearer scheme, reads do not.
		assert.Contains(t, string(doc.Paths[p]["post"]), "BearerAuth")
		assert.NotContains(t, string(doc.Paths[p]["get"]), "BearerAuth")
	}
}
