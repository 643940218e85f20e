package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1 "github.com/JRamonda/my-cv/internal/delivery/http/v1"
	"github.com/JRamonda/my-cv/internal/delivery/http/middleware"
	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/internal/usecase"
	"github.com/JRamonda/my-cv/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	binding.EnableDecoderDisallowUnknownFields = true
	logger.Init()
}

// memRepo is an in-memory ResourceRepository used to drive the full
// handler/usecase path without a database.
type memRepo[T any] struct {
	rows map[string]*T
	ids  []string
	id   func(*T) string
}

func newMemRepo[T any](id func(*T) string) *memRepo[T] {
	return &memRepo[T]{rows: map[string]*T{}, id: id}
}

func (r *memRepo[T]) Create(ctx context.Context, m *T) error {
	r.rows[r.id(m)] = m
	r.ids = append(r.ids, r.id(m))
	return nil
}

func (r *memRepo[T]) Fetch(ctx context.Context) ([]T, error) {
	out := make([]T, 0, len(r.ids))
	for _, id := range r.ids {
		if m, ok := r.rows[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *memRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	dup := *m
	return &dup, nil
}

func (r *memRepo[T]) Update(ctx context.Context, m *T) error {
	if _, ok := r.rows[r.id(m)]; !ok {
		return domain.ErrNotFound
	}
	r.rows[r.id(m)] = m
	return nil
}

func (r *memRepo[T]) Delete(ctx context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func experienceRouter() *gin.Engine {
	repo := newMemRepo(func(e *domain.Experience) string { return e.ID })
	uc := usecase.NewResourceUsecase[domain.Experience]("Experience", repo)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	// No auth middleware here; gating is covered by the middleware tests.
	v1.NewExperienceHandler(api, api, uc)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func TestExperienceCreate(t *testing.T) {
	t.Run("Should create and return 201 with the full record", func(t *testing.T) {
		r := experienceRouter()
		w := doJSON(r, http.MethodPost, "/api/experience", `{
			"company": "Tech Corp",
			"position": "Senior Developer",
			"startDate": "2021-01-01",
			"current": true,
			"description": "Leading development"
		}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := dataOf(t, w)
		assert.NotEmpty(t, data["id"])
		assert.Equal(t, "Tech Corp", data["company"])
		// List fields default to [] rather than null.
		assert.Equal(t, []any{}, data["achievements"])
		assert.Nil(t, data["endDate"])
	})

	t.Run("Should clear endDate when current is true", func(t *testing.T) {
		r := experienceRouter()
		w := doJSON(r, http.MethodPost, "/api/experience", `{
			"company": "Tech Corp",
			"position": "Senior Developer",
			"startDate": "2021-01-01",
			"endDate": "2022-01-01",
			"current": true,
			"description": "Leading development"
		}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Nil(t, dataOf(t, w)["endDate"])
	})

	t.Run("Should name missing fields in the 400", func(t *testing.T) {
		r := experienceRouter()
		w := doJSON(r, http.MethodPost, "/api/experience", `{"company": "Tech Corp"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Position is required")
		assert.Contains(t, w.Body.String(), "Description is required")
	})

	t.Run("Should reject a malformed date", func(t *testing.T) {
		r := experienceRouter()
		w := doJSON(r, http.MethodPost, "/api/experience", `{
			"company": "Tech Corp",
			"position": "Dev",
			"startDate": "01/01/2021",
			"description": "x"
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "StartDate")
	})

	t.Run("Should reject unknown fields", func(t *testing.T) {
		r := experienceRouter()
		w := doJSON(r, http.MethodPost, "/api/experience", `{
			"company": "Tech Corp",
			"position": "Dev",
			"startDate": "2021-01-01",
			"description": "x",
			"salary": 100000
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExperienceUpdate(t *testing.T) {
	seed := func(r *gin.Engine) string {
		w := doJSON(r, http.MethodPost, "/api/experience", `{
			"company": "StartupXYZ",
			"position": "Full Stack Developer",
			"startDate": "2019-06-01",
			"endDate": "2020-12-31",
			"description": "Client projects",
			"technologies": ["Vue.js", "Express"]
		}`)
		return dataOf(t, w)["id"].(string)
	}

	t.Run("Should merge a partial patch", func(t *testing.T) {
		r := experienceRouter()
		id := seed(r)

		w := doJSON(r, http.MethodPut, "/api/experience/"+id, `{"position": "Lead Developer"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		data := dataOf(t, w)
		assert.Equal(t, "Lead Developer", data["position"])
		assert.Equal(t, "StartupXYZ", data["company"])
		assert.Equal(t, []any{"Vue.js", "Express"}, data["technologies"])
	})

	t.Run("Should drop endDate when patched to current", func(t *testing.T) {
		r := experienceRouter()
		id := seed(r)

		w := doJSON(r, http.MethodPut, "/api/experience/"+id, `{"current": true}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, dataOf(t, w)["endDate"])
	})

	t.Run("Should 404 on an unknown id", func(t *testing.T) {
		r := experienceRouter()
		w := doJSON(r, http.MethodPut, "/api/experience/ghost", `{"position": "Lead"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Experience with ID ghost not found")
	})
}

func TestExperienceDelete(t *testing.T) {
	t.Run("Should return the removed record and then 404", func(t *testing.T) {
		r := experienceRouter()
		w := doJSON(r, http.MethodPost, "/api/experience", `{
			"company": "Tech Corp",
			"position": "Dev",
			"startDate": "2021-01-01",
			"description": "x"
		}`)
		id := dataOf(t, w)["id"].(string)

		w = doJSON(r, http.MethodDelete, "/api/experience/"+id, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Tech Corp", dataOf(t, w)["company"])

		w = doJSON(r, http.MethodGet, "/api/experience/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
