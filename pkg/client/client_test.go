package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JRamonda/my-cv/pkg/client"

	"github.com/stretchr/testify/assert"
)

func envelope(data any) []byte {
	buf, _ := json.Marshal(map[string]any{
		"success": true,
		"message": "ok",
		"data":    data,
	})
	return buf
}

func errEnvelope(message string) []byte {
	buf, _ := json.Marshal(map[string]any{
		"success": false,
		"message": message,
	})
	return buf
}

func TestClientRequests(t *testing.T) {
	t.Run("Should decode the data field of the envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/skills", r.URL.Path)
			w.Write(envelope([]client.Skill{{Name: "React", Level: "expert"}}))
		}))
		defer srv.Close()

		skills, err := client.New(srv.URL).Skills().List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, skills, 1)
		assert.Equal(t, "React", skills[0].Name)
	})

	t.Run("Should send the bearer token on mutations", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, http.MethodPost, r.Method)
			w.Write(envelope(client.Skill{Name: "Go"}))
		}))
		defer srv.Close()

		c := client.New(srv.URL, client.WithToken("tok-123"))
		_, err := c.Skills().Create(context.Background(), map[string]any{"category": "backend", "name": "Go"})
		assert.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("Should map 404 onto ErrNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write(errEnvelope("Skill with ID nope not found"))
		}))
		defer srv.Close()

		_, err := client.New(srv.URL).Skills().Get(context.Background(), "nope")
		assert.ErrorIs(t, err, client.ErrNotFound)
		assert.Contains(t, err.Error(), "Skill with ID nope not found")
	})

	t.Run("Should map 401 onto ErrUnauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write(errEnvelope("Authorization header required"))
		}))
		defer srv.Close()

		_, err := client.New(srv.URL).Skills().Delete(context.Background(), "skill-1")
		assert.ErrorIs(t, err, client.ErrUnauthorized)
	})

	t.Run("Login should store the returned token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "admin@example.com", body["email"])
			w.Write(envelope(map[string]any{
				"access_token": "tok-456",
				"user":         map[string]string{"email": "admin@example.com"},
			}))
		}))
		defer srv.Close()

		c := client.New(srv.URL)
		auth, err := c.Login(context.Background(), "admin@example.com", "admin123")
		assert.NoError(t, err)
		assert.Equal(t, "tok-456", auth.AccessToken)
		assert.Equal(t, "tok-456", c.Token())
	})
}

func TestFetchSite(t *testing.T) {
	t.Run("Should aggregate all public resources", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/profile":
				w.Write(envelope(client.Profile{Name: "John Doe", Title: "Full Stack Developer"}))
			case "/api/experience":
				w.Write(envelope([]client.Experience{{Company: "Tech Corp"}}))
			case "/api/projects":
				w.Write(envelope([]client.Project{{Title: "E-commerce Platform"}, {Title: "Weather Dashboard"}}))
			default:
				w.Write(envelope([]any{}))
			}
		}))
		defer srv.Close()

		site, err := client.New(srv.URL).FetchSite(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "John Doe", site.Profile.Name)
		assert.Len(t, site.Experiences, 1)
		assert.Len(t, site.Projects, 2)
		assert.Empty(t, site.Skills)
	})

	t.Run("Should fail the aggregate when the profile is missing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/profile" {
				w.WriteHeader(http.StatusNotFound)
				w.Write(errEnvelope("Profile not found"))
				return
			}
			w.Write(envelope([]any{}))
		}))
		defer srv.Close()

		_, err := client.New(srv.URL).FetchSite(context.Background())
		assert.ErrorIs(t, err, client.ErrNotFound)
	})

	t.Run("Should fail when a list endpoint fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/projects" {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write(errEnvelope("An unexpected error occurred. Please try again later."))
				return
			}
			w.Write(envelope([]any{}))
		}))
		defer srv.Close()

		_, err := client.New(srv.URL).FetchSite(context.Background())
		assert.Error(t, err)
	})
}

func TestListFields(t *testing.T) {
	assert.Equal(t, []string{"React", "Node.js"}, client.SplitList("React, Node.js"))
	assert.Equal(t, []string{"a", "b"}, client.SplitList("a, ,b,"))
	assert.Empty(t, client.SplitList(""))
	assert.Equal(t, "React, Node.js", client.JoinList([]string{"React", "Node.js"}))
}
