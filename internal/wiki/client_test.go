package wiki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

const testUserAgent = "gielinor-bot-test"

// newWikiStub serves canned opensearch and parse responses keyed by action
func newWikiStub(t *testing.T, search func(query string) []string, parse func(page string) (string, bool)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))

		switch r.URL.Query().Get("action") {
		case "opensearch":
			query := r.URL.Query().Get("search")
			titles := search(query)
			resp := []interface{}{query, titles, []string{}, []string{}}
			json.NewEncoder(w).Encode(resp)
		case "parse":
			page := r.URL.Query().Get("page")
			wikitext, ok := parse(page)
			if !ok {
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error": map[string]string{"code": "missingtitle"},
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"parse": map[string]interface{}{
					"title":    page,
					"wikitext": wikitext,
				},
			})
		default:
			t.Errorf("unexpected action %q", r.URL.Query().Get("action"))
		}
	}))
}

func TestFetchMonsterWikitext(t *testing.T) {
	srv := newWikiStub(t,
		func(query string) []string {
			return []string{"Cerberus", "Cerberus/Strategies", "Hellhound"}
		},
		func(page string) (string, bool) {
			if page == "Cerberus" {
				return "==Drops==\n{{DropsLine|name=Infernal ashes|quantity=1|rarity=Always}}", true
			}
			return "", false
		},
	)
	defer srv.Close()

	client := NewClient(srv.URL, testUserAgent)

	title, wikitext, err := client.FetchMonsterWikitext(context.Background(), "cerberus")
	require.NoError(t, err)
	assert.Equal(t, "Cerberus", title)
	assert.Contains(t, wikitext, "Infernal ashes")
}

func TestFetchMonsterWikitextPicksClosestHit(t *testing.T) {
	srv := newWikiStub(t,
		func(query string) []string {
			// Deliberately ordered worst-first
			return []string{"Zulrah/Strategies", "Zulrah (Deadman)", "Zulrah"}
		},
		func(page string) (string, bool) {
			return "{{DropsLine|name=Tanzanite fang|quantity=1|rarity=1/1024}}", page == "Zulrah"
		},
	)
	defer srv.Close()

	client := NewClient(srv.URL, testUserAgent)

	title, _, err := client.FetchMonsterWikitext(context.Background(), "zulrah")
	require.NoError(t, err)
	assert.Equal(t, "Zulrah", title)
}

func TestFetchMonsterWikitextNoSearchHits(t *testing.T) {
	srv := newWikiStub(t,
		func(query string) []string { return []string{} },
		func(page string) (string, bool) { return "", false },
	)
	defer srv.Close()

	client := NewClient(srv.URL, testUserAgent)

	_, _, err := client.FetchMonsterWikitext(context.Background(), "notamonster")
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)
}

func TestFetchMonsterWikitextMissingPage(t *testing.T) {
	srv := newWikiStub(t,
		func(query string) []string { return []string{"Ghost page"} },
		func(page string) (string, bool) { return "", false },
	)
	defer srv.Close()

	client := NewClient(srv.URL, testUserAgent)

	_, _, err := client.FetchMonsterWikitext(context.Background(), "ghost page")
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)
}

func TestFetchMonsterWikitextMalformedSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testUserAgent)

	_, _, err := client.FetchMonsterWikitext(context.Background(), "cerberus")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestFetchMonsterWikitextServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testUserAgent)

	_, _, err := client.FetchMonsterWikitext(context.Background(), "cerberus")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetchMonsterWikitextUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", testUserAgent)

	_, _, err := client.FetchMonsterWikitext(context.Background(), "cerberus")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
