package store_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/trabalha-floriano/portal-backend/internal/store"
)

// ── List ───────────────────────────────────────────────────────────────────

func TestList_DecodesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vagas" {
			t.Errorf("path = %q, want /vagas", r.URL.Path)
		}
		if got := r.URL.Query().Get("status"); got != "aprovada" {
			t.Errorf("status filter = %q, want aprovada", got)
		}
		fmt.Fprint(w, `[{"id":1,"title":"Pintor"},{"id":2,"title":"Garçom"}]`)
	}))
	defer srv.Close()

	c := store.NewClient(srv.URL, 0)
	recs, err := c.List(context.Background(), store.ColVagas, map[string][]string{"status": {"aprovada"}})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if id, ok := recs[0].ID(); !ok || id != 1 || recs[0]["title"] != "Pintor" {
		t.Errorf("first record = %v", recs[0])
	}
}

func TestList_EmptyCollectionIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	recs, err := store.NewClient(srv.URL, 0).List(context.Background(), store.ColVagas, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Errorf("recs = %v, want an empty non-nil slice", recs)
	}
}

func TestList_Non2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	recs, err := store.NewClient(srv.URL, 0).List(context.Background(), store.ColVagas, nil)
	if err == nil {
		t.Fatal("expected an error on a 500, got nil")
	}
	if recs != nil {
		t.Errorf("a failed fetch must be distinguishable from empty, got %v", recs)
	}
	se, ok := err.(*store.StatusError)
	if !ok || se.Status != http.StatusInternalServerError {
		t.Errorf("err = %v, want a StatusError carrying 500", err)
	}
}

func TestList_UnreachableStore(t *testing.T) {
	// a closed server: the transport itself fails
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := store.NewClient(srv.URL, 0).List(context.Background(), store.ColVagas, nil)
	if err == nil {
		t.Fatal("expected an error when the store is unreachable, got nil")
	}
}

// ── Get ────────────────────────────────────────────────────────────────────

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := store.NewClient(srv.URL, 0).Get(context.Background(), store.ColVagas, 42)
	if !store.IsNotFound(err) {
		t.Errorf("err = %v, want IsNotFound to hold", err)
	}
}

func TestIsNotFound_OtherErrors(t *testing.T) {
	if store.IsNotFound(nil) {
		t.Error("nil must not be a not-found")
	}
	if store.IsNotFound(&store.StatusError{Status: http.StatusInternalServerError}) {
		t.Error("a 500 must not be a not-found")
	}
}

// ── Mutation request shapes ────────────────────────────────────────────────

func TestCreate_PostsJSON(t *testing.T) {
	var gotMethod, gotPath, gotCT string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotCT = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":7,"title":"Pintor","status":"pendente"}`)
	}))
	defer srv.Close()

	rec, err := store.NewClient(srv.URL, 0).Create(context.Background(), store.ColVagas,
		map[string]any{"title": "Pintor", "status": "pendente"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/vagas" {
		t.Errorf("request = %s %s, want POST /vagas", gotMethod, gotPath)
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q", gotCT)
	}
	if gotBody["title"] != "Pintor" {
		t.Errorf("posted body = %v", gotBody)
	}
	if id, ok := rec.ID(); !ok || id != 7 {
		t.Errorf("echoed id = %d (ok=%v), want 7", id, ok)
	}
}

func TestPatch_SendsOnlyGivenFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/vagas/3" {
			t.Errorf("request = %s %s, want PATCH /vagas/3", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, `{"id":3,"status":"aprovada"}`)
	}))
	defer srv.Close()

	_, err := store.NewClient(srv.URL, 0).Patch(context.Background(), store.ColVagas, 3,
		map[string]any{"status": "aprovada"})
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if len(gotBody) != 1 || gotBody["status"] != "aprovada" {
		t.Errorf("patch body = %v, want only the status field", gotBody)
	}
}

func TestDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	if err := store.NewClient(srv.URL, 0).Delete(context.Background(), store.ColUsuarios, 9); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/usuarios/9" {
		t.Errorf("request = %s %s, want DELETE /usuarios/9", gotMethod, gotPath)
	}
}

// ── Record decoding ────────────────────────────────────────────────────────

func TestRecordID(t *testing.T) {
	if id, ok := (store.Record{"id": float64(12)}).ID(); !ok || id != 12 {
		t.Errorf("ID() = %d (ok=%v), want 12", id, ok)
	}
	if id, ok := (store.Record{"id": json.Number("8")}).ID(); !ok || id != 8 {
		t.Errorf("ID() on a json.Number = %d (ok=%v), want 8", id, ok)
	}
	if _, ok := (store.Record{}).ID(); ok {
		t.Error("a record without id must report ok=false")
	}
}
