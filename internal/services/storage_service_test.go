package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSupabaseUploadFileReturnsPublicURL(t *testing.T) {
	var gotPath, gotAuth, gotUpsert string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotUpsert = r.Header.Get("x-upsert")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	storage := NewSupabaseStorageService(server.URL+"/", "fotos", "service-key")
	publicURL, err := storage.UploadFile(context.Background(), []byte("jpeg-bytes"), "1-abc.jpg", "/usuarios/")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}

	if gotPath != "/storage/v1/object/fotos/usuarios/1-abc.jpg" {
		t.Fatalf("unexpected upload path %q", gotPath)
	}
	if gotAuth != "Bearer service-key" || gotUpsert != "true" {
		t.Fatalf("unexpected headers auth=%q upsert=%q", gotAuth, gotUpsert)
	}
	if string(gotBody) != "jpeg-bytes" {
		t.Fatalf("unexpected body %q", gotBody)
	}
	want := server.URL + "/storage/v1/object/public/fotos/usuarios/1-abc.jpg"
	if publicURL != want {
		t.Fatalf("expected %q, got %q", want, publicURL)
	}
}

func TestSupabaseUploadFileSurfacesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusBadRequest)
	}))
	defer server.Close()

	storage := NewSupabaseStorageService(server.URL, "fotos", "service-key")
	_, err := storage.UploadFile(context.Background(), []byte("x"), "a.png", "usuarios")
	if err == nil || !strings.Contains(err.Error(), "status 400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestSupabaseDeleteFileIgnoresMissingObject(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	storage := NewSupabaseStorageService(server.URL, "fotos", "service-key")
	err := storage.DeleteFile(context.Background(), server.URL+"/storage/v1/object/public/fotos/usuarios/old.png")
	if err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/storage/v1/object/fotos/usuarios/old.png" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestSupabaseDeleteFileRejectsForeignBucket(t *testing.T) {
	storage := NewSupabaseStorageService("https://example.supabase.co", "fotos", "service-key")
	if err := storage.DeleteFile(context.Background(), "https://cdn.example.com/other/file.png"); err == nil {
		t.Fatal("expected error for url outside configured bucket")
	}
}

func TestPhotoObjectNameKeepsExtension(t *testing.T) {
	name := PhotoObjectName(42, "Selfie.JPG")
	if !strings.HasPrefix(name, "42-") || !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("unexpected object name %q", name)
	}
	if PhotoObjectName(42, "a.jpg") == PhotoObjectName(42, "a.jpg") {
		t.Fatal("expected object names to be unique")
	}
}

func TestSupabaseGetSignedURL(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"signedURL":"/object/sign/fotos/usuarios/fotos/1.png?token=abc"}`))
	}))
	defer server.Close()

	storage := NewSupabaseStorageService(server.URL, "fotos", "service-key")
	signed, err := storage.GetSignedURL(context.Background(), server.URL+"/storage/v1/object/public/fotos/usuarios/fotos/1.png")
	if err != nil {
		t.Fatalf("GetSignedURL: %v", err)
	}
	if gotPath != "/storage/v1/object/sign/fotos/usuarios/fotos/1.png" {
		t.Fatalf("unexpected sign path %q", gotPath)
	}
	if !strings.Contains(gotBody, `"expiresIn":3600`) {
		t.Fatalf("unexpected sign payload %q", gotBody)
	}
	want := server.URL + "/storage/v1/object/sign/fotos/usuarios/fotos/1.png?token=abc"
	if signed != want {
		t.Fatalf("expected %q, got %q", want, signed)
	}
}
