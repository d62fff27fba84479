package fetch_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"noaa-wallpaper/fetch"
)

func TestDownloadWritesExactBody(t *testing.T) {
	body := bytes.Repeat([]byte{0xAB}, 1200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "latest.jpg")
	client := fetch.New(5 * time.Second)

	updated, err := client.Download(context.Background(), srv.URL, dest)
	gt.NoError(t, err)
	gt.Value(t, updated).Equal(true)

	got, err := os.ReadFile(dest)
	gt.NoError(t, err)
	gt.Number(t, len(got)).Equal(1200)
	gt.Value(t, bytes.Equal(got, body)).Equal(true)
}

func TestDownloadCreatesDestinationDir(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg bytes"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "nested", "cache", "latest.jpg")
	client := fetch.New(5 * time.Second)

	_, err := client.Download(context.Background(), srv.URL, dest)
	gt.NoError(t, err)

	_, err = os.Stat(dest)
	gt.NoError(t, err)
}

func TestDownloadBadStatusLeavesFileUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "latest.jpg")
	previous := []byte("previous image")
	gt.NoError(t, os.WriteFile(dest, previous, 0o644))

	client := fetch.New(5 * time.Second)
	updated, err := client.Download(context.Background(), srv.URL, dest)
	gt.Error(t, err)
	gt.Value(t, updated).Equal(false)
	gt.Value(t, errors.Is(err, fetch.ErrBadStatus)).Equal(true)

	got, err := os.ReadFile(dest)
	gt.NoError(t, err)
	gt.Value(t, bytes.Equal(got, previous)).Equal(true)
}

func TestDownloadTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "latest.jpg")
	client := fetch.New(50 * time.Millisecond)

	updated, err := client.Download(context.Background(), srv.URL, dest)
	gt.Error(t, err)
	gt.Value(t, updated).Equal(false)

	_, err = os.Stat(dest)
	gt.Value(t, os.IsNotExist(err)).Equal(true)
}

func TestDownloadSkipsUnchangedImage(t *testing.T) {
	lastModified := "Mon, 24 Aug 2026 12:00:00 GMT"
	var fullDownloads int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-Modified-Since") == lastModified {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		atomic.AddInt32(&fullDownloads, 1)
		w.Header().Set("Last-Modified", lastModified)
		_, _ = w.Write([]byte("jpeg bytes"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "latest.jpg")
	client := fetch.New(5 * time.Second)

	updated, err := client.Download(context.Background(), srv.URL, dest)
	gt.NoError(t, err)
	gt.Value(t, updated).Equal(true)

	// As long as the same client is reused, an unchanged upstream image is
	// never transferred again.
	for i := 0; i < 3; i++ {
		updated, err = client.Download(context.Background(), srv.URL, dest)
		gt.NoError(t, err)
		gt.Value(t, updated).Equal(false)
	}
	gt.Number(t, atomic.LoadInt32(&fullDownloads)).Equal(int32(1))
}

func TestDownloadNoPartialFileLeftBehind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "latest.jpg")
	client := fetch.New(5 * time.Second)

	_, err := client.Download(context.Background(), srv.URL, dest)
	gt.Error(t, err)

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err)
	gt.Number(t, len(entries)).Equal(0)
}
