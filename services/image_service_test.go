package services

import (
	"testing"

	"fashion-platform/internal/config"
)

func TestImageService_ProductImageURL(t *testing.T) {
	s := NewImageService(config.ImageConfig{CDNBaseURL: "https://cdn.test/upload", Width: 300})

	got := s.ProductImageURL("P001")
	want := "https://cdn.test/upload/w_300/P001"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImageService_DefaultWidth(t *testing.T) {
	s := NewImageService(config.ImageConfig{CDNBaseURL: "https://cdn.test/upload"})

	got := s.ProductImageURL("P001")
	want := "https://cdn.test/upload/w_400/P001"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
