package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		allowed []string
		want    string
		wantErr error
	}{
		{"png allowed", pngHeader, AllowImage, "image/png", nil},
		{"text rejected", []byte("just some notes"), AllowImage, "", ErrFileTypeNotAllowed},
		{"anything without a list", []byte("just some notes"), nil, "text/plain", nil},
	}
	for _, tc := range tests {
		mtype, err := detectType(fileHeader(t, "upload", tc.content), tc.allowed)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !mtype.Is(tc.want) {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, mtype.String())
		}
	}
}

func TestObjectKeyFromLink(t *testing.T) {
	s3 := &awsS3{bucket: "trackfit", region: "eu-central-1"}

	link := s3.GetPublicLinkKey("meals/u1/m1.png")
	if link != "https://trackfit.s3.eu-central-1.amazonaws.com/meals/u1/m1.png" {
		t.Fatalf("unexpected public link %s", link)
	}

	tests := []struct {
		link string
		want string
	}{
		{link, "meals/u1/m1.png"},
		{"https://other.s3.eu-central-1.amazonaws.com/meals/u1/m1.png", ""},
		{"https://img.test/meals/u1/m1.png", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := s3.GetObjectKeyFromLink(tc.link); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.link, tc.want, got)
		}
	}
}
