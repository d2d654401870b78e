package storage

import (
	"mime/multipart"
	"testing"
)

func TestPublicLinkRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    *awsS3
		want string
	}{
		{
			name: "aws",
			s:    &awsS3{bucket: "foodgram", region: "eu-central-1"},
			want: "https://foodgram.s3.eu-central-1.amazonaws.com/recipes/1.png",
		},
		{
			name: "custom endpoint",
			s:    &awsS3{bucket: "foodgram", endpoint: "http://localhost:9000/"},
			want: "http://localhost:9000/foodgram/recipes/1.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := tt.s.GetPublicLinkKey("recipes/1.png")
			if link != tt.want {
				t.Errorf("GetPublicLinkKey() = %q, want %q", link, tt.want)
			}
			if key := tt.s.GetObjectKeyFromLink(link); key != "recipes/1.png" {
				t.Errorf("GetObjectKeyFromLink() = %q", key)
			}
		})
	}
}

func TestGetObjectKeyFromForeignLink(t *testing.T) {
	s := &awsS3{bucket: "foodgram", region: "eu-central-1"}
	if key := s.GetObjectKeyFromLink("https://example.com/a.png"); key != "" {
		t.Errorf("GetObjectKeyFromLink() = %q, want empty", key)
	}
}

func TestUploadFileRejectsExtension(t *testing.T) {
	s := &awsS3{bucket: "foodgram"}
	_, err := s.UploadFile("x", &multipart.FileHeader{Filename: "notes.txt"}, "recipes", AllowImage...)
	if err != ErrFileTypeNotAllowed {
		t.Errorf("UploadFile() error = %v, want %v", err, ErrFileTypeNotAllowed)
	}
}

func TestUploadFileWithoutClient(t *testing.T) {
	s := &awsS3{bucket: "foodgram"}
	_, err := s.UploadFile("x", &multipart.FileHeader{Filename: "dish.PNG"}, "recipes", AllowImage...)
	if err != ErrStorageNotReady {
		t.Errorf("UploadFile() error = %v, want %v", err, ErrStorageNotReady)
	}
}
