package domain

import (
	"strings"
	"testing"
)

func TestUploadFilename(t *testing.T) {
	got := UploadFilename("photo.png")
	if !strings.HasPrefix(got, "photo_") {
		t.Errorf("UploadFilename() = %q, want prefix %q", got, "photo_")
	}
	if !strings.HasSuffix(got, ".png") {
		t.Errorf("UploadFilename() = %q, want suffix %q", got, ".png")
	}
	// name + "_" + 8 hex chars + ext
	if len(got) != len("photo")+1+8+len(".png") {
		t.Errorf("UploadFilename() = %q, unexpected length %d", got, len(got))
	}

	if again := UploadFilename("photo.png"); again == got {
		t.Errorf("UploadFilename() produced the same name twice: %q", got)
	}
}

func TestUploadFilenameStripsDirectories(t *testing.T) {
	got := UploadFilename("../../etc/passwd.txt")
	if strings.Contains(got, "/") || strings.Contains(got, "..") {
		t.Errorf("UploadFilename() kept path components: %q", got)
	}
	if !strings.HasPrefix(got, "passwd_") {
		t.Errorf("UploadFilename() = %q, want prefix %q", got, "passwd_")
	}
}
