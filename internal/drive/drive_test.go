package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertDriveLink(t *testing.T) {
	t.Run("file share link", func(t *testing.T) {
		got := ConvertDriveLink("https://drive.google.com/file/d/1AbC_d-Ef23/view?usp=sharing")
		assert.Equal(t, "https://drive.google.com/uc?export=view&id=1AbC_d-Ef23", got)
	})

	t.Run("open link with id parameter", func(t *testing.T) {
		got := ConvertDriveLink("https://drive.google.com/open?id=XyZ789_-a")
		assert.Equal(t, "https://drive.google.com/uc?export=view&id=XyZ789_-a", got)
	})

	t.Run("non-drive url is returned unchanged", func(t *testing.T) {
		got := ConvertDriveLink("https://example.com/a.png")
		assert.Equal(t, "https://example.com/a.png", got)
	})

	t.Run("drive url with no extractable id is returned unchanged", func(t *testing.T) {
		raw := "https://drive.google.com/drive/folders/"
		assert.Equal(t, raw, ConvertDriveLink(raw))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Equal(t, "", ConvertDriveLink(""))
	})
}
