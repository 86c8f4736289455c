package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"PostPresenter":   "post_presenter",
		"HTTPPresenter":   "http_presenter",
		"UserV2Presenter": "user_v2_presenter",
		"Post":            "post",
		"APIKey":          "api_key",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, snake(in))
		})
	}
}

func TestPackageName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "blog", packageName("Blog"))
	assert.Equal(t, "adminposts", packageName("admin-posts"))
	assert.Equal(t, "v2", packageName("v_2"))
}
