package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrotliRouter(minLength int, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BrotliWithConfig(BrotliConfig{Quality: brotli.DefaultCompression, MinLength: minLength}))
	r.GET("/body", handler)
	return r
}

func doBrotliGet(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/body", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBrotli_ShortBodyPassesThrough(t *testing.T) {
	t.Parallel()

	r := newBrotliRouter(1024, func(c *gin.Context) {
		c.String(http.StatusOK, "tiny")
	})
	w := doBrotliGet(r)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "tiny", w.Body.String())
}

func TestBrotli_MultiWriteBodyDecodesWhole(t *testing.T) {
	t.Parallel()

	// A large chunk starts compression; the short tail left in the buffer
	// must still travel through the same brotli stream.
	big := strings.Repeat("course-catalog-entry ", 100)
	tail := "short tail"

	r := newBrotliRouter(1024, func(c *gin.Context) {
		c.Status(http.StatusOK)
		_, _ = c.Writer.WriteString(big)
		_, _ = c.Writer.WriteString(tail)
	})
	w := doBrotliGet(r)

	require.Equal(t, "br", w.Header().Get("Content-Encoding"))
	decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(w.Body.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, big+tail, string(decoded))
}
