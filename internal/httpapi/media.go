package httpapi

import (
	"net/http"
	"os"

	"go.oneofone.dev/gserv"

	"github.com/jmvillar/strum/internal/media"
)

// handleMedia streams a stored audio file. ServeFile handles range
// requests, which browsers use when scrubbing.
func (s *Server) handleMedia(ctx *gserv.Context) gserv.Response {
	name := ctx.Param("name")
	path := s.media.Path(name)
	if _, err := os.Stat(path); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusNotFound, "file not found")
	}

	ctx.Header().Set("Content-Type", media.ContentType(name))
	http.ServeFile(ctx, ctx.Req, path)
	return nil
}
