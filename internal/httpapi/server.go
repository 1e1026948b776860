// Package httpapi exposes the library and the playback session over a
// JSON REST interface and serves the stored audio files.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"go.oneofone.dev/gserv"

	"github.com/jmvillar/strum/internal/errmsg"
	"github.com/jmvillar/strum/internal/library"
	"github.com/jmvillar/strum/internal/media"
	"github.com/jmvillar/strum/internal/playback"
)

type Server struct {
	srv     *gserv.Server
	lib     *library.Library
	session *playback.Session
	media   *media.Store
	log     *slog.Logger
}

// New wires all routes onto a fresh server.
func New(lib *library.Library, session *playback.Session, store *media.Store, log *slog.Logger) *Server {
	s := &Server{
		srv:     gserv.New(gserv.WriteTimeout(time.Second*30), gserv.ReadTimeout(time.Second*30)),
		lib:     lib,
		session: session,
		media:   store,
		log:     log,
	}

	s.srv.GET("/ping", s.handlePing)

	s.srv.GET("/songs", s.handleListSongs)
	s.srv.POST("/songs", s.handleCreateSong)
	s.srv.PUT("/songs/{id}", s.handleEditSong)
	s.srv.DELETE("/songs/{id}", s.handleDeleteSong)

	s.srv.GET("/playlists", s.handleListPlaylists)
	s.srv.GET("/playlists/{id}", s.handleGetPlaylist)
	s.srv.POST("/playlists", s.handleCreatePlaylist)
	s.srv.PUT("/playlists/{id}", s.handleEditPlaylist)
	s.srv.DELETE("/playlists/{id}", s.handleDeletePlaylist)
	s.srv.POST("/playlists/{id}/songs", s.handleAddSongToPlaylist)
	s.srv.DELETE("/playlists/{id}/songs/{songId}", s.handleRemoveSongFromPlaylist)

	s.srv.GET("/player", s.handlePlayerState)
	s.srv.POST("/player/select", s.handleSelect)
	s.srv.POST("/player/toggle", s.handleToggle)
	s.srv.POST("/player/next", s.handleNext)
	s.srv.POST("/player/previous", s.handlePrevious)
	s.srv.POST("/player/ended", s.handleEnded)
	s.srv.POST("/player/seek", s.handleSeek)
	s.srv.POST("/player/volume", s.handleVolume)
	s.srv.POST("/player/mute", s.handleMute)
	s.srv.POST("/player/reset", s.handleReset)
	s.srv.POST("/player/leave", s.handleLeave)

	s.srv.GET("/media/{name}", s.handleMedia)

	return s
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.log.Info("listening", "addr", addr)
	return s.srv.Run(ctx, addr)
}

func (s *Server) Close() error {
	return s.srv.Close()
}

func (s *Server) handlePing(ctx *gserv.Context) gserv.Response {
	return gserv.NewJSONResponse(map[string]string{"message": "pong"})
}

// respondCreated writes a 201 with a JSON body directly, since the
// canned JSON responses always carry 200.
func respondCreated(ctx *gserv.Context, v any) gserv.Response {
	ctx.Header().Set("Content-Type", "application/json; charset=utf-8")
	ctx.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(ctx).Encode(v)
	return nil
}

// errResponse maps an error to its HTTP status by kind.
func errResponse(err error) gserv.Response {
	status := http.StatusInternalServerError
	switch errmsg.KindOf(err) {
	case errmsg.KindValidation, errmsg.KindDuplicate, errmsg.KindDecode:
		status = http.StatusBadRequest
	case errmsg.KindNotFound:
		status = http.StatusNotFound
	}
	return gserv.NewJSONErrorResponse(status, errmsg.Message(err))
}

func pathID(ctx *gserv.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeBody(ctx *gserv.Context, v any) error {
	defer ctx.Req.Body.Close()
	return json.NewDecoder(ctx.Req.Body).Decode(v)
}
