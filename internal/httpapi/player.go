package httpapi

import (
	"net/http"

	"github.com/samber/lo"
	"go.oneofone.dev/gserv"

	"github.com/jmvillar/strum/internal/library"
	"github.com/jmvillar/strum/internal/playback"
)

func (s *Server) handlePlayerState(ctx *gserv.Context) gserv.Response {
	return gserv.NewJSONResponse(s.session.Snapshot())
}

// handleSelect loads a song into the session. With a playlistId the
// playlist becomes the playback context and its snapshots form the
// sequence; without one the whole library does.
func (s *Server) handleSelect(ctx *gserv.Context) gserv.Response {
	var req struct {
		SongID     int64 `json:"songId"`
		PlaylistID int64 `json:"playlistId"`
	}
	if err := decodeBody(ctx, &req); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid request body")
	}

	var (
		song     playback.Song
		sequence []playback.Song
	)
	if req.PlaylistID != 0 {
		playlist, ok := s.lib.Playlist(req.PlaylistID)
		if !ok {
			return gserv.NewJSONErrorResponse(http.StatusNotFound, "playlist not found")
		}
		sequence = lo.Map(playlist.Songs, func(ls library.Song, _ int) playback.Song {
			return toPlaybackSong(ls, playlist.ID)
		})
		idx := lo.IndexOf(lo.Map(playlist.Songs, func(ls library.Song, _ int) int64 { return ls.ID }), req.SongID)
		if idx < 0 {
			return gserv.NewJSONErrorResponse(http.StatusNotFound, "song not in playlist")
		}
		song = sequence[idx]
	} else {
		ls, ok := s.lib.Song(req.SongID)
		if !ok {
			return gserv.NewJSONErrorResponse(http.StatusNotFound, "song not found")
		}
		song = toPlaybackSong(ls, 0)
		sequence = lo.Map(s.lib.Songs(), func(ls library.Song, _ int) playback.Song {
			return toPlaybackSong(ls, 0)
		})
	}

	s.session.SelectSong(song, sequence)
	return gserv.NewJSONResponse(s.session.Snapshot())
}

func (s *Server) handleToggle(ctx *gserv.Context) gserv.Response {
	s.session.TogglePlayPause()
	return gserv.NewJSONResponse(s.session.Snapshot())
}

func (s *Server) handleNext(ctx *gserv.Context) gserv.Response {
	s.session.SkipForward()
	return gserv.NewJSONResponse(s.session.Snapshot())
}

func (s *Server) handlePrevious(ctx *gserv.Context) gserv.Response {
	s.session.SkipBackward()
	return gserv.NewJSONResponse(s.session.Snapshot())
}

// handleEnded is how a browser-side player reports that the current
// song finished, so the session advances the same way a local output
// would.
func (s *Server) handleEnded(ctx *gserv.Context) gserv.Response {
	s.session.OnPlaybackEnded()
	return gserv.NewJSONResponse(s.session.Snapshot())
}

func (s *Server) handleSeek(ctx *gserv.Context) gserv.Response {
	var req struct {
		Position float64 `json:"position"`
	}
	if err := decodeBody(ctx, &req); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid request body")
	}
	s.session.Seek(req.Position)
	return gserv.NewJSONResponse(s.session.Snapshot())
}

func (s *Server) handleVolume(ctx *gserv.Context) gserv.Response {
	var req struct {
		Volume float64 `json:"volume"`
	}
	if err := decodeBody(ctx, &req); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid request body")
	}
	s.session.SetVolume(req.Volume)
	return gserv.NewJSONResponse(s.session.Snapshot())
}

func (s *Server) handleMute(ctx *gserv.Context) gserv.Response {
	s.session.ToggleMute()
	return gserv.NewJSONResponse(s.session.Snapshot())
}

func (s *Server) handleReset(ctx *gserv.Context) gserv.Response {
	s.session.Reset()
	return gserv.NewJSONResponse(s.session.Snapshot())
}

// handleLeave is called when the client navigates away from a playlist
// view. The session resets only if that playlist is its active context.
func (s *Server) handleLeave(ctx *gserv.Context) gserv.Response {
	var req struct {
		PlaylistID int64 `json:"playlistId"`
	}
	if err := decodeBody(ctx, &req); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid request body")
	}
	s.session.LeaveContext(req.PlaylistID)
	return gserv.NewJSONResponse(s.session.Snapshot())
}

func toPlaybackSong(s library.Song, playlistID int64) playback.Song {
	return playback.Song{
		ID:         s.ID,
		Title:      s.Title,
		Artist:     s.Artist,
		Duration:   s.Duration,
		URL:        s.URL,
		PlaylistID: playlistID,
	}
}
