package httpapi

import (
	"net/http"

	"go.oneofone.dev/gserv"
)

func (s *Server) handleListPlaylists(ctx *gserv.Context) gserv.Response {
	return gserv.NewJSONResponse(s.lib.Playlists())
}

func (s *Server) handleGetPlaylist(ctx *gserv.Context) gserv.Response {
	id, ok := pathID(ctx, "id")
	if !ok {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid playlist id")
	}
	playlist, found := s.lib.Playlist(id)
	if !found {
		return gserv.NewJSONErrorResponse(http.StatusNotFound, "playlist not found")
	}
	return gserv.NewJSONResponse(playlist)
}

func (s *Server) handleCreatePlaylist(ctx *gserv.Context) gserv.Response {
	var req struct {
		Name   string `json:"name"`
		Artist string `json:"artist"`
	}
	if err := decodeBody(ctx, &req); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid request body")
	}

	playlist, err := s.lib.CreatePlaylist(req.Name, req.Artist)
	if err != nil {
		return errResponse(err)
	}
	s.log.Info("playlist created", "id", playlist.ID, "name", playlist.Name)
	return respondCreated(ctx, playlist)
}

func (s *Server) handleEditPlaylist(ctx *gserv.Context) gserv.Response {
	id, ok := pathID(ctx, "id")
	if !ok {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid playlist id")
	}
	var req struct {
		Name   string `json:"name"`
		Artist string `json:"artist"`
	}
	if err := decodeBody(ctx, &req); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid request body")
	}

	playlist, err := s.lib.EditPlaylist(id, req.Name, req.Artist)
	if err != nil {
		return errResponse(err)
	}
	return gserv.NewJSONResponse(playlist)
}

func (s *Server) handleDeletePlaylist(ctx *gserv.Context) gserv.Response {
	id, ok := pathID(ctx, "id")
	if !ok {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid playlist id")
	}

	playlist, removed, err := s.lib.DeletePlaylist(id)
	if err != nil {
		return errResponse(err)
	}
	if !removed {
		return gserv.NewJSONErrorResponse(http.StatusNotFound, "playlist not found")
	}
	s.log.Info("playlist deleted", "id", playlist.ID, "name", playlist.Name)
	return gserv.NewJSONResponse(map[string]string{"message": "playlist deleted"})
}

func (s *Server) handleAddSongToPlaylist(ctx *gserv.Context) gserv.Response {
	playlistID, ok := pathID(ctx, "id")
	if !ok {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid playlist id")
	}
	var req struct {
		SongID int64 `json:"songId"`
	}
	if err := decodeBody(ctx, &req); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid request body")
	}

	playlist, err := s.lib.AddSongToPlaylist(playlistID, req.SongID)
	if err != nil {
		return errResponse(err)
	}
	return gserv.NewJSONResponse(playlist)
}

func (s *Server) handleRemoveSongFromPlaylist(ctx *gserv.Context) gserv.Response {
	playlistID, ok := pathID(ctx, "id")
	if !ok {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid playlist id")
	}
	songID, ok := pathID(ctx, "songId")
	if !ok {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid song id")
	}

	playlist, err := s.lib.RemoveSongFromPlaylist(playlistID, songID)
	if err != nil {
		return errResponse(err)
	}
	return gserv.NewJSONResponse(playlist)
}
