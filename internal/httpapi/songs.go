package httpapi

import (
	"net/http"
	"path"
	"strings"

	"go.oneofone.dev/gserv"
)

// maxUploadSize bounds the multipart form kept in memory.
const maxUploadSize = 64 << 20

func (s *Server) handleListSongs(ctx *gserv.Context) gserv.Response {
	return gserv.NewJSONResponse(s.lib.Songs())
}

// handleCreateSong accepts a multipart form with the audio under "file"
// and optional "title" and "artist" fields. Missing fields fall back to
// the file's embedded tags, then to the file name. The duration always
// comes from decoding the upload.
func (s *Server) handleCreateSong(ctx *gserv.Context) gserv.Response {
	if err := ctx.Req.ParseMultipartForm(maxUploadSize); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid multipart form")
	}
	file, header, err := ctx.Req.FormFile("file")
	if err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "missing song file")
	}
	defer file.Close()

	name, err := s.media.Save(header.Filename, file)
	if err != nil {
		return errResponse(err)
	}

	info, err := s.media.Probe(name)
	if err != nil {
		s.media.Remove(name)
		return errResponse(err)
	}

	title := strings.TrimSpace(ctx.Req.FormValue("title"))
	if title == "" {
		title = info.Title
	}
	if title == "" {
		title = strings.TrimSuffix(header.Filename, path.Ext(header.Filename))
	}
	artist := strings.TrimSpace(ctx.Req.FormValue("artist"))
	if artist == "" {
		artist = info.Artist
	}

	song, err := s.lib.AddSong(title, artist, info.Duration, "/media/"+name)
	if err != nil {
		s.media.Remove(name)
		return errResponse(err)
	}
	s.log.Info("song added", "id", song.ID, "title", song.Title, "artist", song.Artist)
	return respondCreated(ctx, song)
}

func (s *Server) handleEditSong(ctx *gserv.Context) gserv.Response {
	id, ok := pathID(ctx, "id")
	if !ok {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid song id")
	}
	var req struct {
		Title  string `json:"title"`
		Artist string `json:"artist"`
	}
	if err := decodeBody(ctx, &req); err != nil {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid request body")
	}

	song, err := s.lib.EditSong(id, req.Title, req.Artist)
	if err != nil {
		return errResponse(err)
	}
	return gserv.NewJSONResponse(song)
}

func (s *Server) handleDeleteSong(ctx *gserv.Context) gserv.Response {
	id, ok := pathID(ctx, "id")
	if !ok {
		return gserv.NewJSONErrorResponse(http.StatusBadRequest, "invalid song id")
	}

	song, removed, err := s.lib.DeleteSong(id)
	if err != nil {
		return errResponse(err)
	}
	if !removed {
		return gserv.NewJSONErrorResponse(http.StatusNotFound, "song not found")
	}

	if name := mediaName(song.URL); name != "" {
		if err := s.media.Remove(name); err != nil {
			s.log.Warn("removing media file", "song", song.ID, "err", err)
		}
	}
	s.log.Info("song deleted", "id", song.ID, "title", song.Title)
	return gserv.NewJSONResponse(song)
}

// mediaName extracts the stored file name from a song URL like
// "/media/<name>". Other URLs yield "".
func mediaName(url string) string {
	name, ok := strings.CutPrefix(url, "/media/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}
