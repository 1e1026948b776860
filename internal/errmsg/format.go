package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Song operations
	OpSongAdd    Op = "add song"
	OpSongEdit   Op = "edit song"
	OpSongDelete Op = "delete song"

	// Playlist operations
	OpPlaylistCreate     Op = "create playlist"
	OpPlaylistEdit       Op = "edit playlist"
	OpPlaylistDelete     Op = "delete playlist"
	OpPlaylistAddSong    Op = "add song to playlist"
	OpPlaylistRemoveSong Op = "remove song from playlist"

	// Upload operations
	OpUploadSave  Op = "store uploaded file"
	OpUploadProbe Op = "read audio metadata"

	// Catalog operations
	OpCatalogOpen Op = "open catalog"
	OpCatalogLoad Op = "load catalog"
	OpCatalogSave Op = "save catalog"

	// Playback operations
	OpPlaybackSelect Op = "start playback"

	// Media file operations
	OpMediaDelete Op = "delete audio file"
	OpMediaServe  Op = "serve audio file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
