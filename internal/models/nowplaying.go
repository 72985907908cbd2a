package models

// TokenResponse is the Spotify accounts service reply to a refresh_token grant
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// NotPlayingPayload is returned when the player reports no content
type NotPlayingPayload struct {
	Playing bool `json:"playing"`
}

// CurrentlyPlaying is the part of the currently-playing object used for
// logging. The payload returned to callers is the raw upstream JSON.
type CurrentlyPlaying struct {
	IsPlaying            bool       `json:"is_playing"`
	ProgressMs           int        `json:"progress_ms"`
	Timestamp            int64      `json:"timestamp"`
	CurrentlyPlayingType string     `json:"currently_playing_type"`
	Item                 *TrackItem `json:"item"`
}

// TrackItem represents the track object from the Spotify API
type TrackItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DurationMs int    `json:"duration_ms"`
	Artists    []struct {
		Name string `json:"name"`
	} `json:"artists"`
}

// ArtistNames returns the artist names of the track
func (t *TrackItem) ArtistNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		names = append(names, artist.Name)
	}
	return names
}
